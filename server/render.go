package main

import (
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/JankMajesty/selectmtgdb/internal/console"
)

// pageData feeds the console template.
type pageData struct {
	Schema  []console.Table
	Samples []SampleQuery
	Query   string
	Result  *console.Result
}

var pageTmpl = template.Must(template.New("console").Funcs(template.FuncMap{
	"cell": formatCell,
}).Parse(consolePage))

// formatCell renders one result value for the HTML table.
func formatCell(v any) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", v)
}

// renderPage renders the console page with a fresh schema snapshot. A
// schema failure still renders the page; the query form must stay usable
// even when the sidebar cannot be built.
func (a *App) renderPage(w http.ResponseWriter, r *http.Request, status int, query string, result *console.Result) {
	schema, err := a.store.Schema(r.Context())
	if err != nil {
		log.Printf("schema snapshot: %v", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	data := pageData{
		Schema:  schema,
		Samples: sampleQueries,
		Query:   query,
		Result:  result,
	}
	if err := pageTmpl.Execute(w, data); err != nil {
		log.Printf("render page: %v", err)
	}
}

const consolePage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Card Database Console</title>
<style>
  body { font-family: system-ui, sans-serif; margin: 0; display: flex; min-height: 100vh; }
  aside { width: 280px; background: #f4f4f4; padding: 1rem; overflow-y: auto; }
  main { flex: 1; padding: 1rem 2rem; }
  h1 { font-size: 1.3rem; }
  h2 { font-size: 1rem; margin-bottom: .3rem; }
  textarea { width: 100%; height: 8rem; font-family: monospace; font-size: .9rem; }
  table { border-collapse: collapse; margin-top: 1rem; font-size: .85rem; }
  th, td { border: 1px solid #ccc; padding: .25rem .5rem; text-align: left; }
  th { background: #e8e8e8; }
  .error { background: #fdd; border: 1px solid #c66; padding: .5rem 1rem; margin-top: 1rem; }
  .note { color: #666; font-style: italic; margin-top: .5rem; }
  .sample { cursor: pointer; color: #05a; }
  details { margin-bottom: .4rem; }
  summary { cursor: pointer; font-weight: 600; }
  .col { font-family: monospace; font-size: .8rem; margin-left: 1rem; }
  .flag { color: #888; font-size: .7rem; }
</style>
</head>
<body>
<aside>
  <h2>Tables</h2>
  {{range .Schema}}
  <details>
    <summary>{{.Name}}</summary>
    {{range .Columns}}
    <div class="col">{{.Name}} <span class="flag">{{.Type}}{{if .PrimaryKey}} PK{{end}}{{if .NotNull}} NOT NULL{{end}}</span></div>
    {{end}}
  </details>
  {{end}}
  <h2>Sample queries</h2>
  {{range .Samples}}
  <details>
    <summary class="sample" data-sql="{{.SQL}}">{{.Name}}</summary>
    <pre>{{.SQL}}</pre>
  </details>
  {{end}}
</aside>
<main>
  <h1>Card Database Console</h1>
  <p>Read-only SQL. One statement, SELECT or WITH, at most 1000 rows.</p>
  <form method="post" action="/query">
    <textarea name="sql" placeholder="SELECT CardName FROM Card LIMIT 10">{{.Query}}</textarea>
    <br>
    <button type="submit">Run query</button>
  </form>
  {{with .Result}}
    {{if .Error}}
    <div class="error">{{.Error}}</div>
    {{else}}
    <table>
      <thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
      <tbody>
      {{range .Rows}}<tr>{{range .}}<td>{{cell .}}</td>{{end}}</tr>
      {{end}}
      </tbody>
    </table>
    <p class="note">{{len .Rows}} row(s){{if .Truncated}}, truncated at 1000{{end}}</p>
    {{end}}
  {{end}}
</main>
<script>
  document.querySelectorAll('.sample').forEach(function (el) {
    el.addEventListener('click', function () {
      document.querySelector('textarea[name=sql]').value = el.dataset.sql;
    });
  });
</script>
</body>
</html>
`

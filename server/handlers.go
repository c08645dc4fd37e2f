package main

import (
	"encoding/json"
	"net/http"

	"github.com/JankMajesty/selectmtgdb/internal/console"
)

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	a.renderPage(w, r, http.StatusOK, "", nil)
}

// handleQuery runs the form-submitted query and re-renders the page. A
// query that fails validation never reaches the store and comes back as a
// client error; a query that validates but fails in SQLite renders normally
// with the engine's message in the error box.
func (a *App) handleQuery(w http.ResponseWriter, r *http.Request) {
	raw := r.FormValue("sql")

	cleaned, err := console.Validate(raw)
	if err != nil {
		res := console.ErrorResult(err)
		a.renderPage(w, r, http.StatusBadRequest, raw, &res)
		return
	}

	res := a.store.Execute(r.Context(), cleaned)
	a.renderPage(w, r, http.StatusOK, cleaned, &res)
}

func (a *App) handleSchemaJSON(w http.ResponseWriter, r *http.Request) {
	schema, err := a.store.SchemaMap(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, schema)
}

// handleQueryJSON is the API twin of handleQuery. Validation and execution
// failures both answer 400 with the error inside the result document.
func (a *App) handleQueryJSON(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SQL string `json:"sql"`
	}
	// A malformed body reads as an empty query.
	_ = json.NewDecoder(r.Body).Decode(&body)

	cleaned, err := console.Validate(body.SQL)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, console.ErrorResult(err))
		return
	}

	res := a.store.Execute(r.Context(), cleaned)
	status := http.StatusOK
	if res.Error != "" {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, res)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

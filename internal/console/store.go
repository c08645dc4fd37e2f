package console

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/jmoiron/sqlx"

	_ "modernc.org/sqlite"
)

// MaxRows caps the rows returned from a single query.
const MaxRows = 1000

func init() {
	// modernc registers its driver as "sqlite", which sqlx has no bindvar
	// entry for.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Store runs queries against the card database. Every call opens a fresh
// handle with mode=ro so the engine itself refuses writes no matter what
// the query text says.
type Store struct {
	path string
}

// NewStore returns a Store for the database file at path. The file is not
// touched until the first query.
func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) open() (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", fmt.Sprintf("file:%s?mode=ro", s.path))
	if err != nil {
		return nil, fmt.Errorf("open read-only db: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	return db, nil
}

// Result is the tabular outcome of one query. Error and a populated
// Columns/Rows pair are mutually exclusive. Truncated is set only when the
// result ran past MaxRows and was cut to it.
type Result struct {
	Columns   []string `json:"columns"`
	Rows      [][]any  `json:"rows"`
	Truncated bool     `json:"truncated"`
	Error     string   `json:"error,omitempty"`
}

// ErrorResult wraps a validation or execution failure in the result shape.
func ErrorResult(err error) Result {
	return Result{Columns: []string{}, Rows: [][]any{}, Error: err.Error()}
}

// Execute runs one validated query and returns its capped tabular result.
// Failures come back inside the Result, never as a panic; the handle is
// closed on every path.
func (s *Store) Execute(ctx context.Context, query string) Result {
	db, err := s.open()
	if err != nil {
		return ErrorResult(err)
	}
	defer func() { _ = db.Close() }()

	rows, err := db.QueryxContext(ctx, query)
	if err != nil {
		return ErrorResult(err)
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return ErrorResult(err)
	}

	res := Result{Columns: cols, Rows: [][]any{}}
	if res.Columns == nil {
		res.Columns = []string{}
	}
	for rows.Next() {
		if len(res.Rows) == MaxRows {
			res.Truncated = true
			break
		}
		vals, err := rows.SliceScan()
		if err != nil {
			return ErrorResult(err)
		}
		for i, v := range vals {
			vals[i] = jsonValue(v)
		}
		res.Rows = append(res.Rows, vals)
	}
	if err := rows.Err(); err != nil {
		return ErrorResult(err)
	}
	return res
}

// jsonValue converts driver values into JSON-friendly ones. Byte slices
// that are valid UTF-8 become strings; anything else binary becomes hex.
func jsonValue(v any) any {
	switch x := v.(type) {
	case []byte:
		if utf8.Valid(x) {
			return string(x)
		}
		return fmt.Sprintf("%x", x)
	case time.Time:
		return x.Format(time.RFC3339Nano)
	default:
		return v
	}
}

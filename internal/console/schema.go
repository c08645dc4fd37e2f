package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Column describes one table column as reported by the catalog.
type Column struct {
	Position   int     `json:"position"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	NotNull    bool    `json:"not_null"`
	Default    *string `json:"default_value"`
	PrimaryKey bool    `json:"primary_key"`
}

// Table is one user table with its columns in declared order.
type Table struct {
	Name    string   `json:"name"`
	Columns []Column `json:"columns"`
}

// Schema returns a live snapshot of all user tables in alphabetical order.
// Nothing is cached: a table created after the server started shows up on
// the next call. A table whose column introspection fails degrades to an
// empty column list instead of failing the snapshot.
func (s *Store) Schema(ctx context.Context) ([]Table, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()

	rows, err := db.QueryxContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan table name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	tables := make([]Table, 0, len(names))
	for _, name := range names {
		cols, err := tableColumns(ctx, db, name)
		if err != nil {
			cols = []Column{}
		}
		tables = append(tables, Table{Name: name, Columns: cols})
	}
	return tables, nil
}

// SchemaMap returns the snapshot keyed by table name, the shape the JSON
// endpoints serve.
func (s *Store) SchemaMap(ctx context.Context) (map[string][]Column, error) {
	tables, err := s.Schema(ctx)
	if err != nil {
		return nil, err
	}
	m := make(map[string][]Column, len(tables))
	for _, t := range tables {
		m[t.Name] = t.Columns
	}
	return m, nil
}

func tableColumns(ctx context.Context, db *sqlx.DB, table string) ([]Column, error) {
	// PRAGMA arguments cannot be bound, so the name is quoted by hand.
	// Names come from sqlite_master, not from the request.
	quoted := strings.ReplaceAll(table, "'", "''")
	rows, err := db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info('%s')", quoted))
	if err != nil {
		return nil, fmt.Errorf("table_info %s: %w", table, err)
	}
	defer func() { _ = rows.Close() }()

	var cols []Column
	for rows.Next() {
		var (
			cid      int
			name     string
			dataType string
			notNull  int
			dflt     *string
			pk       int
		)
		if err := rows.Scan(&cid, &name, &dataType, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("scan column of %s: %w", table, err)
		}
		cols = append(cols, Column{
			Position:   cid,
			Name:       name,
			Type:       dataType,
			NotNull:    notNull != 0,
			Default:    dflt,
			PrimaryKey: pk > 0,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cols, nil
}

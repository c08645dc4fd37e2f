package console

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// newTestStore creates a database file with a small catalog and returns a
// read-only store plus the read-write handle for fixtures.
func newTestStore(t *testing.T) (*Store, *sql.DB) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cards.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
	CREATE TABLE Artist (ArtistID INTEGER PRIMARY KEY, ArtistName TEXT NOT NULL UNIQUE);
	CREATE TABLE Card (CardID INTEGER PRIMARY KEY, CardName TEXT NOT NULL, Rarity TEXT DEFAULT 'common', ArtistID INTEGER);
	`)
	require.NoError(t, err)

	return NewStore(path), db
}

func TestExecuteRowCap(t *testing.T) {
	store, db := newTestStore(t)
	faker := gofakeit.New(uint64(time.Now().UnixNano()))

	stmt, err := db.Prepare(`INSERT INTO Card (CardName) VALUES (?)`)
	require.NoError(t, err)
	for i := 0; i < MaxRows+1; i++ {
		_, err := stmt.Exec(fmt.Sprintf("%s %d", faker.Noun(), i))
		require.NoError(t, err)
	}
	require.NoError(t, stmt.Close())

	res := store.Execute(context.Background(), `SELECT CardID, CardName FROM Card ORDER BY CardID`)
	require.Empty(t, res.Error)
	assert.Equal(t, []string{"CardID", "CardName"}, res.Columns)
	assert.Len(t, res.Rows, MaxRows)
	assert.True(t, res.Truncated)

	// A result that lands exactly on the cap is not truncated.
	res = store.Execute(context.Background(), fmt.Sprintf(`SELECT CardID FROM Card LIMIT %d`, MaxRows))
	require.Empty(t, res.Error)
	assert.Len(t, res.Rows, MaxRows)
	assert.False(t, res.Truncated)
}

func TestExecuteMissingTable(t *testing.T) {
	store, _ := newTestStore(t)

	res := store.Execute(context.Background(), `SELECT * FROM NoSuchTable`)
	assert.NotEmpty(t, res.Error)
	assert.Empty(t, res.Columns)
	assert.Empty(t, res.Rows)
	assert.False(t, res.Truncated)
}

func TestExecuteRefusesWrites(t *testing.T) {
	store, db := newTestStore(t)
	_, err := db.Exec(`INSERT INTO Card (CardName) VALUES ('Counterspell')`)
	require.NoError(t, err)

	// Even a query the validator would reject cannot change anything: the
	// store's handle is opened with mode=ro.
	res := store.Execute(context.Background(), `INSERT INTO Card (CardName) VALUES ('Black Lotus')`)
	assert.NotEmpty(t, res.Error)

	var n int64
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM Card`).Scan(&n))
	assert.Equal(t, int64(1), n)
}

func TestExecuteValueKinds(t *testing.T) {
	store, _ := newTestStore(t)

	res := store.Execute(context.Background(), `SELECT 1 AS i, 2.5 AS r, 'x' AS s, NULL AS n`)
	require.Empty(t, res.Error)
	require.Len(t, res.Rows, 1)

	row := res.Rows[0]
	assert.Equal(t, int64(1), row[0])
	assert.Equal(t, 2.5, row[1])
	assert.Equal(t, "x", row[2])
	assert.Nil(t, row[3])
}

func TestExecuteEmptyResult(t *testing.T) {
	store, _ := newTestStore(t)

	res := store.Execute(context.Background(), `SELECT CardID FROM Card WHERE CardID = -1`)
	require.Empty(t, res.Error)
	assert.Equal(t, []string{"CardID"}, res.Columns)
	assert.NotNil(t, res.Rows)
	assert.Empty(t, res.Rows)
	assert.False(t, res.Truncated)
}

func TestValidatedQueryExecutesVerbatim(t *testing.T) {
	store, db := newTestStore(t)
	_, err := db.Exec(`INSERT INTO Card (CardName) VALUES ('Opt')`)
	require.NoError(t, err)

	cleaned, err := Validate("  SELECT CardName FROM Card;  ")
	require.NoError(t, err)
	require.Equal(t, "SELECT CardName FROM Card", cleaned)

	res := store.Execute(context.Background(), cleaned)
	require.Empty(t, res.Error)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "Opt", res.Rows[0][0])
}

func TestSchemaSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
	CREATE TABLE B (x TEXT NOT NULL);
	CREATE TABLE A (id INTEGER PRIMARY KEY, rarity TEXT DEFAULT 'common');
	CREATE TABLE seq_owner (n INTEGER PRIMARY KEY AUTOINCREMENT);
	INSERT INTO seq_owner DEFAULT VALUES;
	`)
	require.NoError(t, err)

	store := NewStore(path)
	tables, err := store.Schema(context.Background())
	require.NoError(t, err)

	// Alphabetical, with the sqlite_sequence bookkeeping table hidden.
	names := make([]string, 0, len(tables))
	for _, tb := range tables {
		names = append(names, tb.Name)
	}
	assert.Equal(t, []string{"A", "B", "seq_owner"}, names)

	a := tables[0]
	require.Len(t, a.Columns, 2)
	assert.Equal(t, 0, a.Columns[0].Position)
	assert.Equal(t, "id", a.Columns[0].Name)
	assert.Equal(t, "INTEGER", a.Columns[0].Type)
	assert.True(t, a.Columns[0].PrimaryKey)
	assert.False(t, a.Columns[0].NotNull)
	assert.Nil(t, a.Columns[0].Default)
	require.NotNil(t, a.Columns[1].Default)
	assert.Equal(t, "'common'", *a.Columns[1].Default)

	b := tables[1]
	require.Len(t, b.Columns, 1)
	assert.Equal(t, "x", b.Columns[0].Name)
	assert.True(t, b.Columns[0].NotNull)
	assert.False(t, b.Columns[0].PrimaryKey)
}

func TestSchemaIsLive(t *testing.T) {
	store, db := newTestStore(t)

	before, err := store.SchemaMap(context.Background())
	require.NoError(t, err)
	_, ok := before["Later"]
	require.False(t, ok)

	_, err = db.Exec(`CREATE TABLE Later (id INTEGER PRIMARY KEY)`)
	require.NoError(t, err)

	after, err := store.SchemaMap(context.Background())
	require.NoError(t, err)
	_, ok = after["Later"]
	assert.True(t, ok)

	cols, ok := after["Card"]
	require.True(t, ok)
	require.NotEmpty(t, cols)
	assert.Equal(t, "CardID", cols[0].Name)
}

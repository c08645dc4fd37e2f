// Package carddb owns the card database file: schema creation, normalized
// inserts through cached lookup tables, the demo seed, and the post-ingest
// summary queries.
package carddb

import (
	"fmt"
	"os"
	"time"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// Fallbacks for payload fields the API sometimes omits.
const (
	unknownArtist      = "Unknown"
	unknownRarity      = "Unknown"
	defaultReleaseDate = "1900-01-01"
	defaultLayout      = "normal"
)

// DB is a read-write handle to the card database. Lookup-table ids are
// cached in memory so repeated attributes resolve without touching SQLite.
// A DB is not safe for concurrent use; the ingester is single-writer.
type DB struct {
	conn *sqlite.Conn

	artists   map[string]int64
	rarities  map[string]int64
	sets      map[string]int64 // keyed by set code
	colors    map[string]int64
	cardTypes map[string]int64
	subTypes  map[string]int64
}

// Open opens the card database at path, creating the file and schema as
// needed. An existing database is extended, not replaced.
func Open(path string) (*DB, error) {
	conn, err := sqlite.OpenConn(path, sqlite.OpenCreate, sqlite.OpenReadWrite, sqlite.OpenWAL)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA temp_store = MEMORY",
	}
	for _, pragma := range pragmas {
		if err := sqlitex.ExecuteTransient(conn, pragma, nil); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	if err := createTables(conn); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	if err := createIndexes(conn); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("create indexes: %w", err)
	}

	return &DB{
		conn:      conn,
		artists:   make(map[string]int64),
		rarities:  make(map[string]int64),
		sets:      make(map[string]int64),
		colors:    make(map[string]int64),
		cardTypes: make(map[string]int64),
		subTypes:  make(map[string]int64),
	}, nil
}

// Close closes the underlying connection.
func (d *DB) Close() error {
	return d.conn.Close()
}

// BeginBatch opens an immediate transaction for a batch of inserts. The
// returned func commits when *err is nil and rolls back otherwise.
func (d *DB) BeginBatch() (func(*error), error) {
	return sqlitex.ImmediateTransaction(d.conn)
}

// lookupID resolves name through cache, then table, then a fresh insert.
func (d *DB) lookupID(cache map[string]int64, selectSQL, insertSQL, name string) (int64, error) {
	if id, ok := cache[name]; ok {
		return id, nil
	}

	var id int64
	found := false
	err := sqlitex.Execute(d.conn, selectSQL, &sqlitex.ExecOptions{
		Args: []any{name},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			id = stmt.ColumnInt64(0)
			found = true
			return nil
		},
	})
	if err != nil {
		return 0, err
	}
	if !found {
		if err := sqlitex.Execute(d.conn, insertSQL, &sqlitex.ExecOptions{Args: []any{name}}); err != nil {
			return 0, err
		}
		id = d.conn.LastInsertRowID()
	}

	cache[name] = id
	return id, nil
}

// ArtistID returns the id for an artist name, inserting it on first sight.
func (d *DB) ArtistID(name string) (int64, error) {
	return d.lookupID(d.artists,
		`SELECT ArtistID FROM Artist WHERE ArtistName = ?`,
		`INSERT INTO Artist (ArtistName) VALUES (?)`,
		name)
}

// RarityID returns the id for a rarity name, inserting it on first sight.
func (d *DB) RarityID(name string) (int64, error) {
	return d.lookupID(d.rarities,
		`SELECT RarityID FROM Rarity WHERE RarityName = ?`,
		`INSERT INTO Rarity (RarityName) VALUES (?)`,
		name)
}

// ColorID returns the id for a color letter, inserting it on first sight.
func (d *DB) ColorID(color string) (int64, error) {
	return d.lookupID(d.colors,
		`SELECT ColorID FROM Color WHERE Color = ?`,
		`INSERT INTO Color (Color) VALUES (?)`,
		color)
}

// CardTypeID returns the id for a card type, inserting it on first sight.
func (d *DB) CardTypeID(name string) (int64, error) {
	return d.lookupID(d.cardTypes,
		`SELECT CardTypeID FROM CardType WHERE TypeName = ?`,
		`INSERT INTO CardType (TypeName) VALUES (?)`,
		name)
}

// SubTypeID returns the id for a subtype, inserting it on first sight.
func (d *DB) SubTypeID(name string) (int64, error) {
	return d.lookupID(d.subTypes,
		`SELECT SubTypeID FROM SubType WHERE SubTypeName = ?`,
		`INSERT INTO SubType (SubTypeName) VALUES (?)`,
		name)
}

// SetID returns the id for a set, keyed by code. Name and release date are
// stored on first sight and left untouched after that.
func (d *DB) SetID(name, code, releaseDate string) (int64, error) {
	if id, ok := d.sets[code]; ok {
		return id, nil
	}

	var id int64
	found := false
	err := sqlitex.Execute(d.conn, `SELECT SetID FROM CardSet WHERE SetCode = ?`, &sqlitex.ExecOptions{
		Args: []any{code},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			id = stmt.ColumnInt64(0)
			found = true
			return nil
		},
	})
	if err != nil {
		return 0, err
	}
	if !found {
		err := sqlitex.Execute(d.conn,
			`INSERT INTO CardSet (SetName, SetCode, ReleaseDate) VALUES (?, ?, ?)`,
			&sqlitex.ExecOptions{Args: []any{name, code, releaseDate}})
		if err != nil {
			return 0, err
		}
		id = d.conn.LastInsertRowID()
	}

	d.sets[code] = id
	return id, nil
}

// InsertCard writes one card row plus its color, type, and subtype links.
// Missing artist, rarity, release date, and layout take the Unknown/default
// values so the NOT NULL foreign keys always resolve.
func (d *DB) InsertCard(c Card) (int64, error) {
	artist := c.Artist
	if artist == "" {
		artist = unknownArtist
	}
	artistID, err := d.ArtistID(artist)
	if err != nil {
		return 0, fmt.Errorf("artist %q: %w", artist, err)
	}

	rarity := c.Rarity
	if rarity == "" {
		rarity = unknownRarity
	}
	rarityID, err := d.RarityID(rarity)
	if err != nil {
		return 0, fmt.Errorf("rarity %q: %w", rarity, err)
	}

	release := c.ReleasedAt
	if release == "" {
		release = defaultReleaseDate
	}
	setID, err := d.SetID(c.SetName, c.Set, release)
	if err != nil {
		return 0, fmt.Errorf("set %q: %w", c.Set, err)
	}

	supertypes, types, subtypes := ParseTypeLine(c.TypeLine)
	superType := ""
	if len(supertypes) > 0 {
		superType = supertypes[0]
	}
	layout := c.Layout
	if layout == "" {
		layout = defaultLayout
	}

	stmt, err := d.conn.Prepare(`INSERT INTO Card
		(CardName, ManaCost, ConvertedManaCost, Abilities, FlavorText,
		 Power, Toughness, ImageURL, Layout, SuperType,
		 ArtistID, RarityID, SetID)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare card insert: %w", err)
	}
	stmt.BindText(1, c.Name)
	bindTextOrNull(stmt, 2, c.ManaCost)
	stmt.BindFloat(3, c.CMC)
	bindTextOrNull(stmt, 4, c.OracleText)
	bindTextOrNull(stmt, 5, c.FlavorText)
	bindTextOrNull(stmt, 6, c.Power)
	bindTextOrNull(stmt, 7, c.Toughness)
	bindTextOrNull(stmt, 8, c.ImageURL())
	stmt.BindText(9, layout)
	bindTextOrNull(stmt, 10, superType)
	stmt.BindInt64(11, artistID)
	stmt.BindInt64(12, rarityID)
	stmt.BindInt64(13, setID)
	if _, err := stmt.Step(); err != nil {
		_ = stmt.Reset()
		return 0, fmt.Errorf("insert card %q: %w", c.Name, err)
	}
	if err := stmt.Reset(); err != nil {
		return 0, fmt.Errorf("reset card insert: %w", err)
	}
	cardID := d.conn.LastInsertRowID()

	for _, color := range c.Colors {
		colorID, err := d.ColorID(color)
		if err != nil {
			return 0, fmt.Errorf("color %q: %w", color, err)
		}
		if err := d.link(`INSERT OR IGNORE INTO Card_Color (CardID, ColorID) VALUES (?, ?)`, cardID, colorID); err != nil {
			return 0, err
		}
	}
	for _, typeName := range types {
		typeID, err := d.CardTypeID(typeName)
		if err != nil {
			return 0, fmt.Errorf("card type %q: %w", typeName, err)
		}
		if err := d.link(`INSERT OR IGNORE INTO Card_CardType (CardID, CardTypeID) VALUES (?, ?)`, cardID, typeID); err != nil {
			return 0, err
		}
	}
	for _, subName := range subtypes {
		subID, err := d.SubTypeID(subName)
		if err != nil {
			return 0, fmt.Errorf("subtype %q: %w", subName, err)
		}
		if err := d.link(`INSERT OR IGNORE INTO Card_SubType (CardID, SubTypeID) VALUES (?, ?)`, cardID, subID); err != nil {
			return 0, err
		}
	}

	return cardID, nil
}

// link writes one join-table row. OR IGNORE makes repeated type words on a
// single card harmless.
func (d *DB) link(insertSQL string, cardID, otherID int64) error {
	return sqlitex.Execute(d.conn, insertSQL, &sqlitex.ExecOptions{Args: []any{cardID, otherID}})
}

// IngestRun records one set's ingest outcome.
type IngestRun struct {
	SetCode       string
	CardsFetched  int
	CardsInserted int
	StartedAt     time.Time
	FinishedAt    time.Time
}

// RecordIngest appends a provenance row for a completed set ingest.
func (d *DB) RecordIngest(run IngestRun) error {
	err := sqlitex.Execute(d.conn,
		`INSERT INTO IngestLog (SetCode, CardsFetched, CardsInserted, StartedAt, FinishedAt)
		 VALUES (?, ?, ?, ?, ?)`,
		&sqlitex.ExecOptions{Args: []any{
			run.SetCode,
			int64(run.CardsFetched),
			int64(run.CardsInserted),
			run.StartedAt.UTC().Format(time.RFC3339),
			run.FinishedAt.UTC().Format(time.RFC3339),
		}})
	if err != nil {
		return fmt.Errorf("record ingest %s: %w", run.SetCode, err)
	}
	return nil
}

// Bootstrap creates the database at path with schema and demo data when the
// file does not exist yet. It reports whether it created the file.
func Bootstrap(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}

	db, err := Open(path)
	if err != nil {
		return false, err
	}
	defer func() { _ = db.Close() }()

	if err := db.SeedSampleData(); err != nil {
		return false, fmt.Errorf("seed sample data: %w", err)
	}
	return true, nil
}

// bindTextOrNull binds val as text, or NULL when empty.
func bindTextOrNull(stmt *sqlite.Stmt, param int, val string) {
	if val == "" {
		stmt.BindNull(param)
	} else {
		stmt.BindText(param, val)
	}
}

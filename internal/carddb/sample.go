package carddb

import (
	"fmt"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// sampleCards is a small demo dataset covering each lookup table: colored
// and colorless cards, a creature with power/toughness, a basic land, and
// three distinct sets.
var sampleCards = []Card{
	{
		Name:       "Lightning Bolt",
		ManaCost:   "{R}",
		CMC:        1,
		TypeLine:   "Instant",
		OracleText: "Lightning Bolt deals 3 damage to any target.",
		Colors:     []string{"R"},
		Artist:     "rk post",
		Rarity:     "Common",
		Set:        "USG",
		SetName:    "Urza's Saga",
		ReleasedAt: "1998-10-12",
	},
	{
		Name:       "Serra Angel",
		ManaCost:   "{3}{W}{W}",
		CMC:        5,
		TypeLine:   "Creature — Angel",
		OracleText: "Flying, vigilance",
		Power:      "4",
		Toughness:  "4",
		Colors:     []string{"W"},
		Artist:     "Mark Tedin",
		Rarity:     "Rare",
		Set:        "USG",
		SetName:    "Urza's Saga",
		ReleasedAt: "1998-10-12",
	},
	{
		Name:       "Counterspell",
		ManaCost:   "{U}{U}",
		CMC:        2,
		TypeLine:   "Instant",
		OracleText: "Counter target spell.",
		Colors:     []string{"U"},
		Artist:     "Kev Walker",
		Rarity:     "Common",
		Set:        "ULG",
		SetName:    "Urza's Legacy",
		ReleasedAt: "1999-02-15",
	},
	{
		Name:       "Sol Ring",
		ManaCost:   "{1}",
		CMC:        1,
		TypeLine:   "Artifact",
		OracleText: "{T}: Add {C}{C}.",
		Artist:     "Pete Venters",
		Rarity:     "Uncommon",
		Set:        "UDS",
		SetName:    "Urza's Destiny",
		ReleasedAt: "1999-06-07",
	},
	{
		Name:       "Forest",
		TypeLine:   "Basic Land — Forest",
		OracleText: "{T}: Add {G}.",
		Artist:     "Matt Cavotta",
		Rarity:     "Common",
		Set:        "USG",
		SetName:    "Urza's Saga",
		ReleasedAt: "1998-10-12",
	},
}

// SeedSampleData inserts the demo dataset so the console has something to
// query before a real ingest. It is a no-op when cards already exist.
func (d *DB) SeedSampleData() (err error) {
	var cards int64
	err = sqlitex.ExecuteTransient(d.conn, `SELECT COUNT(*) FROM Card`, &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			cards = stmt.ColumnInt64(0)
			return nil
		},
	})
	if err != nil {
		return err
	}
	if cards > 0 {
		return nil
	}

	endFn, err := sqlitex.ImmediateTransaction(d.conn)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer endFn(&err)

	for _, c := range sampleCards {
		if _, err = d.InsertCard(c); err != nil {
			return fmt.Errorf("insert sample card %q: %w", c.Name, err)
		}
	}
	return nil
}

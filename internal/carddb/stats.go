package carddb

import (
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// Stats summarizes the database contents after an ingest run.
type Stats struct {
	Cards     int64
	Artists   int64
	Sets      int64
	Colors    int64
	CardTypes int64
	SubTypes  int64

	TopArtists []ArtistCount
	SetCounts  []SetCount
}

// ArtistCount is one artist with their card total.
type ArtistCount struct {
	Name  string
	Cards int64
}

// SetCount is one set with its card total.
type SetCount struct {
	Code  string
	Name  string
	Cards int64
}

// Stats computes the table counts, the five most-printed artists, and the
// per-set card totals in release order.
func (d *DB) Stats() (*Stats, error) {
	s := &Stats{}

	counts := []struct {
		query string
		dst   *int64
	}{
		{`SELECT COUNT(*) FROM Card`, &s.Cards},
		{`SELECT COUNT(*) FROM Artist`, &s.Artists},
		{`SELECT COUNT(*) FROM CardSet`, &s.Sets},
		{`SELECT COUNT(*) FROM Color`, &s.Colors},
		{`SELECT COUNT(*) FROM CardType`, &s.CardTypes},
		{`SELECT COUNT(*) FROM SubType`, &s.SubTypes},
	}
	for _, c := range counts {
		err := sqlitex.ExecuteTransient(d.conn, c.query, &sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				*c.dst = stmt.ColumnInt64(0)
				return nil
			},
		})
		if err != nil {
			return nil, err
		}
	}

	err := sqlitex.ExecuteTransient(d.conn, `
		SELECT a.ArtistName, COUNT(*) AS n
		FROM Card c
		JOIN Artist a ON c.ArtistID = a.ArtistID
		GROUP BY a.ArtistID
		ORDER BY n DESC, a.ArtistName
		LIMIT 5`,
		&sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				s.TopArtists = append(s.TopArtists, ArtistCount{
					Name:  stmt.ColumnText(0),
					Cards: stmt.ColumnInt64(1),
				})
				return nil
			},
		})
	if err != nil {
		return nil, err
	}

	err = sqlitex.ExecuteTransient(d.conn, `
		SELECT s.SetCode, s.SetName, COUNT(c.CardID)
		FROM CardSet s
		LEFT JOIN Card c ON c.SetID = s.SetID
		GROUP BY s.SetID
		ORDER BY s.ReleaseDate, s.SetCode`,
		&sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				s.SetCounts = append(s.SetCounts, SetCount{
					Code:  stmt.ColumnText(0),
					Name:  stmt.ColumnText(1),
					Cards: stmt.ColumnInt64(2),
				})
				return nil
			},
		})
	if err != nil {
		return nil, err
	}

	return s, nil
}

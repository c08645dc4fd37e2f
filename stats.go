package main

import "github.com/JankMajesty/selectmtgdb/internal/carddb"

// reportStatistics logs the post-ingest database summary.
func reportStatistics(db *carddb.DB, prog *Progress) error {
	stats, err := db.Stats()
	if err != nil {
		return err
	}

	prog.Log("Database statistics:")
	prog.Log("  cards: %d", stats.Cards)
	prog.Log("  artists: %d", stats.Artists)
	prog.Log("  sets: %d", stats.Sets)
	prog.Log("  colors: %d", stats.Colors)
	prog.Log("  card types: %d", stats.CardTypes)
	prog.Log("  subtypes: %d", stats.SubTypes)

	for _, s := range stats.SetCounts {
		prog.Log("  set %s (%s) = %d cards", s.Code, s.Name, s.Cards)
	}
	for _, a := range stats.TopArtists {
		prog.Verbose("  top artist: %s = %d", a.Name, a.Cards)
	}
	return nil
}

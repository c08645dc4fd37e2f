package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JankMajesty/selectmtgdb/internal/carddb"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run is the real entry point. Using a separate function ensures all defers
// (including the database close) execute even on error paths, unlike os.Exit
// which skips deferred calls.
func run() error {
	configPath := flag.String("config", "", "Path to YAML config file (optional)")
	dbPath := flag.String("db", "", "Path to the output SQLite database (overrides config)")
	sets := flag.String("sets", "", "Block name, 'all', or comma-separated set codes (e.g. urzas or usg,ulg)")
	clean := flag.Bool("clean", false, "Delete the database file before ingesting")
	sample := flag.Bool("sample", false, "Seed the demo dataset instead of calling the API")
	verbose := flag.Bool("verbose", false, "Print detailed progress")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: selectmtgdb [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Ingests trading-card metadata into a normalized SQLite database.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *dbPath == "" {
		*dbPath = cfg.Database.File
	}

	prog := NewProgress(*verbose)

	if *clean {
		if err := os.Remove(*dbPath); err == nil {
			prog.Log("Removed %s", *dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("remove %s: %w", *dbPath, err)
		}
	}

	db, err := carddb.Open(*dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if *sample {
		if err := db.SeedSampleData(); err != nil {
			return err
		}
		prog.Log("Seeded demo dataset into %s", *dbPath)
		return reportStatistics(db, prog)
	}

	codes, err := resolveSets(cfg, *sets)
	if err != nil {
		return err
	}

	// Ctrl-C stops after the current set; a second one kills the process.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := NewAPIClient(cfg.API)
	prog.Log("Ingesting %d sets from %s", len(codes), cfg.API.BaseURL)

	failed := 0
	for _, code := range codes {
		if ctx.Err() != nil {
			prog.Warn("interrupted; stopping before set %s", code)
			break
		}
		if err := ingestSet(ctx, db, client, code, prog); err != nil {
			prog.Warn("set %s failed: %v", code, err)
			failed++
		}
	}
	if failed > 0 {
		prog.Log("%d of %d sets failed; their cards were not written", failed, len(codes))
	}

	return reportStatistics(db, prog)
}

// ingestSet fetches one set and writes it in a single transaction, so a
// half-fetched set never reaches the database.
func ingestSet(ctx context.Context, db *carddb.DB, client *APIClient, code string, prog *Progress) (err error) {
	started := time.Now()
	prog.Log("Fetching set %s ...", code)

	cards, err := client.SetCards(ctx, code)
	if err != nil {
		return err
	}
	prints, err := client.BasicLandPrints(ctx, code)
	if err != nil {
		prog.Warn("basic land printings for %s: %v (keeping collapsed rows)", code, err)
	} else {
		cards = mergeBasicLands(cards, prints)
	}
	prog.Verbose("  fetched %d cards for %s", len(cards), code)

	endFn, err := db.BeginBatch()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer endFn(&err)

	inserted := 0
	for i, card := range cards {
		if _, err = db.InsertCard(card); err != nil {
			return fmt.Errorf("insert %q: %w", card.Name, err)
		}
		inserted++
		if (i+1)%100 == 0 {
			prog.Verbose("  inserted %d/%d cards", i+1, len(cards))
		}
	}

	if err = db.RecordIngest(carddb.IngestRun{
		SetCode:       code,
		CardsFetched:  len(cards),
		CardsInserted: inserted,
		StartedAt:     started,
		FinishedAt:    time.Now(),
	}); err != nil {
		return fmt.Errorf("record ingest: %w", err)
	}

	prog.Log("Set %s: %d cards in %s", code, inserted, time.Since(started).Round(time.Millisecond))
	return nil
}

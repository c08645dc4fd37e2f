package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"

	"github.com/JankMajesty/selectmtgdb/internal/carddb"
	"github.com/JankMajesty/selectmtgdb/internal/console"
)

func main() {
	_ = godotenv.Load()

	dbPath := flag.String("db", "", "Path to the card database. Can be set via DB_PATH env.")
	flag.Parse()

	if *dbPath == "" {
		*dbPath = os.Getenv("DB_PATH")
	}
	if *dbPath == "" {
		log.Fatal("DB path required: set -db or DB_PATH")
	}

	// Stdio servers get launched against whatever path the client config
	// names, so create the demo database rather than dying on a typo.
	if _, err := carddb.Bootstrap(*dbPath); err != nil {
		log.Fatalf("bootstrap db: %v", err)
	}

	s := server.NewMCPServer(
		"selectmtgdb",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithLogging(),
	)
	RegisterTools(s, console.NewStore(*dbPath))

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

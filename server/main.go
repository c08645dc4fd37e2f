package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/JankMajesty/selectmtgdb/internal/carddb"
	"github.com/JankMajesty/selectmtgdb/internal/console"
)

func main() {
	// .env is optional; flags and real env vars win over it.
	_ = godotenv.Load()

	dbPath := flag.String("db", "", "Path to the card database (e.g. mtg.db). Can be set via DB_PATH env.")
	port := flag.String("port", "", "HTTP port. Can be set via PORT env. Defaults to 8080.")
	flag.Parse()

	if *dbPath == "" {
		*dbPath = os.Getenv("DB_PATH")
	}
	if *dbPath == "" {
		log.Fatal("DB path required: set -db or DB_PATH")
	}
	if *port == "" {
		*port = os.Getenv("PORT")
	}
	if *port == "" {
		*port = "8080"
	}

	created, err := carddb.Bootstrap(*dbPath)
	if err != nil {
		log.Fatalf("bootstrap db: %v", err)
	}
	if created {
		log.Printf("Created %s with demo data; run the ingester to load real sets", *dbPath)
	}

	app := NewApp(console.NewStore(*dbPath))
	srv := &http.Server{
		Addr:         ":" + *port,
		Handler:      app.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		log.Printf("Listening on http://localhost:%s (db=%s)", *port, *dbPath)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "shutdown: %v\n", err)
		os.Exit(1)
	}
	log.Println("Bye")
}

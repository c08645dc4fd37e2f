package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/JankMajesty/selectmtgdb/internal/console"
)

// App holds server dependencies.
type App struct {
	store *console.Store
}

// NewApp creates an App over the given query store.
func NewApp(store *console.Store) *App {
	return &App{store: store}
}

// Handler returns the HTTP handler (router with CORS, recovery, routes).
func (a *App) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(corsMiddleware)

	r.Get("/", a.handleIndex)
	r.Post("/query", a.handleQuery)
	r.Get("/schema.json", a.handleSchemaJSON)
	r.Post("/query.json", a.handleQueryJSON)

	return r
}

// corsMiddleware sets CORS headers so a frontend on another port can call
// the JSON endpoints.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/polls/auth"
	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/db"
	"github.com/danielhkuo/polls/handlers"
	"github.com/danielhkuo/polls/middleware"
)

func NewRouter(store *db.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pollsHandler := handlers.NewPollsHandler(store)
	schemaHandler := handlers.NewSchemaHandler(store)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Polls views
	mux.HandleFunc("GET /{$}", middleware.WithLogging(pollsHandler.Index))
	mux.HandleFunc("GET /{id}/{$}", middleware.WithLogging(pollsHandler.Detail))
	mux.HandleFunc("GET /{id}/results/{$}", middleware.WithLogging(pollsHandler.Results))
	mux.HandleFunc("GET /{id}/vote/{$}", middleware.WithLogging(pollsHandler.Vote))

	// Reflected schema (admin, requires X-Admin-Key)
	mux.Handle("GET /debug/schema", adminOnly(cfg, schemaHandler.ListTables))
	mux.Handle("GET /debug/schema/{table}", adminOnly(cfg, schemaHandler.GetTable))

	return mux
}

func adminOnly(cfg cliparse.Config, h http.HandlerFunc) http.Handler {
	return middleware.RequireAdminKey(auth.ScopeDebug, cfg.AdminKeySalt, middleware.WithLogging(h))
}

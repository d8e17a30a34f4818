// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the polls site.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store, cfg)

# Endpoints

Health:

	GET /health

Polls (public):

	GET /                - Latest questions
	GET /{id}/           - Question detail
	GET /{id}/results/   - Results placeholder
	GET /{id}/vote/      - Vote placeholder

Schema (admin, requires X-Admin-Key for the debug scope):

	GET /debug/schema         - Reflected table names
	GET /debug/schema/{table} - Columns and row count

# SQL Console

With -debug, AttachSQLConsole mounts a tailsql console over the same pool:

	if err := router.AttachSQLConsole(mux, store, cfg); err != nil { ... }

It is served under /debug/tailsql/ behind the same admin key.
*/
package router

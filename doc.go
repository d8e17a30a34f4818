// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the polls site.

The site lists the latest poll questions and shows question details. Table
definitions are not compiled in: the schema is reflected from the database
at startup and queries run through per-request sessions.

# Starting the Server

With a fresh SQLite file:

	go run . -migrate

Against an existing database:

	DATABASE_URL=db.sqlite3 go run .
	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

# Configuration

  - PORT (-p): Server port (default: 8000)
  - DATABASE_URL (-d): SQLite path or PostgreSQL URL (default: db.sqlite3)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - ADMIN_KEY_SALT (--admin-salt): enables the /debug routes

Values can also come from a .env file.

# Startup

Startup fails, and nothing is served, when the database is unreachable,
reflection fails, or auth_user, polls_question or polls_choice is missing.

# Architecture

  - db: schema reflection, sessions, migrations
  - handlers: polls views and schema debug views
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, admin key guard, response helpers
  - models: domain and response types
  - auth: admin key generation and validation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8000)
  - DatabaseURL: SQLite file path or PostgreSQL connection string (default: db.sqlite3)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - AdminKeySalt: Secret for debug admin keys (optional)
  - Migrate: create the polls tables before serving
  - Debug: mount the tailsql console
  - PrintAdminKey: print the debug admin key and exit

# CLI Flags

	-p                Server port
	-d                Database URL
	-t                Database type
	--admin-salt      Admin key salt
	--env-file        Dotenv file (default: .env)
	--migrate         Run migrations at startup
	--debug           Enable /debug/tailsql/
	--print-admin-key Print the debug admin key

# Environment Variables

Flags fall back to environment variables, which may come from the dotenv
file:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	ADMIN_KEY_SALT → --admin-salt

CLI flags take precedence over environment variables, and variables already
set in the environment take precedence over the dotenv file.

# Validation

All problems are reported together:

  - PORT must be a number in range
  - DATABASE_TYPE must be sqlite or postgres
  - ADMIN_KEY_SALT must be set when --debug or --print-admin-key is used
*/
package cliparse

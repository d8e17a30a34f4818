// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db reflects the database schema and runs read queries against it.

# Opening a Store

Open connects, pings and reflects the schema in one explicit step:

	store, err := db.Open(ctx, db.SQLite, "db.sqlite3")
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

An unreachable database yields a *ConnectionError; a failed introspection
yields a *ReflectionError. Both are fatal at startup.

# Table Handles

The reflected Schema maps table names to *Table handles:

	questions, err := store.Schema().Table("polls_question")
	col, err := questions.C("pub_date")

Unknown names return ErrUnknownTable or ErrUnknownColumn.

# Sessions

A Session pins one pooled connection and belongs to one request:

	sess, err := store.Session(r.Context())
	if err != nil {
		return err
	}
	defer sess.Close()

	latest, err := sess.List(ctx, "polls_question", db.ListOptions{
		OrderBy:    "pub_date",
		Descending: true,
		Limit:      5,
	})

	row, err := sess.GetOne(ctx, "polls_question", db.Eq("id", 3))
	if errors.Is(err, db.ErrNotFound) {
		// 404
	}

Only reads are issued. Column names are validated against the table handle
and values are always bound parameters.

# Migrations

MigrateUp applies the embedded migrations that create auth_user,
polls_question and polls_choice. golang-migrate's schema_migrations table
is hidden from reflection.
*/
package db

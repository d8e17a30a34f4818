// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/polls/db"
	"github.com/danielhkuo/polls/testutil"
)

func TestReflect_FixtureTables(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	schema, err := db.Reflect(context.Background(), conn, db.SQLite)
	require.NoError(t, err)

	// schema_migrations and sqlite_sequence are bookkeeping, not tables
	want := []string{"auth_user", "polls_choice", "polls_question"}
	if diff := cmp.Diff(want, schema.TableNames()); diff != "" {
		t.Errorf("TableNames() mismatch (-want +got):\n%s", diff)
	}
}

func TestReflect_Columns(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	schema, err := db.Reflect(context.Background(), conn, db.SQLite)
	require.NoError(t, err)

	question, err := schema.Table("polls_question")
	require.NoError(t, err)

	want := []db.Column{
		{Name: "id", Type: "integer", NotNull: true, PrimaryKey: true, Position: 0},
		{Name: "question_text", Type: "varchar(200)", NotNull: true, Position: 1},
		{Name: "pub_date", Type: "datetime", NotNull: true, Position: 2},
	}
	if diff := cmp.Diff(want, question.Columns); diff != "" {
		t.Errorf("polls_question columns mismatch (-want +got):\n%s", diff)
	}

	col, err := question.C("pub_date")
	require.NoError(t, err)
	assert.Equal(t, "datetime", col.Type)

	choice, err := schema.Table("polls_choice")
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "choice_text", "votes", "question_id"}, choice.ColumnNames())
	assert.True(t, choice.HasColumn("question_id"))
	assert.False(t, choice.HasColumn("pub_date"))
}

func TestReflect_TypesAreLowercase(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	_, err := conn.Exec(`CREATE TABLE polls_tag (id INTEGER PRIMARY KEY, label VARCHAR(50) NOT NULL, Weight Real)`)
	require.NoError(t, err)

	schema, err := db.Reflect(context.Background(), conn, db.SQLite)
	require.NoError(t, err)

	tag, err := schema.Table("polls_tag")
	require.NoError(t, err)

	want := []db.Column{
		{Name: "id", Type: "integer", PrimaryKey: true, Position: 0},
		{Name: "label", Type: "varchar(50)", NotNull: true, Position: 1},
		{Name: "Weight", Type: "real", Position: 2},
	}
	if diff := cmp.Diff(want, tag.Columns); diff != "" {
		t.Errorf("polls_tag columns mismatch (-want +got):\n%s", diff)
	}
}

func TestReflect_SqlitePrefixedUserTables(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	_, err := conn.Exec(`CREATE TABLE sqliteXnotes (id integer PRIMARY KEY)`)
	require.NoError(t, err)
	_, err = conn.Exec(`CREATE TABLE sqlite_notes_mirror (id integer PRIMARY KEY)`)
	require.Error(t, err, "sqlite_ names are reserved")

	schema, err := db.Reflect(context.Background(), conn, db.SQLite)
	require.NoError(t, err)

	assert.Equal(t, []string{"auth_user", "polls_choice", "polls_question", "sqliteXnotes"}, schema.TableNames())
}

func TestReflect_LookupErrors(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	schema, err := db.Reflect(context.Background(), conn, db.SQLite)
	require.NoError(t, err)

	_, err = schema.Table("polls_answer")
	assert.ErrorIs(t, err, db.ErrUnknownTable)

	question, err := schema.Table("polls_question")
	require.NoError(t, err)
	_, err = question.C("votes")
	assert.ErrorIs(t, err, db.ErrUnknownColumn)
}

func TestSchemaRequire(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	schema, err := db.Reflect(context.Background(), conn, db.SQLite)
	require.NoError(t, err)

	assert.NoError(t, schema.Require("auth_user", "polls_question", "polls_choice"))

	err = schema.Require("polls_question", "polls_vote", "polls_tag")
	require.Error(t, err)
	assert.ErrorIs(t, err, db.ErrUnknownTable)
	assert.Contains(t, err.Error(), "polls_vote")
	assert.Contains(t, err.Error(), "polls_tag")
}

func TestReflect_EmptyDatabase(t *testing.T) {
	conn, err := db.Connect(context.Background(), db.SQLite, filepath.Join(t.TempDir(), "empty.sqlite3"))
	require.NoError(t, err)
	defer conn.Close()

	schema, err := db.Reflect(context.Background(), conn, db.SQLite)
	require.NoError(t, err)
	assert.Empty(t, schema.TableNames())
}

func TestReflect_QueryFailureIsReflectionError(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	conn.Close()

	_, err := db.Reflect(context.Background(), conn, db.SQLite)
	require.Error(t, err)

	var reflErr *db.ReflectionError
	assert.True(t, errors.As(err, &reflErr), "expected *ReflectionError, got %T", err)
}

func TestReflect_CancelledContext(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := db.Reflect(ctx, conn, db.SQLite)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOpen_UnreachableDatabase(t *testing.T) {
	// The parent directory does not exist, so SQLite cannot create the file
	path := filepath.Join(t.TempDir(), "missing", "db.sqlite3")

	_, err := db.Open(context.Background(), db.SQLite, path)
	require.Error(t, err)

	var connErr *db.ConnectionError
	require.True(t, errors.As(err, &connErr), "expected *ConnectionError, got %T", err)
	assert.Equal(t, db.SQLite, connErr.Dialect)
}

func TestOpen_ReflectsExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.sqlite3")

	conn, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	require.NoError(t, db.MigrateUp(conn, db.SQLite))
	require.NoError(t, conn.Close())

	store, err := db.Open(context.Background(), db.SQLite, path)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, db.SQLite, store.Dialect())
	assert.NoError(t, store.Schema().Require("auth_user", "polls_question", "polls_choice"))
}

func TestMigrateUp_Idempotent(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	// Second run is a no-op
	require.NoError(t, db.MigrateUp(conn, db.SQLite))

	schema, err := db.Reflect(context.Background(), conn, db.SQLite)
	require.NoError(t, err)
	assert.Len(t, schema.TableNames(), 3)
}

func TestParseDialect(t *testing.T) {
	tests := []struct {
		in      string
		want    db.Dialect
		wantErr bool
	}{
		{"", db.SQLite, false},
		{"sqlite", db.SQLite, false},
		{"SQLite3", db.SQLite, false},
		{"postgres", db.Postgres, false},
		{" postgresql ", db.Postgres, false},
		{"mysql", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := db.ParseDialect(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDialectPlaceholder(t *testing.T) {
	assert.Equal(t, "?", db.SQLite.Placeholder(3))
	assert.Equal(t, "$3", db.Postgres.Placeholder(3))
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/danielhkuo/polls/db"
	"github.com/danielhkuo/polls/models"
)

// startPostgres runs a throwaway postgres container. Needs docker, so it
// only runs with TEST_POSTGRES=1.
func startPostgres(t *testing.T) (dsn string, teardown func()) {
	t.Helper()
	if os.Getenv("TEST_POSTGRES") == "" {
		t.Skip("set TEST_POSTGRES=1 to run postgres integration tests")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(time.Second * 60),
		Env: map[string]string{
			"POSTGRES_USER":     "polls",
			"POSTGRES_PASSWORD": "polls",
			"POSTGRES_DB":       "polls",
		},
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn = fmt.Sprintf("postgres://polls:polls@%s:%s/polls?sslmode=disable", host, port.Port())
	return dsn, func() { container.Terminate(ctx) }
}

func TestPostgres_ReflectAndQuery(t *testing.T) {
	dsn, teardown := startPostgres(t)
	defer teardown()
	ctx := context.Background()

	conn, err := db.Connect(ctx, db.Postgres, dsn)
	require.NoError(t, err)
	require.NoError(t, db.MigrateUp(conn, db.Postgres))

	store, err := db.New(ctx, conn, db.Postgres)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, []string{"auth_user", "polls_choice", "polls_question"}, store.Schema().TableNames())

	question, err := store.Schema().Table("polls_question")
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "question_text", "pub_date"}, question.ColumnNames())
	id, err := question.C("id")
	require.NoError(t, err)
	assert.True(t, id.PrimaryKey)
	assert.Equal(t, 0, id.Position)

	newest := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	for i := 6; i >= 0; i-- {
		_, err := conn.Exec(`INSERT INTO polls_question (question_text, pub_date) VALUES ($1, $2)`,
			fmt.Sprintf("Question %d", i), newest.AddDate(0, 0, -i))
		require.NoError(t, err)
	}

	sess, err := store.Session(ctx)
	require.NoError(t, err)
	defer sess.Close()

	rows, err := sess.List(ctx, models.TableQuestion, db.ListOptions{
		OrderBy:    "pub_date",
		Descending: true,
		Limit:      models.LatestQuestionCount,
	})
	require.NoError(t, err)
	require.Len(t, rows, 5)

	first, err := models.QuestionFromRow(rows[0])
	require.NoError(t, err)
	assert.True(t, first.PubDate.Equal(newest))

	_, err = sess.GetOne(ctx, models.TableQuestion, db.Eq("id", 999))
	assert.ErrorIs(t, err, db.ErrNotFound)

	n, err := sess.Count(ctx, models.TableQuestion, db.Where("pub_date", db.OpLt, newest))
	require.NoError(t, err)
	assert.Equal(t, int64(6), n)
}

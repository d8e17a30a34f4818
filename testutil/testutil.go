// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/db"
)

// TestAdminSalt is the admin salt used by GetTestConfig
const TestAdminSalt = "test-admin-salt"

// SetupTestDB creates a fresh SQLite file with the polls migrations applied
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "db.sqlite3")
	conn, err := db.Connect(context.Background(), db.SQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.MigrateUp(conn, db.SQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupTestStore reflects a migrated test database. Rows inserted through
// the returned *sql.DB are visible to the store.
func SetupTestStore(t *testing.T) (*db.Store, *sql.DB) {
	t.Helper()

	conn := SetupTestDB(t)
	store, err := db.New(context.Background(), conn, db.SQLite)
	if err != nil {
		t.Fatalf("Failed to reflect test database: %v", err)
	}

	return store, conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8000,
		DatabaseURL:  ":memory:",
		DatabaseType: string(db.SQLite),
		AdminKeySalt: TestAdminSalt,
	}
}

// CreateTestQuestion inserts a question and returns its ID
func CreateTestQuestion(t *testing.T, conn *sql.DB, text string, pubDate time.Time) int64 {
	t.Helper()

	res, err := conn.Exec(`
		INSERT INTO polls_question (question_text, pub_date)
		VALUES (?, ?)
	`, text, pubDate.UTC())
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read question ID: %v", err)
	}
	return id
}

// AddTestChoice adds a choice to a question and returns its ID
func AddTestChoice(t *testing.T, conn *sql.DB, questionID int64, text string, votes int) int64 {
	t.Helper()

	res, err := conn.Exec(`
		INSERT INTO polls_choice (choice_text, votes, question_id)
		VALUES (?, ?, ?)
	`, text, votes, questionID)
	if err != nil {
		t.Fatalf("Failed to create test choice: %v", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read choice ID: %v", err)
	}
	return id
}

// CreateTestUser inserts an active, non-staff user and returns its ID
func CreateTestUser(t *testing.T, conn *sql.DB, username string) int64 {
	t.Helper()

	res, err := conn.Exec(`
		INSERT INTO auth_user (password, is_superuser, username, first_name, last_name,
		                       email, is_staff, is_active, date_joined)
		VALUES ('!', 0, ?, '', '', ?, 0, 1, ?)
	`, username, username+"@example.com", time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read user ID: %v", err)
	}
	return id
}

// SeedQuestions inserts n questions published one day apart, oldest
// first, ending at newest. IDs are returned in insertion order.
func SeedQuestions(t *testing.T, conn *sql.DB, n int, newest time.Time) []int64 {
	t.Helper()

	ids := make([]int64, 0, n)
	for i := n - 1; i >= 0; i-- {
		pubDate := newest.AddDate(0, 0, -i)
		ids = append(ids, CreateTestQuestion(t, conn, "Question "+pubDate.Format("2006-01-02"), pubDate))
	}
	return ids
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, headers map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

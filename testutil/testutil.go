// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/question-mark/cliparse"
	"github.com/danielhkuo/question-mark/db"
	"github.com/danielhkuo/question-mark/models"
	"github.com/danielhkuo/question-mark/store"
)

// TestAdminKey is the admin secret used by test configurations
const TestAdminKey = "test-admin-key"

// SetupSQLStore creates a fresh in-memory SQLite store with the schema applied
func SetupSQLStore(t *testing.T) *store.SQLStore {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// The pool must stay on one connection or each one gets its own
	// private in-memory database.
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return store.NewSQLStore(conn)
}

// SetupBlobStore creates a fresh in-memory badger store
func SetupBlobStore(t *testing.T) *store.BlobStore {
	t.Helper()

	st, err := store.OpenBlobInMemory()
	if err != nil {
		t.Fatalf("Failed to open test blob store: %v", err)
	}
	return st
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3000,
		StorageDriver: cliparse.DriverSQLite,
		DatabaseURL:   ":memory:",
		AdminKey:      TestAdminKey,
	}
}

// SeedQuestion stores a question directly and returns the stored record
func SeedQuestion(t *testing.T, st store.Store, target, belief, text string) models.Question {
	t.Helper()

	rec, err := st.Create(models.NewQuestion{
		Target:       target,
		Belief:       belief,
		QuestionText: text,
	})
	if err != nil {
		t.Fatalf("Failed to seed question: %v", err)
	}
	return rec
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

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

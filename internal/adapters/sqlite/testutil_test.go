// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() to ensure tests run against
// the authoritative schema, preventing drift between test and production.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/cppgen/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedRun inserts a completed run and returns its ID.
func seedRun(t *testing.T, db *sql.DB, id, status string) string {
	t.Helper()
	if id == "" {
		id = "RUN-001"
	}
	if status == "" {
		status = "completed"
	}
	_, err := db.Exec("INSERT INTO runs (id, model_path, status) VALUES (?, 'model.yaml', ?)", id, status)
	if err != nil {
		t.Fatalf("failed to seed run: %v", err)
	}
	return id
}

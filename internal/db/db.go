// Package db owns the SQLite ledger database of generation runs.
package db

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/cppgen/internal/errors"
)

// Dir is the project directory holding configuration and the ledger.
const Dir = ".cppgen"

// FileName is the ledger database file name inside Dir.
const FileName = "ledger.db"

var db *sql.DB

// GetDB returns the database connection, initializing if needed.
// The ledger lives in .cppgen/ledger.db below the working directory.
func GetDB() (*sql.DB, error) {
	if db != nil {
		return db, nil
	}

	path, err := GetDBPath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create %s directory", Dir)
	}

	conn, err := Open(path)
	if err != nil {
		return nil, err
	}
	db = conn
	return db, nil
}

// Open opens the database at path and brings its schema up to date.
// Use ":memory:" for a throwaway ledger.
func Open(path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}
	// A single connection keeps ":memory:" databases shared across queries.
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "failed to enable foreign keys")
	}
	if err := InitSchema(conn); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "failed to initialize schema")
	}
	return conn, nil
}

// Close closes the database connection.
func Close() error {
	if db != nil {
		err := db.Close()
		db = nil
		return err
	}
	return nil
}

// GetDBPath returns the path to the database file.
func GetDBPath() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "failed to get working directory")
	}
	return filepath.Join(wd, Dir, FileName), nil
}

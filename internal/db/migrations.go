package db

import (
	"database/sql"

	"github.com/example/cppgen/internal/errors"
	"github.com/example/cppgen/internal/logging"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.Tx) error
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_runs_and_run_files",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_warning_count_to_runs",
		Up:      migrationV2,
	},
}

// RunMigrations executes all pending migrations
func RunMigrations(conn *sql.DB) error {
	if err := createVersionTable(conn); err != nil {
		return errors.Wrap(err, "failed to create schema_version table")
	}

	var currentVersion int
	err := conn.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil {
		return errors.Wrap(err, "failed to get current schema version")
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		logging.Logger.Infow("running migration", "version", migration.Version, "name", migration.Name)

		tx, err := conn.Begin()
		if err != nil {
			return errors.Wrapf(err, "failed to begin transaction for migration %d", migration.Version)
		}

		if err := migration.Up(tx); err != nil {
			tx.Rollback()
			return errors.Wrapf(err, "migration %d failed", migration.Version)
		}

		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version); err != nil {
			tx.Rollback()
			return errors.Wrapf(err, "failed to record migration %d", migration.Version)
		}

		if err := tx.Commit(); err != nil {
			return errors.Wrapf(err, "failed to commit migration %d", migration.Version)
		}
	}

	return nil
}

// migrationV1 creates the first ledger tables, without warning counts.
func migrationV1(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			model_path TEXT NOT NULL,
			output_dir TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL CHECK(status IN ('completed', 'failed')),
			dry_run INTEGER NOT NULL DEFAULT 0,
			file_count INTEGER NOT NULL DEFAULT 0,
			error TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_status ON runs(status);
		CREATE TABLE IF NOT EXISTS run_files (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			path TEXT NOT NULL,
			kind TEXT NOT NULL CHECK(kind IN ('declaration', 'definition')),
			element TEXT NOT NULL DEFAULT '',
			checksum TEXT NOT NULL,
			size INTEGER NOT NULL DEFAULT 0,
			FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
		);
		CREATE INDEX IF NOT EXISTS idx_run_files_run ON run_files(run_id);
	`)
	return err
}

// migrationV2 adds the warning count reported by each run.
func migrationV2(tx *sql.Tx) error {
	_, err := tx.Exec("ALTER TABLE runs ADD COLUMN warning_count INTEGER NOT NULL DEFAULT 0")
	return err
}

// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/cppgen/internal/errors"
	"github.com/example/cppgen/internal/ports/secondary"
)

// LedgerRepository implements secondary.LedgerRepository with SQLite.
type LedgerRepository struct {
	db *sql.DB
}

// NewLedgerRepository creates a new SQLite ledger repository.
func NewLedgerRepository(db *sql.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// CreateRun persists a new run.
func (r *LedgerRepository) CreateRun(ctx context.Context, run *secondary.RunRecord) error {
	var runErr sql.NullString
	if run.Error != "" {
		runErr = sql.NullString{String: run.Error, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO runs (id, model_path, output_dir, status, dry_run, file_count, warning_count, error) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		run.ID, run.ModelPath, run.OutputDir, run.Status, run.DryRun, run.FileCount, run.WarningCount, runErr,
	)
	if err != nil {
		return errors.Wrap(err, "failed to create run")
	}
	return nil
}

// AddFiles records the units produced by a run in a single transaction.
func (r *LedgerRepository) AddFiles(ctx context.Context, runID string, files []*secondary.FileRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO run_files (run_id, path, kind, element, checksum, size) VALUES (?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return errors.Wrap(err, "failed to prepare file insert")
	}
	defer stmt.Close()

	for _, f := range files {
		if _, err := stmt.ExecContext(ctx, runID, f.Path, f.Kind, f.Element, f.Checksum, f.Size); err != nil {
			return errors.Wrapf(err, "failed to record file %s", f.Path)
		}
	}
	return tx.Commit()
}

// GetRun retrieves a run by its ID.
func (r *LedgerRepository) GetRun(ctx context.Context, id string) (*secondary.RunRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, model_path, output_dir, status, dry_run, file_count, warning_count, error, created_at FROM runs WHERE id = ?",
		id,
	)
	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, errors.WithHint(
			errors.Wrapf(errors.ErrNotFound, "run %s", id),
			"list recorded runs with 'cppgen history list'",
		)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get run")
	}
	return run, nil
}

// ListRuns retrieves runs matching the given filters, newest first.
func (r *LedgerRepository) ListRuns(ctx context.Context, filters secondary.RunFilters) ([]*secondary.RunRecord, error) {
	query := "SELECT id, model_path, output_dir, status, dry_run, file_count, warning_count, error, created_at FROM runs WHERE 1=1"
	var args []any

	if filters.Status != "" {
		query += " AND status = ?"
		args = append(args, filters.Status)
	}
	query += " ORDER BY CAST(SUBSTR(id, 5) AS INTEGER) DESC"
	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list runs")
	}
	defer rows.Close()

	var runs []*secondary.RunRecord
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan run")
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// ListFiles retrieves the files of a run in the order they were produced.
func (r *LedgerRepository) ListFiles(ctx context.Context, runID string) ([]*secondary.FileRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT run_id, path, kind, element, checksum, size FROM run_files WHERE run_id = ? ORDER BY id",
		runID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list files")
	}
	defer rows.Close()

	var files []*secondary.FileRecord
	for rows.Next() {
		var f secondary.FileRecord
		if err := rows.Scan(&f.RunID, &f.Path, &f.Kind, &f.Element, &f.Checksum, &f.Size); err != nil {
			return nil, errors.Wrap(err, "failed to scan file")
		}
		files = append(files, &f)
	}
	return files, rows.Err()
}

// GetNextID returns the next available run ID.
func (r *LedgerRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM runs",
	).Scan(&maxID)
	if err != nil {
		return "", errors.Wrap(err, "failed to get next run ID")
	}

	return fmt.Sprintf("RUN-%03d", maxID+1), nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (*secondary.RunRecord, error) {
	var run secondary.RunRecord
	var runErr, createdAt sql.NullString
	err := s.Scan(&run.ID, &run.ModelPath, &run.OutputDir, &run.Status, &run.DryRun,
		&run.FileCount, &run.WarningCount, &runErr, &createdAt)
	if err != nil {
		return nil, err
	}
	run.Error = runErr.String
	run.CreatedAt = createdAt.String
	return &run, nil
}

// Ensure LedgerRepository implements the interface
var _ secondary.LedgerRepository = (*LedgerRepository)(nil)

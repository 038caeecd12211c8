package secondary

import "context"

// LedgerRepository defines the secondary port for the generation ledger.
type LedgerRepository interface {
	// CreateRun persists a new run.
	CreateRun(ctx context.Context, run *RunRecord) error

	// AddFiles records the units produced by a run.
	AddFiles(ctx context.Context, runID string, files []*FileRecord) error

	// GetRun retrieves a run by its ID.
	GetRun(ctx context.Context, id string) (*RunRecord, error)

	// ListRuns retrieves runs matching the given filters, newest first.
	ListRuns(ctx context.Context, filters RunFilters) ([]*RunRecord, error)

	// ListFiles retrieves the files of a run in the order they were produced.
	ListFiles(ctx context.Context, runID string) ([]*FileRecord, error)

	// GetNextID returns the next available run ID.
	GetNextID(ctx context.Context) (string, error)
}

// RunRecord represents a generation run as stored in persistence.
type RunRecord struct {
	ID           string
	ModelPath    string
	OutputDir    string
	Status       string
	DryRun       bool
	FileCount    int
	WarningCount int
	Error        string
	CreatedAt    string
}

// FileRecord represents one generated unit as stored in persistence.
type FileRecord struct {
	RunID    string
	Path     string
	Kind     string
	Element  string
	Checksum string
	Size     int
}

// RunFilters contains filter options for querying runs.
type RunFilters struct {
	Status string
	Limit  int
}

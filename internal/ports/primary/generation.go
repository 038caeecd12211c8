// Package primary defines the primary ports (driving interfaces) of the application.
package primary

import (
	"context"

	"github.com/example/cppgen/internal/core/generation"
)

// GenerationService defines the primary port for generation runs.
type GenerationService interface {
	// Generate loads a model, renders its units and writes them unless DryRun is set.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// ListRuns lists recorded runs, newest first.
	ListRuns(ctx context.Context, filters RunFilters) ([]*Run, error)

	// GetRun retrieves a run and its files by ID.
	GetRun(ctx context.Context, runID string) (*Run, error)
}

// GenerateRequest contains parameters for a generation run.
type GenerateRequest struct {
	ModelPath string
	OutputDir string
	Options   generation.Options
	DryRun    bool
	// Strict fails the run when any warning is reported.
	Strict bool
}

// GenerateResponse contains the result of a generation run.
type GenerateResponse struct {
	RunID       string
	Directories []string
	Files       []*GeneratedFile
	Diagnostics []Diagnostic
	DryRun      bool
}

// GeneratedFile describes one planned or written unit.
type GeneratedFile struct {
	Path     string
	Kind     string // "declaration" or "definition"
	Element  string
	Checksum string // hex sha256 of Content
	Size     int
	Content  string // empty when loaded from history
}

// Diagnostic is a skipped or passed-through model input.
type Diagnostic struct {
	Severity string // "info" or "warning"
	Element  string
	Message  string
}

// Run represents a recorded generation run at the port boundary.
type Run struct {
	ID           string
	ModelPath    string
	OutputDir    string
	Status       string // "completed" or "failed"
	DryRun       bool
	FileCount    int
	WarningCount int
	Error        string
	CreatedAt    string
	Files        []*GeneratedFile
}

// RunFilters contains filter options for listing runs.
type RunFilters struct {
	Status string
	Limit  int
}

// Run status constants
const (
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

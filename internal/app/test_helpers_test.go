package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/example/cppgen/internal/errors"
	"github.com/example/cppgen/internal/models"
	"github.com/example/cppgen/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockModelLoader implements secondary.ModelLoader for testing.
type mockModelLoader struct {
	doc     *models.Document
	loadErr error
	loaded  []string
}

func (m *mockModelLoader) Load(ctx context.Context, path string) (*models.Document, error) {
	m.loaded = append(m.loaded, path)
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.doc, nil
}

// mockLedgerRepository implements secondary.LedgerRepository for testing.
type mockLedgerRepository struct {
	runs      map[string]*secondary.RunRecord
	files     map[string][]*secondary.FileRecord
	next      int
	createErr error
}

func newMockLedgerRepository() *mockLedgerRepository {
	return &mockLedgerRepository{
		runs:  make(map[string]*secondary.RunRecord),
		files: make(map[string][]*secondary.FileRecord),
	}
}

func (m *mockLedgerRepository) CreateRun(ctx context.Context, run *secondary.RunRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.runs[run.ID] = run
	return nil
}

func (m *mockLedgerRepository) AddFiles(ctx context.Context, runID string, files []*secondary.FileRecord) error {
	m.files[runID] = append(m.files[runID], files...)
	return nil
}

func (m *mockLedgerRepository) GetRun(ctx context.Context, id string) (*secondary.RunRecord, error) {
	if run, ok := m.runs[id]; ok {
		return run, nil
	}
	return nil, errors.Wrapf(errors.ErrNotFound, "run %s", id)
}

func (m *mockLedgerRepository) ListRuns(ctx context.Context, filters secondary.RunFilters) ([]*secondary.RunRecord, error) {
	var result []*secondary.RunRecord
	for _, r := range m.runs {
		if filters.Status != "" && r.Status != filters.Status {
			continue
		}
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	if filters.Limit > 0 && len(result) > filters.Limit {
		result = result[:filters.Limit]
	}
	return result, nil
}

func (m *mockLedgerRepository) ListFiles(ctx context.Context, runID string) ([]*secondary.FileRecord, error) {
	return m.files[runID], nil
}

func (m *mockLedgerRepository) GetNextID(ctx context.Context) (string, error) {
	m.next++
	return fmt.Sprintf("RUN-%03d", m.next), nil
}

// mockOutput implements secondary.OutputWriter and secondary.OutputProvider.
type mockOutput struct {
	root     string
	dirs     []string
	files    map[string][]byte
	order    []string
	openErr  error
	writeErr error
}

func newMockOutput() *mockOutput {
	return &mockOutput{files: make(map[string][]byte)}
}

func (m *mockOutput) Open(root string) (secondary.OutputWriter, error) {
	if m.openErr != nil {
		return nil, m.openErr
	}
	m.root = root
	return m, nil
}

func (m *mockOutput) MkdirAll(ctx context.Context, path string, mode uint32) error {
	m.dirs = append(m.dirs, path)
	m.order = append(m.order, "mkdir "+path)
	return nil
}

func (m *mockOutput) WriteFile(ctx context.Context, path string, content []byte, mode uint32) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.files[path] = content
	m.order = append(m.order, "write "+path)
	return nil
}

var (
	_ secondary.ModelLoader      = (*mockModelLoader)(nil)
	_ secondary.LedgerRepository = (*mockLedgerRepository)(nil)
	_ secondary.OutputProvider   = (*mockOutput)(nil)
)

package app

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/example/cppgen/internal/core/generation"
	"github.com/example/cppgen/internal/ctxutil"
	"github.com/example/cppgen/internal/errors"
	"github.com/example/cppgen/internal/logging"
	"github.com/example/cppgen/internal/ports/primary"
	"github.com/example/cppgen/internal/ports/secondary"
)

// GenerationServiceImpl implements the GenerationService interface.
type GenerationServiceImpl struct {
	loader  secondary.ModelLoader
	ledger  secondary.LedgerRepository
	outputs secondary.OutputProvider
}

// NewGenerationService creates a new GenerationService with injected dependencies.
func NewGenerationService(loader secondary.ModelLoader, ledger secondary.LedgerRepository, outputs secondary.OutputProvider) *GenerationServiceImpl {
	return &GenerationServiceImpl{
		loader:  loader,
		ledger:  ledger,
		outputs: outputs,
	}
}

// Generate loads the model, plans its units and executes the plan. Every
// run is recorded in the ledger, failed and dry runs included.
func (s *GenerationServiceImpl) Generate(ctx context.Context, req primary.GenerateRequest) (*primary.GenerateResponse, error) {
	runID, err := s.ledger.GetNextID(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate run ID")
	}
	ctx = ctxutil.WithRunID(ctx, runID)
	log := logging.Logger.With("run", runID)
	log.Debugw("generation started", "model", req.ModelPath, "out", req.OutputDir, "dry_run", req.DryRun)

	run := &secondary.RunRecord{
		ID:        runID,
		ModelPath: req.ModelPath,
		OutputDir: req.OutputDir,
		Status:    primary.RunStatusCompleted,
		DryRun:    req.DryRun,
	}

	plan, err := s.plan(ctx, req)
	if err != nil {
		return nil, s.fail(ctx, run, err)
	}
	run.WarningCount = len(plan.Diagnostics.Warnings())
	for _, d := range plan.Diagnostics {
		log.Debugw("diagnostic", "severity", string(d.Severity), "element", d.Element, "message", d.Message)
	}

	if req.Strict && plan.Diagnostics.HasWarnings() {
		err := errors.WithDetail(
			errors.Wrapf(errors.ErrStrict, "%d warning(s)", run.WarningCount),
			plan.Diagnostics.Warnings().String(),
		)
		return nil, s.fail(ctx, run, errors.WithHint(err, "rerun without --strict to write best-effort output"))
	}

	if !req.DryRun {
		out, err := s.outputs.Open(req.OutputDir)
		if err != nil {
			return nil, s.fail(ctx, run, errors.Wrapf(err, "failed to open output directory %s", req.OutputDir))
		}
		if err := NewEffectExecutor(out).Execute(ctx, plan.Effects()); err != nil {
			return nil, s.fail(ctx, run, err)
		}
	}

	resp := toResponse(runID, req.DryRun, plan)
	run.FileCount = len(resp.Files)
	if err := s.ledger.CreateRun(ctx, run); err != nil {
		return nil, errors.Wrap(err, "failed to record run")
	}
	if err := s.ledger.AddFiles(ctx, runID, toFileRecords(runID, resp.Files)); err != nil {
		return nil, errors.Wrap(err, "failed to record generated files")
	}

	log.Infow("generation finished", "files", run.FileCount, "warnings", run.WarningCount, "dry_run", req.DryRun)
	return resp, nil
}

func (s *GenerationServiceImpl) plan(ctx context.Context, req primary.GenerateRequest) (*generation.Plan, error) {
	doc, err := s.loader.Load(ctx, req.ModelPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load model %s", req.ModelPath)
	}
	plan, err := generation.GeneratePlan(generation.Input{Document: doc, Options: req.Options})
	if err != nil {
		return nil, errors.Wrap(err, "failed to plan generation")
	}
	return plan, nil
}

// fail records run as failed and returns cause. A ledger failure is
// logged; the original error is the one reported.
func (s *GenerationServiceImpl) fail(ctx context.Context, run *secondary.RunRecord, cause error) error {
	run.Status = primary.RunStatusFailed
	run.Error = cause.Error()
	if err := s.ledger.CreateRun(ctx, run); err != nil {
		logging.Logger.Warnw("failed to record failed run", "run", run.ID, "error", err)
	}
	return cause
}

// ListRuns lists recorded runs.
func (s *GenerationServiceImpl) ListRuns(ctx context.Context, filters primary.RunFilters) ([]*primary.Run, error) {
	records, err := s.ledger.ListRuns(ctx, secondary.RunFilters{
		Status: filters.Status,
		Limit:  filters.Limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list runs")
	}

	runs := make([]*primary.Run, len(records))
	for i, r := range records {
		runs[i] = recordToRun(r)
	}
	return runs, nil
}

// GetRun retrieves a run and its files.
func (s *GenerationServiceImpl) GetRun(ctx context.Context, runID string) (*primary.Run, error) {
	record, err := s.ledger.GetRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	files, err := s.ledger.ListFiles(ctx, runID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list files of %s", runID)
	}

	run := recordToRun(record)
	for _, f := range files {
		run.Files = append(run.Files, &primary.GeneratedFile{
			Path:     f.Path,
			Kind:     f.Kind,
			Element:  f.Element,
			Checksum: f.Checksum,
			Size:     f.Size,
		})
	}
	return run, nil
}

// Helper functions

func toResponse(runID string, dryRun bool, plan *generation.Plan) *primary.GenerateResponse {
	resp := &primary.GenerateResponse{RunID: runID, DryRun: dryRun}
	for _, d := range plan.Directories {
		resp.Directories = append(resp.Directories, d.Path)
	}
	for _, u := range plan.Units {
		sum := sha256.Sum256([]byte(u.Content))
		resp.Files = append(resp.Files, &primary.GeneratedFile{
			Path:     u.Path,
			Kind:     string(u.Kind),
			Element:  u.Element,
			Checksum: hex.EncodeToString(sum[:]),
			Size:     len(u.Content),
			Content:  u.Content,
		})
	}
	for _, d := range plan.Diagnostics {
		resp.Diagnostics = append(resp.Diagnostics, primary.Diagnostic{
			Severity: string(d.Severity),
			Element:  d.Element,
			Message:  d.Message,
		})
	}
	return resp
}

func toFileRecords(runID string, files []*primary.GeneratedFile) []*secondary.FileRecord {
	records := make([]*secondary.FileRecord, len(files))
	for i, f := range files {
		records[i] = &secondary.FileRecord{
			RunID:    runID,
			Path:     f.Path,
			Kind:     f.Kind,
			Element:  f.Element,
			Checksum: f.Checksum,
			Size:     f.Size,
		}
	}
	return records
}

func recordToRun(r *secondary.RunRecord) *primary.Run {
	return &primary.Run{
		ID:           r.ID,
		ModelPath:    r.ModelPath,
		OutputDir:    r.OutputDir,
		Status:       r.Status,
		DryRun:       r.DryRun,
		FileCount:    r.FileCount,
		WarningCount: r.WarningCount,
		Error:        r.Error,
		CreatedAt:    r.CreatedAt,
	}
}

// Ensure GenerationServiceImpl implements the interface
var _ primary.GenerationService = (*GenerationServiceImpl)(nil)

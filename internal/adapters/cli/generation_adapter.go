// Package cli holds the adapters that translate CLI operations to primary
// port calls and render their results.
package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/cppgen/internal/errors"
	"github.com/example/cppgen/internal/ports/primary"
)

// GenerationAdapter is a thin adapter that translates CLI operations to GenerationService calls.
// It depends only on the GenerationService interface, enabling easy testing with mocks.
type GenerationAdapter struct {
	service primary.GenerationService
	out     io.Writer
}

// NewGenerationAdapter creates a new GenerationAdapter with the given service.
func NewGenerationAdapter(service primary.GenerationService, out io.Writer) *GenerationAdapter {
	return &GenerationAdapter{
		service: service,
		out:     out,
	}
}

// Generate runs a generation and prints its diagnostics and files. With
// printContent set, the rendered units are echoed as well.
func (a *GenerationAdapter) Generate(ctx context.Context, req primary.GenerateRequest, printContent bool) (*primary.GenerateResponse, error) {
	resp, err := a.service.Generate(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "generation failed")
	}

	a.printDiagnostics(resp.Diagnostics)

	verb := "wrote"
	if resp.DryRun {
		verb = "would write"
	}
	for _, f := range resp.Files {
		fmt.Fprintf(a.out, "%s %s %s\n", color.New(color.FgGreen).Sprint("✓"), verb, f.Path)
		if printContent {
			fmt.Fprintln(a.out)
			fmt.Fprint(a.out, f.Content)
			fmt.Fprintln(a.out)
		}
	}

	warnings := countWarnings(resp.Diagnostics)
	summary := fmt.Sprintf("%s: %d file(s), %d warning(s)", resp.RunID, len(resp.Files), warnings)
	if resp.DryRun {
		summary += " (dry run)"
	}
	if warnings > 0 {
		fmt.Fprintln(a.out, color.New(color.FgYellow).Sprint(summary))
	} else {
		fmt.Fprintln(a.out, summary)
	}
	return resp, nil
}

func (a *GenerationAdapter) printDiagnostics(diags []primary.Diagnostic) {
	for _, d := range diags {
		label := color.New(color.FgCyan).Sprint("info")
		if d.Severity == "warning" {
			label = color.New(color.FgYellow).Sprint("warning")
		}
		if d.Element == "" {
			fmt.Fprintf(a.out, "%s: %s\n", label, d.Message)
			continue
		}
		fmt.Fprintf(a.out, "%s: %s: %s\n", label, d.Element, d.Message)
	}
}

// List lists recorded runs with optional status filter.
func (a *GenerationAdapter) List(ctx context.Context, status string, limit int) ([]*primary.Run, error) {
	runs, err := a.service.ListRuns(ctx, primary.RunFilters{
		Status: status,
		Limit:  limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list runs")
	}

	if len(runs) == 0 {
		fmt.Fprintln(a.out, "No runs recorded.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Generate your first units:")
		fmt.Fprintln(a.out, "  cppgen generate model.yaml --out gen")
		return runs, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tFILES\tWARNINGS\tMODEL\tCREATED")
	fmt.Fprintln(w, "--\t------\t-----\t--------\t-----\t-------")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%s\n",
			run.ID,
			statusLabel(run),
			run.FileCount,
			run.WarningCount,
			run.ModelPath,
			run.CreatedAt,
		)
	}

	w.Flush()
	return runs, nil
}

// Show displays details for a single run.
func (a *GenerationAdapter) Show(ctx context.Context, runID string) (*primary.Run, error) {
	run, err := a.service.GetRun(ctx, runID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get run")
	}

	fmt.Fprintf(a.out, "\nRun: %s\n", run.ID)
	fmt.Fprintf(a.out, "Status:   %s\n", statusLabel(run))
	fmt.Fprintf(a.out, "Model:    %s\n", run.ModelPath)
	fmt.Fprintf(a.out, "Output:   %s\n", run.OutputDir)
	fmt.Fprintf(a.out, "Warnings: %d\n", run.WarningCount)
	fmt.Fprintf(a.out, "Created:  %s\n", run.CreatedAt)
	if run.Error != "" {
		fmt.Fprintf(a.out, "Error:    %s\n", color.New(color.FgRed).Sprint(run.Error))
	}

	if len(run.Files) > 0 {
		fmt.Fprintln(a.out)
		w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "PATH\tKIND\tELEMENT\tSIZE\tSHA256")
		for _, f := range run.Files {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", f.Path, f.Kind, f.Element, f.Size, shortChecksum(f.Checksum))
		}
		w.Flush()
	}
	fmt.Fprintln(a.out)

	return run, nil
}

func statusLabel(run *primary.Run) string {
	label := run.Status
	if run.DryRun {
		label += " (dry run)"
	}
	if run.Status == primary.RunStatusFailed {
		return color.New(color.FgRed).Sprint(label)
	}
	return label
}

func shortChecksum(sum string) string {
	if len(sum) > 12 {
		return sum[:12]
	}
	return sum
}

func countWarnings(diags []primary.Diagnostic) int {
	n := 0
	for _, d := range diags {
		if d.Severity == "warning" {
			n++
		}
	}
	return n
}

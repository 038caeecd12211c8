package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/cppgen/internal/errors"
	"github.com/example/cppgen/internal/ports/primary"
	"github.com/example/cppgen/internal/wire"
)

// HistoryCmd returns the history command
func HistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded generation runs",
		Long:  `List and inspect the generation runs recorded in .cppgen/ledger.db.`,
	}

	cmd.AddCommand(historyListCmd())
	cmd.AddCommand(historyShowCmd())

	return cmd
}

func historyListCmd() *cobra.Command {
	var status string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if status != "" && status != primary.RunStatusCompleted && status != primary.RunStatusFailed {
				return errInvalidStatus(status)
			}
			adapter, err := wire.GenerationAdapterWithOutput(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			_, err = adapter.List(cmd.Context(), status, limit)
			return err
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "", "Filter by status (completed, failed)")
	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "Maximum number of runs (0 for all)")

	return cmd
}

func historyShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <RUN-ID>",
		Short: "Show a run and the files it produced",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := wire.GenerationAdapterWithOutput(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			_, err = adapter.Show(cmd.Context(), args[0])
			return err
		},
	}
}

func errInvalidStatus(status string) error {
	return errors.WithHintf(
		errors.Newf("invalid status %q", status),
		"use %q or %q", primary.RunStatusCompleted, primary.RunStatusFailed,
	)
}

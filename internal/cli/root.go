// Package cli holds the cobra commands of the cppgen binary.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/cppgen/internal/logging"
	"github.com/example/cppgen/internal/version"
)

// RootCmd returns the cppgen root command with every subcommand attached.
func RootCmd() *cobra.Command {
	var verbosity int
	var logJSON bool

	rootCmd := &cobra.Command{
		Use:     "cppgen",
		Short:   "cppgen - C++ skeletons from UML design models",
		Version: version.String(),
		Long: `cppgen translates a UML design model into C++ header and source skeletons.
Packages become directories, classes become .h/.cpp pairs, and every run is
recorded in the ledger at .cppgen/ledger.db.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Initialize(logJSON, verbosity)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync()
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Write logs as JSON to stderr")

	rootCmd.AddCommand(InitCmd())
	rootCmd.AddCommand(GenerateCmd())
	rootCmd.AddCommand(HistoryCmd())
	rootCmd.AddCommand(ConfigCmd())

	return rootCmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/cppgen/internal/config"
)

// ConfigCmd returns the config command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the project configuration",
	}

	cmd.AddCommand(configShowCmd())

	return cmd
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long:  `Print the options generate would use, after defaults are applied to .cppgen/config.toml.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cfg, err := config.LoadOrDefault(".")
			if err != nil {
				return err
			}
			data, err := config.Encode(cfg)
			if err != nil {
				return err
			}

			if exists(config.Path(".")) {
				fmt.Fprintf(out, "# Source: %s\n", config.Path("."))
			} else {
				fmt.Fprintln(out, "# Source: defaults (no .cppgen/config.toml)")
			}
			fmt.Fprint(out, string(data))
			return nil
		},
	}
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/example/cppgen/internal/cli"
	"github.com/example/cppgen/internal/db"
	"github.com/example/cppgen/internal/errors"
)

func main() {
	rootCmd := cli.RootCmd()

	err := rootCmd.ExecuteContext(context.Background())
	_ = db.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.New(color.FgRed).Sprint("Error:"), err)
		if details := errors.FlattenDetails(err); details != "" {
			fmt.Fprintln(os.Stderr, details)
		}
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "%s %s\n", color.New(color.FgYellow).Sprint("Hint:"), hint)
		}
		os.Exit(1)
	}
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/cppgen/internal/config"
	"github.com/example/cppgen/internal/errors"
	"github.com/example/cppgen/internal/templates"
)

// StarterModelName is the model file written by init.
const StarterModelName = "model.yaml"

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var project, author string
	var force bool

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a starter configuration and model",
		Long: `Write .cppgen/config.toml with the default options and a starter model.yaml.
Existing files are kept unless --force is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			if project == "" {
				abs, err := filepath.Abs(dir)
				if err != nil {
					return errors.Wrap(err, "failed to resolve project directory")
				}
				project = filepath.Base(abs)
			}

			out := cmd.OutOrStdout()
			written, err := initProject(dir, templates.ModelData{Project: project, Author: author}, force)
			if err != nil {
				return err
			}
			for _, path := range written {
				fmt.Fprintf(out, "✓ Created %s\n", path)
			}
			if len(written) == 0 {
				fmt.Fprintln(out, "Nothing to do: configuration and model already exist (use --force to overwrite)")
				return nil
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Next steps:")
			fmt.Fprintf(out, "  cppgen generate %s --out gen\n", filepath.Join(dir, StarterModelName))
			fmt.Fprintln(out, "  cppgen history list")
			return nil
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "Project name for the starter model (default: directory name)")
	cmd.Flags().StringVarP(&author, "author", "a", "", "Author for the starter model")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing files")

	return cmd
}

// initProject writes the starter files below dir and returns the paths
// it wrote.
func initProject(dir string, data templates.ModelData, force bool) ([]string, error) {
	var written []string

	cfgPath := config.Path(dir)
	if force || !exists(cfgPath) {
		content, err := templates.RenderStarterConfig(config.Default())
		if err != nil {
			return nil, errors.Wrap(err, "failed to render starter config")
		}
		if err := os.MkdirAll(filepath.Dir(cfgPath), 0755); err != nil {
			return nil, errors.Wrapf(err, "failed to create %s", filepath.Dir(cfgPath))
		}
		if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
			return nil, errors.Wrap(err, "failed to write config")
		}
		written = append(written, cfgPath)
	}

	modelPath := filepath.Join(dir, StarterModelName)
	if force || !exists(modelPath) {
		content, err := templates.RenderStarterModel(data)
		if err != nil {
			return nil, errors.Wrap(err, "failed to render starter model")
		}
		if err := os.WriteFile(modelPath, []byte(content), 0644); err != nil {
			return nil, errors.Wrap(err, "failed to write starter model")
		}
		written = append(written, modelPath)
	}

	return written, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

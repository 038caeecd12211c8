package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/example/cppgen/internal/config"
	"github.com/example/cppgen/internal/errors"
	"github.com/example/cppgen/internal/ports/primary"
	"github.com/example/cppgen/internal/wire"
)

// GenerateCmd returns the generate command
func GenerateCmd() *cobra.Command {
	var outDir string
	var dryRun, strict, printContent bool

	cmd := &cobra.Command{
		Use:   "generate <model.yaml>",
		Short: "Generate C++ units from a model",
		Long: `Generate one .h/.cpp pair per class, one .h per interface and enumeration,
and one directory per package below the output directory.

Options come from .cppgen/config.toml in the working directory; the flags
below override them for this run.

Examples:
  cppgen generate model.yaml --out gen
  cppgen generate model.yaml --dry-run --print
  cppgen generate model.yaml --strict --tabs --mark-overrides`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault(".")
			if err != nil {
				return errors.WithHint(err, "fix .cppgen/config.toml or remove it to use the defaults")
			}
			applyOverrides(cmd.Flags(), cfg)

			adapter, err := wire.GenerationAdapterWithOutput(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			_, err = adapter.Generate(cmd.Context(), primary.GenerateRequest{
				ModelPath: args[0],
				OutputDir: outDir,
				Options:   cfg.ToOptions(),
				DryRun:    dryRun,
				Strict:    strict,
			}, printContent)
			return err
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "gen", "Output directory")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Plan the units without writing them")
	cmd.Flags().BoolVar(&printContent, "print", false, "Print the rendered units")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail the run when any warning is reported")
	addOptionFlags(cmd.Flags())

	return cmd
}

// Option override flags. Each maps to one config key.
const (
	flagHeaderComment    = "header-comment"
	flagLegacyHeader     = "legacy-header"
	flagDocComments      = "doc-comments"
	flagDefinitions      = "definitions"
	flagStdIncludes      = "std-includes"
	flagProvidesComments = "provides-comments"
	flagUsingNamespace   = "using-namespace"
	flagLowercaseDirs    = "lowercase-dirs"
	flagReturnStatements = "return-statements"
	flagNullLiteral      = "null-literal"
	flagTabs             = "tabs"
	flagIndent           = "indent"
	flagContainer        = "container"
	flagOrderedContainer = "ordered-container"
	flagMarkOverrides    = "mark-overrides"
)

func addOptionFlags(flags *pflag.FlagSet) {
	defaults := config.Default()
	flags.Bool(flagHeaderComment, defaults.EmitFileHeaderComment, "Emit the project header comment")
	flags.Bool(flagLegacyHeader, defaults.UseLegacyHeaderStyle, "Use the legacy project header layout")
	flags.Bool(flagDocComments, defaults.EmitDocComments, "Emit documentation comments")
	flags.Bool(flagDefinitions, defaults.GenerateDefinitionUnits, "Generate .cpp definition units")
	flags.Bool(flagStdIncludes, defaults.IncludeCommonContainerHeaders, "Include the standard container headers")
	flags.Bool(flagProvidesComments, defaults.EmitProvidedTypeComments, "Annotate standard includes with the types they provide")
	flags.Bool(flagUsingNamespace, defaults.EmitUsingNamespaceDirective, "Emit 'using namespace std;'")
	flags.Bool(flagLowercaseDirs, defaults.LowercaseDirectoryNames, "Lowercase package directory names")
	flags.Bool(flagReturnStatements, defaults.SynthesizeReturnStatements, "Synthesize return statements in method bodies")
	flags.Bool(flagNullLiteral, defaults.UseNullLiteralInsteadOfNullptr, "Return NULL instead of nullptr")
	flags.Bool(flagTabs, defaults.IndentWithTabs, "Indent with tabs")
	flags.Int(flagIndent, defaults.IndentSpaceCount, "Spaces per indent level")
	flags.String(flagContainer, defaults.SequenceContainer, "Container for unordered collections")
	flags.String(flagOrderedContainer, defaults.OrderedSequenceContainer, "Container for ordered collections")
	flags.Bool(flagMarkOverrides, defaults.MarkOverrides, "Mark realized interface operations override")
}

// applyOverrides copies every option flag set on the command line into cfg.
func applyOverrides(flags *pflag.FlagSet, cfg *config.Config) {
	bools := map[string]*bool{
		flagHeaderComment:    &cfg.EmitFileHeaderComment,
		flagLegacyHeader:     &cfg.UseLegacyHeaderStyle,
		flagDocComments:      &cfg.EmitDocComments,
		flagDefinitions:      &cfg.GenerateDefinitionUnits,
		flagStdIncludes:      &cfg.IncludeCommonContainerHeaders,
		flagProvidesComments: &cfg.EmitProvidedTypeComments,
		flagUsingNamespace:   &cfg.EmitUsingNamespaceDirective,
		flagLowercaseDirs:    &cfg.LowercaseDirectoryNames,
		flagReturnStatements: &cfg.SynthesizeReturnStatements,
		flagNullLiteral:      &cfg.UseNullLiteralInsteadOfNullptr,
		flagTabs:             &cfg.IndentWithTabs,
		flagMarkOverrides:    &cfg.MarkOverrides,
	}
	for name, dst := range bools {
		if flags.Changed(name) {
			*dst, _ = flags.GetBool(name)
		}
	}
	if flags.Changed(flagIndent) {
		cfg.IndentSpaceCount, _ = flags.GetInt(flagIndent)
	}
	if flags.Changed(flagContainer) {
		cfg.SequenceContainer, _ = flags.GetString(flagContainer)
	}
	if flags.Changed(flagOrderedContainer) {
		cfg.OrderedSequenceContainer, _ = flags.GetString(flagOrderedContainer)
	}
}

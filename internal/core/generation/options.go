package generation

import "github.com/example/cppgen/internal/core/typeresolve"

// Options is the configuration bundle consumed by the walker.
type Options struct {
	EmitFileHeaderComment          bool
	UseLegacyHeaderStyle           bool
	EmitDocComments                bool
	GenerateDefinitionUnits        bool
	IncludeCommonContainerHeaders  bool
	EmitProvidedTypeComments       bool
	EmitUsingNamespaceDirective    bool
	LowercaseDirectoryNames        bool
	SynthesizeReturnStatements     bool
	UseNullLiteralInsteadOfNullptr bool
	IndentWithTabs                 bool
	IndentSpaceCount               int

	// SequenceContainer wraps unordered collections ("vector" when empty).
	SequenceContainer string
	// OrderedSequenceContainer wraps ordered collections ("vector" when empty).
	OrderedSequenceContainer string
	// MarkOverrides appends "override" to realized interface operations.
	MarkOverrides bool
}

// DefaultOptions returns the options used when no configuration is present.
func DefaultOptions() Options {
	return Options{
		EmitFileHeaderComment:         true,
		EmitDocComments:               true,
		GenerateDefinitionUnits:       true,
		IncludeCommonContainerHeaders: true,
		LowercaseDirectoryNames:       true,
		SynthesizeReturnStatements:    true,
		IndentSpaceCount:              4,
		SequenceContainer:             typeresolve.DefaultContainer,
		OrderedSequenceContainer:      typeresolve.DefaultContainer,
	}
}

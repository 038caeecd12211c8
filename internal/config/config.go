// Package config reads and writes the project configuration in
// .cppgen/config.toml.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/example/cppgen/internal/core/generation"
)

// Location of the configuration relative to the project directory.
const (
	Dir      = ".cppgen"
	FileName = "config.toml"
)

// Config holds the generation options stored for a project. Keys absent
// from the file keep their Default value.
type Config struct {
	EmitFileHeaderComment          bool   `toml:"emit_file_header_comment"`
	UseLegacyHeaderStyle           bool   `toml:"use_legacy_header_style"`
	EmitDocComments                bool   `toml:"emit_doc_comments"`
	GenerateDefinitionUnits        bool   `toml:"generate_definition_units"`
	IncludeCommonContainerHeaders  bool   `toml:"include_common_container_headers"`
	EmitProvidedTypeComments       bool   `toml:"emit_provided_type_comments"`
	EmitUsingNamespaceDirective    bool   `toml:"emit_using_namespace_directive"`
	LowercaseDirectoryNames        bool   `toml:"lowercase_directory_names"`
	SynthesizeReturnStatements     bool   `toml:"synthesize_return_statements"`
	UseNullLiteralInsteadOfNullptr bool   `toml:"use_null_literal_instead_of_nullptr"`
	IndentWithTabs                 bool   `toml:"indent_with_tabs"`
	IndentSpaceCount               int    `toml:"indent_space_count"`
	SequenceContainer              string `toml:"sequence_container"`
	OrderedSequenceContainer       string `toml:"ordered_sequence_container"`
	MarkOverrides                  bool   `toml:"mark_overrides"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return FromOptions(generation.DefaultOptions())
}

// FromOptions converts generation options to a configuration.
func FromOptions(o generation.Options) *Config {
	return &Config{
		EmitFileHeaderComment:          o.EmitFileHeaderComment,
		UseLegacyHeaderStyle:           o.UseLegacyHeaderStyle,
		EmitDocComments:                o.EmitDocComments,
		GenerateDefinitionUnits:        o.GenerateDefinitionUnits,
		IncludeCommonContainerHeaders:  o.IncludeCommonContainerHeaders,
		EmitProvidedTypeComments:       o.EmitProvidedTypeComments,
		EmitUsingNamespaceDirective:    o.EmitUsingNamespaceDirective,
		LowercaseDirectoryNames:        o.LowercaseDirectoryNames,
		SynthesizeReturnStatements:     o.SynthesizeReturnStatements,
		UseNullLiteralInsteadOfNullptr: o.UseNullLiteralInsteadOfNullptr,
		IndentWithTabs:                 o.IndentWithTabs,
		IndentSpaceCount:               o.IndentSpaceCount,
		SequenceContainer:              o.SequenceContainer,
		OrderedSequenceContainer:       o.OrderedSequenceContainer,
		MarkOverrides:                  o.MarkOverrides,
	}
}

// ToOptions converts the configuration to generation options.
func (c *Config) ToOptions() generation.Options {
	return generation.Options{
		EmitFileHeaderComment:          c.EmitFileHeaderComment,
		UseLegacyHeaderStyle:           c.UseLegacyHeaderStyle,
		EmitDocComments:                c.EmitDocComments,
		GenerateDefinitionUnits:        c.GenerateDefinitionUnits,
		IncludeCommonContainerHeaders:  c.IncludeCommonContainerHeaders,
		EmitProvidedTypeComments:       c.EmitProvidedTypeComments,
		EmitUsingNamespaceDirective:    c.EmitUsingNamespaceDirective,
		LowercaseDirectoryNames:        c.LowercaseDirectoryNames,
		SynthesizeReturnStatements:     c.SynthesizeReturnStatements,
		UseNullLiteralInsteadOfNullptr: c.UseNullLiteralInsteadOfNullptr,
		IndentWithTabs:                 c.IndentWithTabs,
		IndentSpaceCount:               c.IndentSpaceCount,
		SequenceContainer:              c.SequenceContainer,
		OrderedSequenceContainer:       c.OrderedSequenceContainer,
		MarkOverrides:                  c.MarkOverrides,
	}
}

// Path returns the configuration file path for a project directory.
func Path(dir string) string {
	return filepath.Join(dir, Dir, FileName)
}

// LoadConfig reads .cppgen/config.toml from the specified directory.
// Resolution order: cwd only (no home fallback).
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(Path(dir), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("failed to parse config: unknown key %q", undecoded[0].String())
	}
	if cfg.IndentSpaceCount < 0 {
		return nil, fmt.Errorf("failed to parse config: indent_space_count must not be negative")
	}
	return cfg, nil
}

// LoadOrDefault reads the configuration, falling back to Default when the
// file does not exist.
func LoadOrDefault(dir string) (*Config, error) {
	if _, err := os.Stat(Path(dir)); os.IsNotExist(err) {
		return Default(), nil
	}
	return LoadConfig(dir)
}

// SaveConfig writes config.toml to directory
func SaveConfig(dir string, cfg *Config) error {
	cfgDir := filepath.Join(dir, Dir)
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s dir: %w", Dir, err)
	}

	data, err := Encode(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Encode renders cfg as TOML.
func Encode(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return buf.Bytes(), nil
}

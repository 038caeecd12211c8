// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/cppgen/internal/errors"
	"github.com/example/cppgen/internal/ports/secondary"
)

// OutputProvider implements secondary.OutputProvider on the local filesystem.
type OutputProvider struct{}

// NewOutputProvider creates a new filesystem output provider.
func NewOutputProvider() *OutputProvider {
	return &OutputProvider{}
}

// Open returns an OutputTree rooted at root. An empty root means the
// current directory.
func (p *OutputProvider) Open(root string) (secondary.OutputWriter, error) {
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve output directory %s", root)
	}
	return &OutputTree{root: abs}, nil
}

// OutputTree implements secondary.OutputWriter for one output directory.
// Every path is resolved below the root.
type OutputTree struct {
	root string
}

// Root returns the absolute output directory.
func (t *OutputTree) Root() string {
	return t.root
}

// MkdirAll creates a directory with all parent directories.
func (t *OutputTree) MkdirAll(ctx context.Context, path string, mode uint32) error {
	full, err := t.resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(full, os.FileMode(mode)); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", path)
	}
	return nil
}

// WriteFile writes content, creating missing parent directories.
func (t *OutputTree) WriteFile(ctx context.Context, path string, content []byte, mode uint32) error {
	full, err := t.resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", path)
	}
	if err := os.WriteFile(full, content, os.FileMode(mode)); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

func (t *OutputTree) resolve(path string) (string, error) {
	if filepath.IsAbs(path) {
		return "", errors.Newf("path %s is absolute", path)
	}
	full := filepath.Join(t.root, filepath.FromSlash(path))
	rel, err := filepath.Rel(t.root, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Newf("path %s escapes output directory %s", path, t.root)
	}
	return full, nil
}

// Ensure the adapters implement the interfaces
var (
	_ secondary.OutputProvider = (*OutputProvider)(nil)
	_ secondary.OutputWriter   = (*OutputTree)(nil)
)

package secondary

import "context"

// OutputWriter defines the secondary port for writing generated units.
// Paths are slash-separated and relative to the writer's root.
type OutputWriter interface {
	MkdirAll(ctx context.Context, path string, mode uint32) error
	WriteFile(ctx context.Context, path string, content []byte, mode uint32) error
}

// OutputProvider opens an OutputWriter rooted at a directory.
type OutputProvider interface {
	Open(root string) (OutputWriter, error)
}

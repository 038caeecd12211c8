// Package effects defines effect types as data structures representing I/O operations.
// The generation core returns effects; the application shell executes them.
// Effects are pure data - they describe what should happen, not how.
package effects

// File operations.
const (
	OpMkdir = "mkdir"
	OpWrite = "write"
)

// Default permissions for generated output.
const (
	DirMode  uint32 = 0o755
	FileMode uint32 = 0o644
)

// Effect is the base interface for all effects.
type Effect interface {
	// EffectType returns a string identifier for the effect type.
	EffectType() string
}

// LogEffect represents a logging operation.
type LogEffect struct {
	Level   string // "debug", "info" or "warn"
	Message string
	Fields  map[string]any
}

func (e LogEffect) EffectType() string { return "log" }

// FileEffect represents a file system operation. Path is relative to the
// output root the executor writes into.
type FileEffect struct {
	Operation string // OpMkdir or OpWrite
	Path      string
	Content   []byte // For write operations
	Mode      uint32 // File permissions
}

func (e FileEffect) EffectType() string { return "file" }

// Mkdir returns an effect creating the directory at path.
func Mkdir(path string) FileEffect {
	return FileEffect{Operation: OpMkdir, Path: path, Mode: DirMode}
}

// Write returns an effect writing content to path.
func Write(path string, content []byte) FileEffect {
	return FileEffect{Operation: OpWrite, Path: path, Content: content, Mode: FileMode}
}

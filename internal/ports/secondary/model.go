// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"

	"github.com/example/cppgen/internal/models"
)

// ModelLoader defines the secondary port for reading design models.
type ModelLoader interface {
	// Load reads and links the model stored at path.
	Load(ctx context.Context, path string) (*models.Document, error)
}

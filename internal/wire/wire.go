// Package wire provides dependency injection for cppgen.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"os"
	"sync"

	cliadapter "github.com/example/cppgen/internal/adapters/cli"
	"github.com/example/cppgen/internal/adapters/filesystem"
	"github.com/example/cppgen/internal/adapters/modelfile"
	"github.com/example/cppgen/internal/adapters/sqlite"
	"github.com/example/cppgen/internal/app"
	"github.com/example/cppgen/internal/db"
	"github.com/example/cppgen/internal/errors"
	"github.com/example/cppgen/internal/ports/primary"
)

var (
	generationService primary.GenerationService
	initErr           error
	once              sync.Once
)

// GenerationService returns the singleton GenerationService instance.
func GenerationService() (primary.GenerationService, error) {
	once.Do(initServices)
	return generationService, initErr
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	// The ledger database lives in the working directory
	database, err := db.GetDB()
	if err != nil {
		initErr = errors.Wrap(err, "failed to initialize ledger database")
		return
	}

	ledgerRepo := sqlite.NewLedgerRepository(database)
	loader := modelfile.NewLoader()
	outputs := filesystem.NewOutputProvider()

	generationService = app.NewGenerationService(loader, ledgerRepo, outputs)
}

// GenerationAdapter returns a new GenerationAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func GenerationAdapter() (*cliadapter.GenerationAdapter, error) {
	return GenerationAdapterWithOutput(os.Stdout)
}

// GenerationAdapterWithOutput returns a new GenerationAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func GenerationAdapterWithOutput(out io.Writer) (*cliadapter.GenerationAdapter, error) {
	service, err := GenerationService()
	if err != nil {
		return nil, err
	}
	return cliadapter.NewGenerationAdapter(service, out), nil
}

// Package app contains the application layer - service implementations and effect execution.
package app

import (
	"context"
	"maps"
	"slices"

	"github.com/example/cppgen/internal/core/effects"
	"github.com/example/cppgen/internal/ctxutil"
	"github.com/example/cppgen/internal/errors"
	"github.com/example/cppgen/internal/logging"
	"github.com/example/cppgen/internal/ports/secondary"
)

// EffectExecutor interprets and executes effects.
// This is the "Imperative Shell" - the only place I/O happens.
type EffectExecutor interface {
	Execute(ctx context.Context, effs []effects.Effect) error
}

// DefaultEffectExecutor implements EffectExecutor against an output tree.
type DefaultEffectExecutor struct {
	out secondary.OutputWriter
}

// NewEffectExecutor creates a new DefaultEffectExecutor writing through out.
func NewEffectExecutor(out secondary.OutputWriter) *DefaultEffectExecutor {
	return &DefaultEffectExecutor{out: out}
}

// Execute processes a slice of effects, executing each in sequence.
// It stops at the first failure.
func (e *DefaultEffectExecutor) Execute(ctx context.Context, effs []effects.Effect) error {
	for _, eff := range effs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.executeOne(ctx, eff); err != nil {
			return errors.Wrapf(err, "failed to execute %s effect", eff.EffectType())
		}
	}
	return nil
}

func (e *DefaultEffectExecutor) executeOne(ctx context.Context, eff effects.Effect) error {
	switch typed := eff.(type) {
	case effects.FileEffect:
		return e.executeFile(ctx, typed)
	case effects.LogEffect:
		executeLog(ctx, typed)
		return nil
	default:
		return errors.Newf("unknown effect type: %T", eff)
	}
}

func (e *DefaultEffectExecutor) executeFile(ctx context.Context, eff effects.FileEffect) error {
	switch eff.Operation {
	case effects.OpMkdir:
		return e.out.MkdirAll(ctx, eff.Path, eff.Mode)
	case effects.OpWrite:
		return e.out.WriteFile(ctx, eff.Path, eff.Content, eff.Mode)
	default:
		return errors.Newf("unknown file operation: %s", eff.Operation)
	}
}

func executeLog(ctx context.Context, eff effects.LogEffect) {
	kv := make([]any, 0, 2*len(eff.Fields)+2)
	if runID := ctxutil.RunFromContext(ctx); runID != "" {
		kv = append(kv, "run", runID)
	}
	for _, key := range slices.Sorted(maps.Keys(eff.Fields)) {
		kv = append(kv, key, eff.Fields[key])
	}
	switch eff.Level {
	case "debug":
		logging.Logger.Debugw(eff.Message, kv...)
	case "warn":
		logging.Logger.Warnw(eff.Message, kv...)
	default:
		logging.Logger.Infow(eff.Message, kv...)
	}
}

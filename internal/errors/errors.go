// Package errors provides error handling for cppgen.
//
// It re-exports github.com/cockroachdb/errors so callers get stack traces,
// wrapping and user-facing hints from one import:
//
//	if err := loader.Load(ctx, path); err != nil {
//	    return errors.Wrapf(err, "failed to load model %s", path)
//	}
//
//	return errors.WithHint(err, "run 'cppgen init' first")
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// AssertionFailedf reports a broken internal precondition.
var AssertionFailedf = crdb.AssertionFailedf

// Sentinel errors. Wrap them to add context; test with Is.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = New("not found")

	// ErrInvalidModel indicates the model file could not be interpreted.
	ErrInvalidModel = New("invalid model")

	// ErrStrict indicates a run failed because warnings were reported in strict mode.
	ErrStrict = New("warnings reported in strict mode")
)

// IsNotFoundError checks if an error is or wraps ErrNotFound.
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsInvalidModelError checks if an error is or wraps ErrInvalidModel.
func IsInvalidModelError(err error) bool {
	return err != nil && Is(err, ErrInvalidModel)
}

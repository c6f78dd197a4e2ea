// Package errors provides error handling for sculpt.
//
// This package re-exports github.com/cockroachdb/errors so every package in
// the generator gets stack traces, wrapping, hints and details from a single
// import, and it defines the sentinel errors that classify generation
// failures.
//
// Usage:
//
//	// Classify a failure and name the offending type
//	return errors.Wrapf(errors.ErrUnresolvedReference, "%s.%s references %s", owner, field, name)
//
//	// Tell the user how to fix it
//	return errors.WithHint(err, "declare the type or fix the spelling")
//
//	// Check errors
//	if errors.Is(err, errors.ErrNoRoot) {
//	    // ...
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
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
	Mark         = crdb.Mark
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
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Assertions
var (
	AssertionFailedf   = crdb.AssertionFailedf
	IsAssertionFailure = crdb.IsAssertionFailure
)

// Sentinel errors for generation failures.
// Wrap these with Wrapf to name the offending type while keeping errors.Is working.
var (
	// ErrNoRoot indicates no product type in the declaration set is marked as root
	ErrNoRoot = New("no root type declared")

	// ErrMultipleRoots indicates more than one product type is marked as root
	ErrMultipleRoots = New("multiple root types declared")

	// ErrUnresolvedReference indicates a field or variant names a type that is not declared
	ErrUnresolvedReference = New("unresolved type reference")

	// ErrInvalidFieldShape indicates a declaration whose shape the compiler does not support
	ErrInvalidFieldShape = New("invalid field shape")

	// ErrCycle indicates the type graph is not acyclic
	ErrCycle = New("dependency cycle")

	// ErrEmit indicates an internal inconsistency while serializing a schema.
	// Seeing it means the generator itself is broken, not the input.
	ErrEmit = New("emit failed")
)

// IsGraphError reports whether err stems from a structural defect in the
// declaration set (as opposed to I/O or an internal generator bug).
func IsGraphError(err error) bool {
	return err != nil && IsAny(err,
		ErrNoRoot,
		ErrMultipleRoots,
		ErrUnresolvedReference,
		ErrInvalidFieldShape,
		ErrCycle,
	)
}

// IsEmitError reports whether err is or wraps ErrEmit
func IsEmitError(err error) bool {
	return err != nil && Is(err, ErrEmit)
}

// Emitf reports an internal emitter inconsistency as an assertion failure
// marked with ErrEmit, so both IsAssertionFailure and Is(err, ErrEmit) hold.
func Emitf(format string, args ...interface{}) error {
	return Mark(AssertionFailedf(format, args...), ErrEmit)
}

// Hints returns all user hints attached to err, outermost first
func Hints(err error) []string {
	if err == nil {
		return nil
	}
	return GetAllHints(err)
}

// Package errors provides error handling for cxport.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints attached to user-facing failures
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrMalformedInput) {
//	    // handle decode failure
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
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Sentinel errors for the export pipeline.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrMalformedInput indicates the CX document could not be decoded.
	// This is the only condition that aborts an export (later-stage
	// anomalies degrade gracefully instead).
	ErrMalformedInput = New("malformed CX input")

	// ErrUnknownExporter indicates a requested exporter name is not registered
	ErrUnknownExporter = New("unknown exporter")
)

// IsMalformedInput checks if an error is or wraps ErrMalformedInput
func IsMalformedInput(err error) bool {
	return err != nil && Is(err, ErrMalformedInput)
}

// NewMalformedInput creates a malformed-input error with a formatted message
func NewMalformedInput(format string, args ...interface{}) error {
	return Wrap(ErrMalformedInput, Newf(format, args...).Error())
}

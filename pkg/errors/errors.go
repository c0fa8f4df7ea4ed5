// Package errors provides structured error types for itkplan.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI, TUI, and HTTP surfaces
//   - Machine-readable error codes for programmatic handling
//   - Descriptive messages naming the offending flags or components
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - CONFIG_*: disallowed flag combinations caught before graph assembly
//   - GRAPH_*: integrity violations in the assembled component graph
//   - UNSUPPORTED_*: recognized but unimplemented combinations
//   - INVALID_* / INTERNAL_*: input validation and unexpected failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeConfigConflict, "shared build requires shared hdf5")
//	if errors.Is(err, errors.ErrCodeConfigConflict) {
//	    // Handle configuration conflict
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidProfile, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration errors: a disallowed flag combination. Fatal,
	// reported with the conflicting flag names and values.
	ErrCodeConfigConflict Code = "CONFIG_CONFLICT"

	// Graph integrity errors: a bug in the component table or its
	// conditional-inclusion rules.
	ErrCodeDuplicateComponent Code = "GRAPH_DUPLICATE_COMPONENT"
	ErrCodeDanglingDependency Code = "GRAPH_DANGLING_DEPENDENCY"
	ErrCodeCycleDetected      Code = "GRAPH_CYCLE_DETECTED"
	ErrCodeUnknownComponent   Code = "GRAPH_UNKNOWN_COMPONENT"

	// Unsupported combinations: recognized but not implemented, e.g.
	// an unvalidated toolkit-version/feature pairing.
	ErrCodeUnsupported Code = "UNSUPPORTED_COMBINATION"

	// Input validation errors
	ErrCodeInvalidProfile Code = "INVALID_PROFILE"
	ErrCodeInvalidFlag    Code = "INVALID_FLAG"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

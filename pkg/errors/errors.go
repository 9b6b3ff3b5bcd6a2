// Package errors provides structured error types for the posthop CLI.
//
// Library packages report failures with sentinel errors (see package cost).
// This package turns them into coded errors at the application boundary so
// the CLI can print a short message and machine output can carry a stable
// code.
//
// # Error Codes
//
//   - INVALID_*: bad flags, files, or matrices
//   - FILE_NOT_FOUND: an input path does not exist
//   - UNDEFINED_EDGE, OVERFLOW: a solver could not price a route
//   - LIMIT_EXCEEDED: a matrix is above an algorithm's size ceiling
//   - SOLVER_DISAGREEMENT: two solvers returned different minimum costs
//   - INTERNAL_ERROR: anything else
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "size must be at least 2, got %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	err = errors.Wrap(errors.ErrCodeInvalidMatrix, origErr, "load %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidMatrix Code = "INVALID_MATRIX"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"

	// Solver errors
	ErrCodeUndefinedEdge      Code = "UNDEFINED_EDGE"
	ErrCodeOverflow           Code = "OVERFLOW"
	ErrCodeLimitExceeded      Code = "LIMIT_EXCEEDED"
	ErrCodeSolverDisagreement Code = "SOLVER_DISAGREEMENT"

	// Infrastructure errors
	ErrCodeCacheUnavailable Code = "CACHE_UNAVAILABLE"
	ErrCodeCancelled        Code = "CANCELLED"
	ErrCodeInternal         Code = "INTERNAL_ERROR"
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
// For *Error types, returns the message and cause without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// LimitExceededError reports a matrix above an algorithm's size ceiling.
type LimitExceededError struct {
	Algorithm string
	Size      int
	Limit     int
}

// Error implements the error interface.
func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("%s: %d posts exceeds limit of %d", e.Algorithm, e.Size, e.Limit)
}

// Code returns the error code for this error type.
func (e *LimitExceededError) Code() Code {
	return ErrCodeLimitExceeded
}

// Package errors provides structured error types for distrowave.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across all commands
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - NO_*: Required data missing from the source directory
//   - GIT_*: Failures of the underlying git CLI
//   - GRAPH_*: Dependency graph defects
//
// # Usage
//
//	err := errors.New(errors.ErrCodeNoCollections, "no collection files in %s", dir)
//	if errors.Is(err, errors.ErrCodeNoCollections) {
//	    // Handle missing source data
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeGitClone, origErr, "clone %s", url)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidTarget Code = "INVALID_TARGET"

	// Source data errors. Both abort the run: proceeding without collection
	// files or without any dependency edges would only produce empty output.
	ErrCodeNoCollections Code = "NO_COLLECTIONS"
	ErrCodeEmptyGraph    Code = "GRAPH_EMPTY"

	// Per-document parse failure. Callers may skip the document and continue.
	ErrCodeParse Code = "PARSE_ERROR"

	// Package or version lookups
	ErrCodePackageNotFound Code = "PACKAGE_NOT_FOUND"

	// Dependency graph defects
	ErrCodeGraphCycle Code = "GRAPH_CYCLE"

	// Git CLI failures
	ErrCodeGitClone  Code = "GIT_CLONE"
	ErrCodeGitRemote Code = "GIT_REMOTE"
	ErrCodeGitDiff   Code = "GIT_DIFF"

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

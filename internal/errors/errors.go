package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing errors
const (
	ErrArgs   = "ARGS"
	ErrIO     = "IO"
	ErrConfig = "CONFIG"
	ErrRender = "RENDER"
)

// Error represents a structured error with code, message, suggestion, and optional cause.
// It renders as:
//
//	✗ <What failed>
//
//	  <Why it failed - technical details>
//
//	  <How to fix it - actionable steps>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a new structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap wraps an existing error with a message, defaulting to ErrIO code.
// Most wrapped failures in sysgraph come from reading kernel counter files.
func Wrap(err error, message string) *Error {
	return &Error{
		Code:    ErrIO,
		Message: message,
		Cause:   err,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// NewArgument creates an ARGS error for bad command-line input.
func NewArgument(format string, args ...interface{}) *Error {
	return &Error{
		Code:       ErrArgs,
		Message:    fmt.Sprintf(format, args...),
		Suggestion: "Usage: sysgraph [samples [tdelay]] [--memory] [--cpu] [--cores] [--samples=N] [--tdelay=N]",
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var sgErr *Error
	if errors.As(err, &sgErr) {
		return sgErr.Code == code
	}
	return false
}

// ExitCode maps an error to the process exit status.
// Every failure is fatal, so anything non-nil exits 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

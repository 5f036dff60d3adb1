// Package errors provides structured error types for yogabind.
//
// Every failure that crosses the binding boundary carries a machine-readable
// code, so callers can tell a freed handle from malformed style input without
// parsing messages:
//   - INVALID_*: input validation failures (style values, documents, arguments)
//   - USE_AFTER_FREE, CONFIG_IN_USE: lifecycle violations
//   - ALLOCATION_FAILURE, UNSUPPORTED_PLATFORM, ENGINE_*: native engine failures
//   - CALLBACK_PANIC: a managed callback panicked while the engine was calling it
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidStyleInput, "cannot parse %q", s)
//	if errors.Is(err, errors.ErrCodeUseAfterFree) {
//	    // the node was already released
//	}
//
//	err := errors.Wrap(errors.ErrCodeUnsupportedPlatform, dlErr, "load %s", path)
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
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeInvalidStyleInput Code = "INVALID_STYLE_INPUT"
	ErrCodeInvalidFormat     Code = "INVALID_FORMAT"
	ErrCodeInvalidDocument   Code = "INVALID_DOCUMENT"
	ErrCodeInvalidNodeName   Code = "INVALID_NODE_NAME"
	ErrCodeInvalidPath       Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Lifecycle errors
	ErrCodeUseAfterFree Code = "USE_AFTER_FREE"
	ErrCodeConfigInUse  Code = "CONFIG_IN_USE"

	// Native engine errors
	ErrCodeAllocationFailure   Code = "ALLOCATION_FAILURE"
	ErrCodeUnsupportedPlatform Code = "UNSUPPORTED_PLATFORM"
	ErrCodeMissingSymbol       Code = "ENGINE_MISSING_SYMBOL"
	ErrCodeCallbackPanic       Code = "CALLBACK_PANIC"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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

// PanicError carries the value recovered from a managed callback.
type PanicError struct {
	Callback string // "measure", "baseline" or "dirtied"
	Value    any    // Value passed to panic
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("%s callback panicked: %v", e.Callback, e.Value)
}

// Code returns the error code for this error type.
func (e *PanicError) Code() Code {
	return ErrCodeCallbackPanic
}

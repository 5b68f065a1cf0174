// Package errors provides structured error types for the biodata builder.
//
// Errors carry a machine-readable code so callers can branch on failure
// categories without string matching:
//
//	err := errors.New(errors.ErrCodeImageTooLarge, "photo is %d bytes", size)
//	if errors.Is(err, errors.ErrCodeImageTooLarge) {
//	    // surface a size hint to the user
//	}
//
// None of these errors are fatal to a session: storage failures leave the
// in-memory state authoritative, and malformed persisted data falls back to
// defaults at load time.
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the failure categories the builder can hit.
const (
	// Persistence errors
	ErrCodeStorageUnavailable Code = "STORAGE_UNAVAILABLE"
	ErrCodeMalformedData      Code = "MALFORMED_DATA"

	// Photo intake errors
	ErrCodeInvalidImageType   Code = "INVALID_IMAGE_TYPE"
	ErrCodeImageTooLarge      Code = "IMAGE_TOO_LARGE"
	ErrCodeImageDecodeFailure Code = "IMAGE_DECODE_FAILURE"

	// Catalog errors
	ErrCodeMissingCatalogReference Code = "MISSING_CATALOG_REFERENCE"

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

// Is reports whether err carries the given error code anywhere in its chain.
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

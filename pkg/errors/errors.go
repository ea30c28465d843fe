// Package errors provides structured error types for linguist.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the HTTP API
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input or dataset validation failures
//   - NOT_FOUND*: Lookup misses surfaced at the CLI or HTTP boundary
//   - NETWORK_*: Failures while fetching the upstream dataset
//   - INTERNAL_*: Unexpected internal errors
//
// Library lookups never return NOT_FOUND; they report a miss with the
// boolean of a comma-ok pair. The code exists for the outer surfaces that
// turn a miss into an exit status or an HTTP 404. [ExitCode] is the CLI's
// mapping; the HTTP server keeps its own.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidDataset, "language %q: missing type", name)
//	if errors.Is(err, errors.ErrCodeInvalidDataset) {
//	    // refuse to start
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeNetwork, origErr, "failed to fetch %s", url)
package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

const (
	// Input validation errors
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidDataset Code = "INVALID_DATASET"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidPath    Code = "INVALID_PATH"

	// Lookup misses and missing files
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Upstream fetch failures
	ErrCodeNetwork     Code = "NETWORK_ERROR"
	ErrCodeTimeout     Code = "TIMEOUT"
	ErrCodeRateLimited Code = "RATE_LIMITED"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// coder is implemented by error types that carry a code without being an
// *Error, such as [RateLimitedError].
type coder interface {
	Code() Code
}

// GetCode returns the code of the first coded error in err's chain, or ""
// when there is none.
func GetCode(err error) Code {
	for err != nil {
		switch e := err.(type) {
		case *Error:
			return e.Code
		case coder:
			return e.Code()
		}
		err = errors.Unwrap(err)
	}
	return ""
}

// Is reports whether err carries code.
func Is(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// UserMessage returns err's text with the code prefixes of the *Error
// values in its chain removed. Uncoded errors are returned unchanged.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	msg := e.Message
	if e.Cause != nil {
		msg += ": " + UserMessage(e.Cause)
	}
	if err == error(e) {
		return msg
	}
	return strings.Replace(err.Error(), e.Error(), msg, 1)
}

// IsNotFound reports whether err carries one of the not-found codes.
func IsNotFound(err error) bool {
	switch GetCode(err) {
	case ErrCodeNotFound, ErrCodeFileNotFound:
		return true
	}
	return false
}

// Process exit statuses chosen by [ExitCode].
const (
	ExitFailure  = 1   // lookup misses and uncategorized errors
	ExitUsage    = 2   // invalid flags, paths, formats or config
	ExitDataset  = 3   // a dataset that does not parse or build
	ExitNetwork  = 4   // upstream fetch failures
	ExitCanceled = 130 // interrupted, as shells report SIGINT
)

// ExitCode maps err to a process exit status. A nil error maps to 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, context.Canceled) {
		return ExitCanceled
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ExitNetwork
	}
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidPath, ErrCodeInvalidFormat:
		return ExitUsage
	case ErrCodeInvalidDataset:
		return ExitDataset
	case ErrCodeNetwork, ErrCodeTimeout, ErrCodeRateLimited:
		return ExitNetwork
	default:
		return ExitFailure
	}
}

// RateLimitedError is returned for HTTP 429 responses.
type RateLimitedError struct {
	RetryAfter int // seconds, 0 when the server gave no hint
	Message    string
}

func (e *RateLimitedError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited: retry after %d seconds", e.RetryAfter)
	}
	return "rate limited"
}

func (e *RateLimitedError) Code() Code {
	return ErrCodeRateLimited
}

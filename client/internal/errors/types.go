// Package errors classifies failures of a single search exchange.
// Callers print both kinds through the same path; the kind exists for
// programmatic inspection and metrics labels.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory identifies which stage of the exchange failed.
type ErrorCategory int

const (
	// Transport errors: the request was not sent or no response arrived.
	// Examples: connection refused, DNS failure, transport timeout.
	Transport ErrorCategory = iota

	// Decode errors: a response arrived but its body is not valid JSON.
	Decode
)

// String returns a human-readable representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Transport:
		return "transport"
	case Decode:
		return "decode"
	default:
		return fmt.Sprintf("unknown(%d)", int(c))
	}
}

// ClassifiedError wraps an error with the stage that produced it.
type ClassifiedError struct {
	Category   ErrorCategory
	Op         string
	StatusCode int    // HTTP status code (0 when no response arrived)
	Body       string // truncated response body for decode failures
	Underlying error
}

// Error implements the error interface.
func (e *ClassifiedError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s %s error (HTTP %d): %v", e.Op, e.Category, e.StatusCode, e.Underlying)
	}
	return fmt.Sprintf("%s %s error: %v", e.Op, e.Category, e.Underlying)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *ClassifiedError) Unwrap() error {
	return e.Underlying
}

// CategoryOf returns the category of the first ClassifiedError in err's chain.
func CategoryOf(err error) (ErrorCategory, bool) {
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Category, true
	}
	return 0, false
}

// Is reports whether err carries the given category.
func Is(err error, c ErrorCategory) bool {
	got, ok := CategoryOf(err)
	return ok && got == c
}

package errors

import (
	"fmt"
	"unicode/utf8"
)

// maxBodySnippet bounds the body kept on decode errors.
const maxBodySnippet = 512

// NewNetworkError creates a classified error for transport-level failures.
func NewNetworkError(op string, err error) *ClassifiedError {
	return &ClassifiedError{
		Category:   Transport,
		Op:         op,
		Underlying: err,
	}
}

// NewDecodeError creates a classified error for a body that is not JSON.
func NewDecodeError(op string, statusCode int, body []byte, err error) *ClassifiedError {
	snippet := string(body)
	if len(body) > maxBodySnippet {
		// Back off to a rune boundary so the snippet stays valid UTF-8.
		cut := maxBodySnippet
		for cut > 0 && !utf8.RuneStart(body[cut]) {
			cut--
		}
		snippet = string(body[:cut]) + "..."
	}
	if err == nil {
		err = fmt.Errorf("response body is not valid JSON")
	}
	return &ClassifiedError{
		Category:   Decode,
		Op:         op,
		StatusCode: statusCode,
		Body:       snippet,
		Underlying: err,
	}
}

// Package errors defines the error taxonomy shared by the transport,
// repositories and form layer.
package errors

import (
	stderrors "errors"
	"fmt"
)

// NetworkError reports that the server could not be reached: connection
// refused, DNS failure, TLS failure or request timeout.
type NetworkError struct {
	Op         string
	Underlying error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s network error: %v", e.Op, e.Underlying)
}

func (e *NetworkError) Unwrap() error { return e.Underlying }

// HTTPError reports a non-2xx response.
type HTTPError struct {
	Op     string
	Status int
	Body   string // raw response body, for debugging
	// Message is the server supplied "message" or "error" field, if any.
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s failed: HTTP %d: %s", e.Op, e.Status, e.Message)
	}
	return fmt.Sprintf("%s failed: HTTP %d", e.Op, e.Status)
}

// ValidationError is produced client-side and never reaches the network.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsNetwork reports whether err is (or wraps) a *NetworkError.
func IsNetwork(err error) bool {
	var ne *NetworkError
	return stderrors.As(err, &ne)
}

// IsValidation reports whether err is (or wraps) a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return stderrors.As(err, &ve)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var he *HTTPError
	if stderrors.As(err, &he) {
		return he.Status
	}
	return 0
}

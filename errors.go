package saferoute

import (
	apierrors "github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/errors"
)

// Error taxonomy re-exported so callers compare against a single symbol.
type (
	NetworkError    = apierrors.NetworkError
	HTTPError       = apierrors.HTTPError
	ValidationError = apierrors.ValidationError
)

// IsNetwork reports whether err is a NetworkError (unreachable or timed out).
func IsNetwork(err error) bool { return apierrors.IsNetwork(err) }

// IsValidation reports whether err is a client-side ValidationError.
func IsValidation(err error) bool { return apierrors.IsValidation(err) }

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int { return apierrors.StatusCode(err) }

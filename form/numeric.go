package form

import (
	"math"
	"strconv"
	"strings"

	apierrors "github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/errors"
)

// ParseFloat parses a decimal typed by the user. A comma is accepted as the
// decimal separator. Empty input, NaN and infinities are rejected instead of
// being coerced to zero.
func ParseFloat(field, s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, apierrors.Required(field)
	}
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &apierrors.ValidationError{Field: field, Reason: "not a number"}
	}
	return v, nil
}

// ParseInt parses a whole number typed by the user.
func ParseInt(field, s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, apierrors.Required(field)
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &apierrors.ValidationError{Field: field, Reason: "not a whole number"}
	}
	return v, nil
}

// ParseNonNegativeInt is ParseInt for quantities and capacities.
func ParseNonNegativeInt(field, s string) (int, error) {
	v, err := ParseInt(field, s)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, &apierrors.ValidationError{Field: field, Reason: "must not be negative"}
	}
	return v, nil
}

// ParseID parses a reference to a server-assigned id.
func ParseID(field, s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, apierrors.Required(field)
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v <= 0 {
		return 0, &apierrors.ValidationError{Field: field, Reason: "must be a positive id"}
	}
	return v, nil
}

// ParseLatitude parses a latitude in [-90, 90].
func ParseLatitude(s string) (float64, error) {
	return parseCoordinate("latitude", s, 90)
}

// ParseLongitude parses a longitude in [-180, 180].
func ParseLongitude(s string) (float64, error) {
	return parseCoordinate("longitude", s, 180)
}

func parseCoordinate(field, s string, limit float64) (float64, error) {
	v, err := ParseFloat(field, s)
	if err != nil {
		return 0, err
	}
	if v < -limit || v > limit {
		return 0, &apierrors.ValidationError{Field: field, Reason: "out of range"}
	}
	return v, nil
}

// FormatFloat renders a stored number back into an editable string.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

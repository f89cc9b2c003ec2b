package form

import (
	"strings"
	"time"

	apierrors "github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/errors"
	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/types"
)

// ParseDateTime canonicalizes a date-time field. An unset field defaults to
// now; every result is local wall clock truncated to the minute.
func ParseDateTime(field, s string, now time.Time) (types.LocalDateTime, error) {
	if strings.TrimSpace(s) == "" {
		return types.NewLocalDateTime(now), nil
	}
	d, err := types.ParseLocalDateTime(s)
	if err != nil {
		return types.LocalDateTime{}, &apierrors.ValidationError{Field: field, Reason: "expected YYYY-MM-DDTHH:mm"}
	}
	return types.NewLocalDateTime(d.Time), nil
}

// FormatDateTime renders t in the canonical YYYY-MM-DDTHH:mm form.
func FormatDateTime(t time.Time) string {
	return types.NewLocalDateTime(t).String()
}

// ParseDate parses a calendar date (YYYY-MM-DD or DD/MM/YYYY) used by filters.
func ParseDate(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{types.DateLayout, "02/01/2006"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	if s == "" {
		return time.Time{}, apierrors.Required(field)
	}
	return time.Time{}, &apierrors.ValidationError{Field: field, Reason: "expected YYYY-MM-DD"}
}

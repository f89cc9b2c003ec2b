package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateTimeLayout is the canonical wire format: local wall clock, minute
// precision, no offset.
const DateTimeLayout = "2006-01-02T15:04"

// DateLayout is used by calendar date filters.
const DateLayout = "2006-01-02"

// Layouts accepted on input besides DateTimeLayout and RFC 3339.
var localLayouts = []string{
	DateTimeLayout,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006 15:04:05",
	"02/01/2006, 15:04:05",
}

// LocalDateTime is a wall-clock instant in time.Local.
type LocalDateTime struct {
	time.Time
}

// NewLocalDateTime converts t to local time truncated to the minute.
func NewLocalDateTime(t time.Time) LocalDateTime {
	t = t.In(time.Local)
	return LocalDateTime{time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, time.Local)}
}

// ParseLocalDateTime parses s as local wall clock. Strings carrying an
// offset (RFC 3339) are converted to local time.
func ParseLocalDateTime(s string) (LocalDateTime, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return LocalDateTime{}, fmt.Errorf("empty date-time")
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return LocalDateTime{t}, nil
		}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return LocalDateTime{t.In(time.Local)}, nil
	}
	return LocalDateTime{}, fmt.Errorf("unrecognised date-time %q", s)
}

// String renders the canonical form, or "" for the zero value.
func (d LocalDateTime) String() string {
	if d.IsZero() {
		return ""
	}
	return d.In(time.Local).Format(DateTimeLayout)
}

// Display renders the pt-BR format used by the app, dd/mm/yyyy HH:mm.
func (d LocalDateTime) Display() string {
	if d.IsZero() {
		return ""
	}
	return d.In(time.Local).Format("02/01/2006 15:04")
}

// DateString returns the calendar date, YYYY-MM-DD.
func (d LocalDateTime) DateString() string {
	if d.IsZero() {
		return ""
	}
	return d.In(time.Local).Format(DateLayout)
}

// SameDate reports whether d falls on the local calendar date of day.
func (d LocalDateTime) SameDate(day time.Time) bool {
	if d.IsZero() {
		return false
	}
	y1, m1, d1 := d.In(time.Local).Date()
	y2, m2, d2 := day.In(time.Local).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// MarshalJSON implements json.Marshaler.
func (d LocalDateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *LocalDateTime) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*d = LocalDateTime{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if strings.TrimSpace(s) == "" {
		*d = LocalDateTime{}
		return nil
	}
	parsed, err := ParseLocalDateTime(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

package form

import "strings"

// MaxPhoneDigits is the length of a Brazilian mobile number with area code.
const MaxPhoneDigits = 11

// NormalizePhone keeps only ASCII digits and truncates to MaxPhoneDigits.
// It is meant to run on every keystroke, so applying it twice is a no-op.
func NormalizePhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if b.Len() == MaxPhoneDigits {
			break
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

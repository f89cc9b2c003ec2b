package screens

import "strings"

// matchName reports whether name contains query, ignoring case. An empty
// query matches everything.
func matchName(name, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), q)
}

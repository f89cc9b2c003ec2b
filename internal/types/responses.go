package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// List decodes a list endpoint that answers either with a bare JSON array
// or with a page envelope exposing the items under "content".
type List[T any] []T

// UnmarshalJSON implements json.Unmarshaler.
func (l *List[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*l = nil
		return nil
	}
	switch b[0] {
	case '[':
		var items []T
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		*l = items
		return nil
	case '{':
		var env struct {
			Content []T `json:"content"`
		}
		if err := json.Unmarshal(b, &env); err != nil {
			return err
		}
		*l = env.Content
		return nil
	default:
		return fmt.Errorf("list: unexpected JSON token %q", b[0])
	}
}

// Items returns the decoded items, never nil.
func (l List[T]) Items() []T {
	if l == nil {
		return []T{}
	}
	return []T(l)
}

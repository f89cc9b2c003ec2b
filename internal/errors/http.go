package errors

import (
	"encoding/json"
	"strings"
)

// NewHTTPError builds an *HTTPError and extracts the server message from a
// JSON body of the form {"message": "..."} or {"error": "..."}.
func NewHTTPError(op string, status int, body []byte) *HTTPError {
	return &HTTPError{
		Op:      op,
		Status:  status,
		Body:    string(body),
		Message: serverMessage(body),
	}
}

// NewNetworkError wraps a transport level failure.
func NewNetworkError(op string, err error) *NetworkError {
	return &NetworkError{Op: op, Underlying: err}
}

// Required builds the ValidationError used for missing mandatory fields.
func Required(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "required"}
}

func serverMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if m := strings.TrimSpace(payload.Message); m != "" {
		return m
	}
	return strings.TrimSpace(payload.Error)
}

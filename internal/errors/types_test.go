package errors

import (
	"fmt"
	"testing"
)

func TestNewHTTPError_ServerMessage(t *testing.T) {
	t.Parallel()
	cases := []struct {
		body string
		want string
	}{
		{`{"message":"Login inválido"}`, "Login inválido"},
		{`{"error":"not found"}`, "not found"},
		{`{"message":"  ","error":"fallback"}`, "fallback"},
		{`not json`, ""},
		{``, ""},
	}
	for _, c := range cases {
		got := NewHTTPError("op", 400, []byte(c.body))
		if got.Message != c.want {
			t.Fatalf("body %q: want message %q got %q", c.body, c.want, got.Message)
		}
	}
}

func TestHelpers_UnwrapChains(t *testing.T) {
	t.Parallel()
	netErr := fmt.Errorf("list events: %w", NewNetworkError("GET /events", fmt.Errorf("refused")))
	if !IsNetwork(netErr) {
		t.Fatal("expected IsNetwork on wrapped error")
	}
	httpErr := fmt.Errorf("wrap: %w", NewHTTPError("GET /events", 503, nil))
	if StatusCode(httpErr) != 503 {
		t.Fatalf("want 503 got %d", StatusCode(httpErr))
	}
	if StatusCode(netErr) != 0 {
		t.Fatal("network error has no status")
	}
	if !IsValidation(Required("message")) {
		t.Fatal("expected validation error")
	}
	if Required("message").Error() != "invalid message: required" {
		t.Fatalf("unexpected message %q", Required("message").Error())
	}
}

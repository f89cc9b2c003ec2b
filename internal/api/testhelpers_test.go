package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/transport"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// newServer starts h and returns a transport pointed at its /api prefix.
func newServer(t *testing.T, h http.HandlerFunc) *transport.Transport {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	tr, err := transport.New(transport.Config{BaseURL: srv.URL + "/api", HTTPClient: srv.Client(), Logger: zerolog.Nop()})
	if err != nil {
		t.Fatalf("transport.New: %v", err)
	}
	return tr
}

func failingTransport(t *testing.T) *transport.Transport {
	t.Helper()
	tr, err := transport.New(transport.Config{BaseURL: "http://example.com/api", HTTPClient: &http.Client{Transport: &errRT{}}, Logger: zerolog.Nop()})
	if err != nil {
		t.Fatalf("transport.New: %v", err)
	}
	return tr
}

// countingRequester records calls without performing them.
type countingRequester struct{ calls int }

func (c *countingRequester) Do(context.Context, string, string, any, any) error {
	c.calls++
	return nil
}

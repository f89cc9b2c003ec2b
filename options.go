package saferoute

// This file defines functional options that configure the Client during
// construction.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client during construction in New.
type Option func(*Client) error

// WithHTTPTimeout bounds every request, including connection setup and
// reading the body. A hung server therefore surfaces as a NetworkError
// instead of blocking the caller. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.timeout = d
		return nil
	}
}

// WithRoundTripper replaces the base HTTP transport. Debug logging, when
// enabled, wraps whatever transport is installed at that point.
func WithRoundTripper(rt http.RoundTripper) Option {
	return func(c *Client) error {
		if rt == nil {
			return fmt.Errorf("round tripper cannot be nil")
		}
		c.http.Transport = rt
		return nil
	}
}

// WithLogger sets the logger used for request logs.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.log = l
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// dumped when enabled is true. Dumps include passwords sent to /users/login;
// keep it off outside development.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			if _, already := c.http.Transport.(*debugTransport); !already {
				c.http.Transport = &debugTransport{base: c.http.Transport, log: &c.log}
			}
		}
		return nil
	}
}

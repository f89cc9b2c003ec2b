// Package saferoute is the SafeRoute API client: a transport bound to one
// base URL plus one repository per entity.
package saferoute

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/transport"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	log     zerolog.Logger
	tr      *transport.Transport
}

// New constructs a Client for baseURL, e.g. http://192.168.0.149:8080/api.
// Additional options can be provided via functional arguments.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL cannot be empty")
	}

	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		timeout: transport.DefaultTimeout,
		log:     zerolog.Nop(),
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	tr, err := transport.New(transport.Config{
		BaseURL:    c.baseURL,
		Timeout:    c.timeout,
		HTTPClient: c.http,
		Logger:     c.log,
	})
	if err != nil {
		return nil, err
	}
	c.tr = tr
	return c, nil
}

// BaseURL returns the endpoint this client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// --------------------------------------------------------------------
// Repositories
// --------------------------------------------------------------------

// Events returns the Event repository.
func (c *Client) Events() *EventRepository { return &EventRepository{r: c.tr} }

// Alerts returns the Alert repository.
func (c *Client) Alerts() *AlertRepository { return &AlertRepository{r: c.tr} }

// SafePlaces returns the SafePlace repository.
func (c *Client) SafePlaces() *SafePlaceRepository { return &SafePlaceRepository{r: c.tr} }

// Resources returns the Resource repository.
func (c *Client) Resources() *ResourceRepository { return &ResourceRepository{r: c.tr} }

// ResourceTypes returns the read-only ResourceType repository.
func (c *Client) ResourceTypes() *ResourceTypeRepository { return &ResourceTypeRepository{r: c.tr} }

// Users returns the repository backing login and registration.
func (c *Client) Users() *UserRepository { return &UserRepository{r: c.tr} }

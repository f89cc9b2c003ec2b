// Package transport issues JSON requests against the fixed SafeRoute API
// base URL. It never retries: a call either resolves or fails once.
package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	apierrors "github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/errors"
)

// DefaultTimeout bounds a single request when Config.Timeout is unset.
const DefaultTimeout = 15 * time.Second

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// Config configures a Transport.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// HTTPClient overrides the underlying client (tests, custom round trippers).
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// Transport is safe for concurrent use.
type Transport struct {
	rc  *resty.Client
	log zerolog.Logger
}

// New builds a Transport. BaseURL must be absolute, e.g. http://host:8080/api.
func New(cfg Config) (*Transport, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("transport: base URL cannot be empty")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	rc := resty.NewWithClient(hc).
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(0).
		SetLogger(restyLogger{log: cfg.Logger}).
		SetHeader("Accept", "application/json")

	return &Transport{rc: rc, log: cfg.Logger}, nil
}

// BaseURL returns the configured endpoint.
func (t *Transport) BaseURL() string { return t.rc.BaseURL }

// Do sends method path with an optional JSON body and decodes a non-empty
// 2xx response into out (when out is non-nil).
//
// Failures are *errors.NetworkError when the server could not be reached and
// *errors.HTTPError for non-2xx statuses.
func (t *Transport) Do(ctx context.Context, method, path string, body, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	op := method + " " + path
	reqID := uuid.NewString()

	req := t.rc.R().
		SetContext(ctx).
		SetHeader(RequestIDHeader, reqID)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	elapsed := time.Since(start)
	requestDuration.WithLabelValues(method).Observe(elapsed.Seconds())

	if err != nil {
		requestsTotal.WithLabelValues(method, "network_error").Inc()
		t.log.Warn().Err(err).
			Str("request_id", reqID).
			Str("method", method).
			Str("path", path).
			Dur("elapsed", elapsed).
			Msg("request failed")
		return apierrors.NewNetworkError(op, err)
	}

	status := resp.StatusCode()
	requestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	t.log.Debug().
		Str("request_id", reqID).
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Dur("elapsed", elapsed).
		Msg("request completed")

	if !resp.IsSuccess() {
		return apierrors.NewHTTPError(op, status, resp.Body())
	}
	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

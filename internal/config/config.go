package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Prefix is prepended to every environment variable read by New.
const Prefix = "SAFEROUTE"

// Config holds the client and dev backend settings.
// Environment variables are parsed from the SAFEROUTE_ prefix, e.g.
// SAFEROUTE_BASE_URL, SAFEROUTE_HTTP_TIMEOUT.
type Config struct {
	// REST API root, including the /api segment.
	BaseURL string `envconfig:"BASE_URL" default:"http://localhost:8080/api"`

	// Per-request timeout; there are no retries.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"15s"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Dump every HTTP exchange to the log.
	Debug bool `envconfig:"DEBUG" default:"false"`

	// Listen address of cmd/saferoute-devserver.
	DevServerAddr string `envconfig:"DEVSERVER_ADDR" default:":8080"`
}

// ResolveDefaults normalizes BaseURL and validates the remaining fields.
func (c *Config) ResolveDefaults() error {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid BASE_URL %q: want http(s)://host[:port]/api", c.BaseURL)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("invalid HTTP_TIMEOUT %s: must be positive", c.HTTPTimeout)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(c.LogLevel)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// New creates a Config from the environment.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("base_url", cfg.BaseURL).
		Dur("http_timeout", cfg.HTTPTimeout).
		Str("log_level", cfg.LogLevel).
		Bool("debug", cfg.Debug).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting returns a config pointing at baseURL with defaults for the
// rest.
func NewForTesting(baseURL string) *Config {
	return &Config{
		BaseURL:       baseURL,
		HTTPTimeout:   5 * time.Second,
		LogLevel:      "debug",
		DevServerAddr: "127.0.0.1:0",
	}
}

// Package http provides a configurable HTTP client with retry logic.
// It wraps the retryablehttp.Client from HashiCorp and exposes functional
// options for customizing timeouts, retry behavior and default headers.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gabapcia/oraclewatch/internal/pkg/logger"

	"github.com/hashicorp/go-retryablehttp"
)

// config holds internal settings for the HTTP client.
type config struct {
	timeout      time.Duration // maximum duration for a single HTTP request
	retryWaitMin time.Duration // minimum delay between retry attempts
	retryWaitMax time.Duration // maximum delay between retry attempts
	retryMax     int           // maximum number of retry attempts
	userAgent    string        // User-Agent sent when the request sets none
}

// Option defines a functional option for configuring the HTTP client.
type Option func(*config)

// leveledLogger forwards retryablehttp diagnostics to the global logger at debug level.
type leveledLogger struct{}

var _ retryablehttp.LeveledLogger = leveledLogger{}

func (leveledLogger) Error(msg string, kv ...any) { logger.Warn(context.Background(), msg, kv...) }
func (leveledLogger) Warn(msg string, kv ...any)  { logger.Debug(context.Background(), msg, kv...) }
func (leveledLogger) Info(msg string, kv ...any)  { logger.Debug(context.Background(), msg, kv...) }
func (leveledLogger) Debug(msg string, kv ...any) { logger.Debug(context.Background(), msg, kv...) }

// userAgentTransport sets a default User-Agent header on outgoing requests.
type userAgentTransport struct {
	next      http.RoundTripper
	userAgent string
}

func (t userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", t.userAgent)
	}

	return t.next.RoundTrip(req)
}

// NewClient creates and returns a retryablehttp.Client configured with
// the provided options. If no options are given, default values are used:
//
//   - timeout:      5 seconds
//   - retryWaitMin: 1 second
//   - retryWaitMax: 5 seconds
//   - retryMax:     2 retries
//   - userAgent:    "oraclewatch/1.0"
//
// Upstream feeds such as Nominatim reject anonymous clients, which is why a
// User-Agent is always set.
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      5 * time.Second,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
		userAgent:    "oraclewatch/1.0",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = leveledLogger{}
	client.HTTPClient.Timeout = cfg.timeout
	client.HTTPClient.Transport = userAgentTransport{
		next:      client.HTTPClient.Transport,
		userAgent: cfg.userAgent,
	}
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax
	return client
}

// WithTimeout sets the maximum duration allowed for a single HTTP request.
// Default: 5 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin sets the minimum delay between retry attempts.
// Default: 1 second.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax sets the maximum delay between retry attempts.
// Default: 5 seconds.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets the maximum number of retry attempts for failed requests.
// Default: 2 retries.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}

// WithUserAgent sets the User-Agent header used when a request does not set one.
func WithUserAgent(ua string) Option {
	return func(c *config) {
		c.userAgent = ua
	}
}

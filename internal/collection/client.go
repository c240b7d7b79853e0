package collection

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/albapepper/octofit-dashboard/internal/record"
)

// Fetcher retrieves one collection. Implemented by *Client; views depend on
// this interface so tests can substitute their own.
type Fetcher interface {
	Fetch(ctx context.Context, r Resource) ([]record.Record, error)
}

// Client is the HTTP client for the OctoFit read endpoints. It issues one GET
// per Fetch and never retries.
type Client struct {
	httpClient *http.Client
	timeout    time.Duration
	baseURL    string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets a per-request timeout. Zero leaves requests unbounded.
// It applies to a copy of the http.Client, so a shared client is never
// modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithRequestsPerMinute paces outbound requests with a token bucket.
// Zero or negative disables pacing.
func WithRequestsPerMinute(n int) Option {
	return func(c *Client) {
		if n <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(float64(n)/60.0), 1)
	}
}

// WithLogger sets the client logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a client for the API at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c
}

// BaseURL returns the API origin the client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Endpoint returns the full URL fetched for r.
func (c *Client) Endpoint(r Resource) string {
	return r.Endpoint(c.baseURL)
}

// Fetch performs a GET against the resource endpoint and normalizes the
// envelope. Failures are returned as *TransportError, *HTTPStatusError or
// *DecodeError.
func (c *Client) Fetch(ctx context.Context, r Resource) ([]record.Record, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &TransportError{Resource: r, Err: fmt.Errorf("rate limit wait: %w", err)}
		}
	}

	u := c.Endpoint(r)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &TransportError{Resource: r, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Resource: r, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &DecodeError{Resource: r, Err: fmt.Errorf("read response body: %w", err)}
	}

	c.logger.Debug("Collection response",
		"resource", r, "url", u, "status", resp.StatusCode,
		"bytes", len(body), "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPStatusError{Resource: r, StatusCode: resp.StatusCode, Body: truncate(body, 200)}
	}

	records, shape, err := Normalize(body)
	if err != nil {
		return nil, &DecodeError{Resource: r, Err: err}
	}
	if shape == ShapeUnsupported {
		c.logger.Warn("Unsupported envelope, treating as empty", "resource", r, "body", truncate(body, 200))
	}
	return records, nil
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}

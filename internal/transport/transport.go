// Package transport sends authenticated HTTP requests on behalf of the
// registrar clients.
//
// A Client is bound to one base URL and one Credential for its whole
// lifetime. Neither is mutated after New returns, so a single Client can be
// shared by any number of scoped clients and goroutines.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"nathanbeddoewebdev/registrar/internal/apierr"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "registrar"
	maxResponseBytes = 10 << 20
)

// Request describes one API call. Path is appended to the client's base URL.
type Request struct {
	Method string
	Path   string
	Query  url.Values

	// Body is encoded as JSON. nil means no body.
	Body any

	// Anonymous skips the credential for endpoints that reject or ignore it.
	Anonymous bool
}

// Response is the raw outcome of a completed HTTP exchange.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Client is the transport adapter shared by a root registrar client and
// every scoped client derived from it.
type Client struct {
	baseURL   string
	cred      Credential
	http      *http.Client
	timeout   time.Duration
	logger    *slog.Logger
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the provider's default base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-request timeout. It applies to a client passed
// through WithHTTPClient as well, in any option order, without changing the
// caller's *http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithLogger enables debug logging of each request line and its outcome.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New returns a Client that signs every request with cred.
func New(baseURL string, cred Credential, opts ...Option) *Client {
	c := &Client{
		baseURL:   baseURL,
		cred:      cred,
		http:      &http.Client{Timeout: defaultTimeout},
		logger:    slog.New(slog.DiscardHandler),
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.http
		hc.Timeout = c.timeout
		c.http = &hc
	}
	c.baseURL = strings.TrimRight(c.baseURL, "/")
	return c
}

// BaseURL returns the URL every request path is appended to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Send performs exactly one HTTP call. It never inspects the body for
// logical errors and never retries. Network, TLS and timeout failures are
// returned as apierr transport errors.
func (c *Client) Send(ctx context.Context, r Request) (*Response, error) {
	var payload []byte
	if r.Body != nil {
		data, err := json.Marshal(r.Body)
		if err != nil {
			return nil, apierr.Serialization(0, fmt.Errorf("failed to encode request: %w", err))
		}
		payload = data
	}

	target := c.baseURL + r.Path
	if len(r.Query) > 0 {
		target += "?" + r.Query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, target, nil)
	if err != nil {
		return nil, apierr.Transport(fmt.Errorf("failed to build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	if c.cred != nil && !r.Anonymous {
		payload, err = c.cred.Sign(req, payload)
		if err != nil {
			return nil, apierr.Serialization(0, fmt.Errorf("failed to sign request: %w", err))
		}
	}

	if payload != nil {
		body := payload
		req.Body = io.NopCloser(bytes.NewReader(body))
		req.ContentLength = int64(len(body))
		req.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(body)), nil
		}
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.DebugContext(ctx, "request failed",
			"method", r.Method, "path", r.Path, "duration", time.Since(start), "error", err)
		return nil, apierr.Transport(fmt.Errorf("%s %s: %w", r.Method, r.Path, err))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, apierr.Transport(fmt.Errorf("%s %s: failed to read response: %w", r.Method, r.Path, err))
	}

	c.logger.DebugContext(ctx, "request completed",
		"method", r.Method, "path", r.Path, "status", resp.StatusCode, "duration", time.Since(start))

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: data}, nil
}

// Do sends r and normalizes the response into out (which may be nil).
func (c *Client) Do(ctx context.Context, r Request, out any) error {
	resp, err := c.Send(ctx, r)
	if err != nil {
		return err
	}
	return apierr.Normalize(resp.StatusCode, resp.Body, out)
}

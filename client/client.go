// Package client is the Go SDK for the product search service.
package client

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/mycelian/shopsearch/client/internal/api"
)

// DefaultBaseURL is where the search service listens in local development.
const DefaultBaseURL = "http://localhost:5000"

// RequestIDHeader carries a per-request UUID for correlating client and server logs.
const RequestIDHeader = "X-Request-ID"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

type Client struct {
	baseURL string
	http    *http.Client

	requestIDs bool
	userAgent  string
}

// New constructs a Client for the service at baseURL.
// Additional options can be provided via functional arguments.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, ErrEmptyBaseURL
	}

	c := &Client{
		baseURL:    baseURL,
		http:       &http.Client{},
		requestIDs: true,
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

	c.wrapTransportWithHeaders()
	return c, nil
}

// BaseURL returns the service base URL the client was built with.
func (c *Client) BaseURL() string { return c.baseURL }

// wrapTransportWithHeaders installs the outermost transport, which stamps
// request IDs and the user agent on every outgoing request.
func (c *Client) wrapTransportWithHeaders() {
	if !c.requestIDs && c.userAgent == "" {
		return
	}
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &headerTransport{
		base:       baseTransport,
		requestIDs: c.requestIDs,
		userAgent:  c.userAgent,
	}
}

// headerTransport wraps an http.RoundTripper to add correlation headers.
type headerTransport struct {
	base       http.RoundTripper
	requestIDs bool
	userAgent  string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	if t.requestIDs && cloned.Header.Get(RequestIDHeader) == "" {
		cloned.Header.Set(RequestIDHeader, uuid.NewString())
	}
	if t.userAgent != "" {
		cloned.Header.Set("User-Agent", t.userAgent)
	}
	return t.base.RoundTrip(cloned)
}

// --------------------------------------------------------------------
// Search operations - delegated to internal/api
// --------------------------------------------------------------------

// Search posts a single search request and decodes the JSON reply.
// The exchange is attempted exactly once.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	start := time.Now()
	resp, err := api.Search(ctx, c.http, c.baseURL, req)
	observe(opSearch, start, err)
	return resp, err
}

// Health fetches the service status from /api/health.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	start := time.Now()
	hs, err := api.Health(ctx, c.http, c.baseURL)
	observe(opHealth, start, err)
	return hs, err
}

// Package httpx provides a small HTTP client wrapper with a bounded timeout.
// Requests are never retried; a slow or unreachable upstream fails fast and
// the caller surfaces the error. The Client struct is safe for concurrent use
// because its fields are immutable after construction and the underlying
// http.Client is concurrency-safe.
package httpx

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Client wraps net/http.Client with timeout behaviour.
type Client struct {
	http *http.Client
}

// NewClient creates a Client with the given timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

// Do executes the request exactly once.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := c.http.Do(req.Clone(ctx))
	if err != nil {
		return nil, fmt.Errorf("httpx: %w", err)
	}
	return resp, nil
}

// Get is a convenience method for GET requests.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("httpx: new request: %w", err)
	}
	return c.Do(ctx, req)
}

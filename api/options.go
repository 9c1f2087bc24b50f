package api

import (
	"log/slog"
	"net/http"
	"time"
)

// Option configures a Client at construction time.
type Option func(*Client)

// WithBaseURL overrides the hosted service endpoint, e.g. for self-hosted
// deployments. A trailing slash is tolerated.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient substitutes the underlying HTTP client. The client's own
// timeout applies; WithTimeout is ignored when this option is used after it.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.http = httpClient
	}
}

// WithTimeout sets the per-request timeout on the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = timeout
	}
}

// WithMaxRetries sets how many times a request is retried after a rate
// limit or transient server failure. Zero disables retries.
func WithMaxRetries(retries int) Option {
	return func(c *Client) {
		c.maxRetries = retries
	}
}

// WithLogger attaches a structured logger; requests are logged at debug
// level with method, path, status, and duration.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

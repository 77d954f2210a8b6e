// Package fetch retrieves listing pages and shard logs over HTTP.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"go.uber.org/zap"

	"github.com/AndreyAkinshin/fuzzcollect/internal/errors"
)

// DefaultUserAgent is sent when no user agent is configured.
const DefaultUserAgent = "fuzzcollect"

// Fetcher returns the body of the resource at uri.
type Fetcher interface {
	Fetch(ctx context.Context, uri string) (string, error)
}

// Options configures a Client.
type Options struct {
	UserAgent string
	Timeout   time.Duration // per request; zero means no timeout
	Logger    *zap.Logger
}

// Client fetches text over HTTP. Failed requests are not retried.
type Client struct {
	http      *http.Client
	userAgent string
	timeout   time.Duration
	logger    *zap.Logger
}

// NewClient creates a Client backed by a pooled clean HTTP client.
func NewClient(opts Options) *Client {
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		http:      cleanhttp.DefaultPooledClient(),
		userAgent: userAgent,
		timeout:   opts.Timeout,
		logger:    logger,
	}
}

// Fetch performs a GET request and returns the response body as text.
// Transport failures and non-2xx responses are returned as transport errors.
func (c *Client) Fetch(ctx context.Context, uri string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return "", errors.Transport(uri, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	c.logger.Debug("fetching", zap.String("uri", uri))

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errors.Transport(uri, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.Transport(uri, fmt.Errorf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Transport(uri, fmt.Errorf("read body: %w", err))
	}

	c.logger.Debug("fetched",
		zap.String("uri", uri),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", time.Since(start)))

	return string(body), nil
}

// Package wiki fetches page exports from a MediaWiki site.
package wiki

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/hightemp/zipzap/internal/config"
)

const (
	// DefaultTimeout for HTTP requests.
	DefaultTimeout = 30 * time.Second

	// MaxRetries for failed requests.
	MaxRetries = 3

	// BaseBackoff for exponential backoff.
	BaseBackoff = 1 * time.Second

	// MaxBackoff for exponential backoff.
	MaxBackoff = 30 * time.Second
)

// Client is an HTTP client for MediaWiki page exports.
type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
	maxRetries int
}

// NewClient creates a client for the default wiki.
func NewClient() *Client {
	return NewClientWithTimeout(DefaultTimeout)
}

// NewClientWithTimeout creates a client with a custom timeout.
func NewClientWithTimeout(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent:  config.DefaultUserAgent,
		baseURL:    config.DefaultWikiURL,
		maxRetries: MaxRetries,
	}
}

// NewClientFromConfig creates a client from source settings.
func NewClientFromConfig(cfg config.SourceConfig) *Client {
	c := NewClientWithTimeout(cfg.Timeout)
	if cfg.URL != "" {
		c.baseURL = cfg.URL
	}
	if cfg.UserAgent != "" {
		c.userAgent = cfg.UserAgent
	}
	if cfg.MaxRetries >= 0 {
		c.maxRetries = cfg.MaxRetries
	}
	return c
}

// BaseURL returns the wiki root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get fetches url and returns the body, retrying failures with backoff.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := c.calculateBackoff(attempt)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		body, err := c.doRequest(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		// Don't retry on context cancellation
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return nil, fmt.Errorf("after %d retries: %w", c.maxRetries, lastErr)
}

func (c *Client) doRequest(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/xml, text/plain;q=0.9, */*;q=0.5")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return body, nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := BaseBackoff * time.Duration(1<<uint(attempt-1))
	if backoff > MaxBackoff {
		backoff = MaxBackoff
	}
	// Add jitter (0-25% of backoff)
	jitter := time.Duration(rand.Int63n(int64(backoff / 4)))
	return backoff + jitter
}

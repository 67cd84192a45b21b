// Package habitica talks to the remote task-tracking API.
package habitica

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"clementus360/habit-dashboard/config"
)

const (
	// The remote service asks third-party tools to stay under 30 requests a minute.
	requestsPerMinute = 30

	headerClient  = "x-client"
	headerAPIUser = "x-api-user"
	headerAPIKey  = "x-api-key"
)

// Credentials identify this tool and the account it acts for on every request.
type Credentials struct {
	APIKey string
	UserID string
	Client string
}

type Client struct {
	creds      Credentials
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	limiter    *rate.Limiter
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

func WithLimiter(l *rate.Limiter) Option {
	return func(c *Client) {
		c.limiter = l
	}
}

// New creates a client. It is safe for concurrent use.
func New(creds Credentials, opts ...Option) *Client {
	c := &Client{
		creds:   creds,
		baseURL: config.DefaultBaseURL,
		timeout: config.DefaultTimeout,
		limiter: rate.NewLimiter(rate.Every(time.Minute/requestsPerMinute), requestsPerMinute),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}
	return c
}

// NewFromConfig wires a client from the startup configuration.
func NewFromConfig(cfg *config.Config) *Client {
	return New(Credentials{
		APIKey: cfg.Habitica.APIKey,
		UserID: cfg.Habitica.UserID,
		Client: cfg.Habitica.Client,
	},
		WithBaseURL(cfg.Habitica.BaseURL),
		WithTimeout(cfg.Habitica.Timeout.Duration),
	)
}

// do sends a single request and decodes the JSON envelope into out.
// There are no retries.
func (c *Client) do(ctx context.Context, op, method, path string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return &UpstreamError{Op: op, Err: fmt.Errorf("rate limit wait: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return &UpstreamError{Op: op, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set(headerClient, c.creds.Client)
	req.Header.Set(headerAPIUser, c.creds.UserID)
	req.Header.Set(headerAPIKey, c.creds.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &UpstreamError{Op: op, Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &UpstreamError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &UpstreamError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}

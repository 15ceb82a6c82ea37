// Package pexels implements the photo-search provider backed by the
// Pexels API.
package pexels

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/loftlist/seedkit/internal/domain"
	"github.com/loftlist/seedkit/internal/provider"
)

const (
	defaultBaseURL = "https://api.pexels.com/v1"

	// Pexels allows 200 requests per hour on the free tier; one page per
	// ~1.1s keeps a long run polite without tripping the hourly cap in
	// short bursts.
	requestInterval = 1100 * time.Millisecond

	defaultTimeout = 30 * time.Second

	licenseText = "Pexels License"
)

// Client is a rate-limited Pexels API client.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger
	apiKey  string
	baseURL string
}

// New creates a new Pexels client authenticated with the given API key.
func New(apiKey string, logger *slog.Logger) *Client {
	return &Client{
		http: &http.Client{
			Timeout: defaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Every(requestInterval), 1),
		logger:  logger,
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
	}
}

// Source identifies this provider.
func (c *Client) Source() domain.Source {
	return domain.SourcePexels
}

// doRequest executes a rate-limited GET against the API.
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", c.apiKey)

	c.logger.Debug("pexels request", "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return body, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, provider.ErrUnauthorized
	case http.StatusTooManyRequests:
		return nil, provider.ErrRateLimited
	case http.StatusBadRequest:
		return nil, provider.ErrBadRequest
	default:
		if resp.StatusCode >= 500 {
			return nil, provider.ErrServer
		}
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}
}

// Package unsplash implements the photo-search provider backed by the
// Unsplash API.
package unsplash

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
	defaultBaseURL = "https://api.unsplash.com"

	// Unsplash demo keys allow 50 req/h, production 5000 req/h; the
	// pipeline self-throttles well below both: one page per ~1.1s.
	requestInterval = 1100 * time.Millisecond

	defaultTimeout = 30 * time.Second

	// License text preserved into every record's attribution.
	licenseText = "Unsplash License"
)

// Client is a rate-limited Unsplash API client.
type Client struct {
	http      *http.Client
	limiter   *rate.Limiter
	logger    *slog.Logger
	accessKey string
	baseURL   string
}

// New creates a new Unsplash client authenticated with the given access key.
func New(accessKey string, logger *slog.Logger) *Client {
	return &Client{
		http: &http.Client{
			Timeout: defaultTimeout,
		},
		limiter:   rate.NewLimiter(rate.Every(requestInterval), 1),
		logger:    logger,
		accessKey: accessKey,
		baseURL:   defaultBaseURL,
	}
}

// Source identifies this provider.
func (c *Client) Source() domain.Source {
	return domain.SourceUnsplash
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
	req.Header.Set("Accept-Version", "v1")
	req.Header.Set("Authorization", "Client-ID "+c.accessKey)

	c.logger.Debug("unsplash request", "path", path)

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

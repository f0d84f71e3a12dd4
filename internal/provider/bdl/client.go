// Package bdl provides the BallDontLie provider: a shared HTTP client plus
// the NBA handler layered on top of it.
//
// BDL authenticates with a raw API key in the Authorization header, paginates
// with either an opaque cursor or page/per_page, and passes array filters as
// repeated []-suffixed query parameters (team_ids[]=1&team_ids[]=2).
package bdl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/albapepper/courtside/internal/provider"
	"github.com/albapepper/courtside/internal/ratelimit"
)

const (
	Name           = "bdl"
	DefaultBaseURL = "https://api.balldontlie.io/v1"
)

// Client is the shared HTTP client for all BDL endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *ratelimit.Limiter
	logger     *slog.Logger

	warnMissingKey sync.Once
}

// NewClient creates a BDL HTTP client with sliding-window rate limiting.
// An empty apiKey is allowed; every request then fails fast with
// provider.ErrMissingCredential instead of hitting the network.
func NewClient(baseURL, apiKey string, requestsPerMinute int, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		limiter:    ratelimit.PerMinute(requestsPerMinute),
		logger:     logger,
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// paginatedResponse is the common BDL response wrapper.
type paginatedResponse struct {
	Data json.RawMessage `json:"data"`
	Meta struct {
		NextCursor *int `json:"next_cursor"`
		PerPage    int  `json:"per_page"`
	} `json:"meta"`
}

// get performs a rate-limited, authenticated GET request to a BDL endpoint.
func (c *Client) get(ctx context.Context, path string, params url.Values) (*paginatedResponse, error) {
	if c.apiKey == "" {
		c.warnMissingKey.Do(func() {
			c.logger.Warn("BALLDONTLIE_API_KEY not set; BDL requests will be skipped")
		})
		return nil, provider.ErrMissingCredential
	}

	if err := c.limiter.Acquire(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &provider.StatusError{
			Provider: Name,
			Path:     path,
			Status:   resp.StatusCode,
			Body:     provider.Truncate(body, 200),
		}
	}

	var result paginatedResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &result, nil
}

// Package espn provides the ESPN scoreboard provider: a shared HTTP client
// plus per-league handlers.
//
// The ESPN site API needs no credential. Each sport hangs under its own base
// path, date filters are 8-digit YYYYMMDD query parameters, and a scoreboard
// response nests team and status objects inside "events", each holding
// exactly one "competition" with two home/away-flagged "competitors".
package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/albapepper/courtside/internal/provider"
	"github.com/albapepper/courtside/internal/ratelimit"
)

const (
	Name           = "espn"
	DefaultBaseURL = "https://site.api.espn.com/apis/site/v2/sports/basketball"

	userAgent = "Mozilla/5.0 (compatible; courtside/1.0)"
)

// Client is the shared HTTP client for all ESPN endpoints. The rate limiter
// is self-imposed politeness — ESPN publishes no quota for this API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *ratelimit.Limiter
	logger     *slog.Logger
}

// NewClient creates an ESPN HTTP client.
func NewClient(baseURL string, requestsPerMinute int, timeout time.Duration, logger *slog.Logger) *Client {
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
		limiter:    ratelimit.PerMinute(requestsPerMinute),
		logger:     logger,
	}
}

// get performs a rate-limited GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Acquire(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &provider.StatusError{
			Provider: Name,
			Path:     path,
			Status:   resp.StatusCode,
			Body:     provider.Truncate(body, 200),
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

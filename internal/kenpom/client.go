// Package kenpom provides the HTTP client for the kenpom.com rating API.
//
// All endpoints share a single api.php entry point selected by an "endpoint"
// query parameter, with Bearer token auth. Rate limiting is handled via a
// token bucket limiter. Responses are passed through as raw JSON so upstream
// schema changes never break the proxy.
package kenpom

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// Client is the shared HTTP client for all rating API endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a rating API client with rate limiting.
func NewClient(baseURL, apiKey string, requestsPerMinute int, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	rps := float64(requestsPerMinute) / 60.0
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		logger:     logger,
	}
}

// Filters narrow an endpoint query. Zero values are omitted from the request.
type Filters struct {
	Year       int
	TeamID     int
	Conference string
	ConfOnly   bool
	Date       string
	Preseason  bool
}

func (f Filters) values() url.Values {
	params := url.Values{}
	if f.Year != 0 {
		params.Set("y", strconv.Itoa(f.Year))
	}
	if f.TeamID != 0 {
		params.Set("team_id", strconv.Itoa(f.TeamID))
	}
	if f.Conference != "" {
		params.Set("c", f.Conference)
	}
	if f.ConfOnly {
		params.Set("conf_only", "true")
	}
	if f.Date != "" {
		params.Set("d", f.Date)
	}
	if f.Preseason {
		params.Set("preseason", "true")
	}
	return params
}

// Ratings returns team ratings, strength of schedule, and tempo data.
func (c *Client) Ratings(ctx context.Context, f Filters) (json.RawMessage, error) {
	return c.get(ctx, "ratings", f.values())
}

// Archive returns historical ratings from a specific date or preseason.
func (c *Client) Archive(ctx context.Context, f Filters) (json.RawMessage, error) {
	return c.get(ctx, "archive", f.values())
}

// FourFactors returns the four factors for offense and defense.
func (c *Client) FourFactors(ctx context.Context, f Filters) (json.RawMessage, error) {
	return c.get(ctx, "four-factors", f.values())
}

// PointDistribution returns the share of points from FT, 2PT, and 3PT.
func (c *Client) PointDistribution(ctx context.Context, f Filters) (json.RawMessage, error) {
	return c.get(ctx, "pointdist", f.values())
}

// Height returns team height, effective height, and experience data.
func (c *Client) Height(ctx context.Context, f Filters) (json.RawMessage, error) {
	return c.get(ctx, "height", f.values())
}

// MiscStats returns shooting percentages, blocks, steals, and assists.
func (c *Client) MiscStats(ctx context.Context, f Filters) (json.RawMessage, error) {
	return c.get(ctx, "misc-stats", f.values())
}

// FanMatch returns game predictions for a specific date.
func (c *Client) FanMatch(ctx context.Context, date string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("d", date)
	return c.get(ctx, "fanmatch", params)
}

// ConferenceRatings returns conference-level ratings for a season.
func (c *Client) ConferenceRatings(ctx context.Context, f Filters) (json.RawMessage, error) {
	return c.get(ctx, "conf-ratings", f.values())
}

// Teams returns the team list for a season.
func (c *Client) Teams(ctx context.Context, f Filters) (json.RawMessage, error) {
	return c.get(ctx, "teams", f.values())
}

// Conferences returns the conference list for a season.
func (c *Client) Conferences(ctx context.Context, f Filters) (json.RawMessage, error) {
	return c.get(ctx, "conferences", f.values())
}

// get performs a rate-limited GET against api.php for the named endpoint.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (json.RawMessage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	params.Set("endpoint", endpoint)
	u := c.baseURL + "/api.php?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("kenpom %s returned %d: %s", endpoint, resp.StatusCode, truncate(body, 200))
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("kenpom %s returned invalid JSON", endpoint)
	}
	return json.RawMessage(body), nil
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}

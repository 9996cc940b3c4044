// Package aocweb downloads puzzle inputs from adventofcode.com.
//
// The site asks automated tools to identify themselves and throttle
// their requests, so the client sends a User-Agent and rate limits
// itself regardless of what the caller does.
package aocweb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
	"github.com/puzzlekit/aoc-cli/internal/core/ports/driven"
	"github.com/puzzlekit/aoc-cli/internal/logger"
)

const (
	// BaseURL is the Advent of Code site root.
	BaseURL = "https://adventofcode.com"

	// SessionCookie is the cookie name carrying the login session.
	SessionCookie = "session"

	// maxInputSize caps a downloaded input. Real inputs are tens of
	// kilobytes; anything near the cap is not puzzle input.
	maxInputSize = 8 << 20

	requestTimeout = 30 * time.Second
)

// Ensure Client implements the interface.
var _ driven.InputFetcher = (*Client)(nil)

// Client fetches puzzle inputs over HTTP using a session cookie.
type Client struct {
	httpClient *http.Client
	limiter    *RateLimiter
	baseURL    string
	session    string
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the site root. Used by tests.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRateLimit overrides the requests-per-second throttle.
func WithRateLimit(perSecond float64) Option {
	return func(c *Client) { c.limiter = NewRateLimiter(perSecond) }
}

// NewClient creates a fetcher authenticated with the given session
// cookie value.
func NewClient(session, userAgent string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: requestTimeout,
			// Surface login redirects instead of following them.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		limiter:    NewRateLimiter(domain.DefaultFetchRate),
		baseURL:    BaseURL,
		session:    session,
		userAgent:  userAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchInput downloads the raw input for a year/day.
func (c *Client) FetchInput(ctx context.Context, year, day int) (string, error) {
	if c.session == "" {
		return "", domain.ErrNoSession
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%d/day/%d/input", c.baseURL, year, day)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: c.session})
	req.Header.Set("User-Agent", c.userAgent)

	logger.Debug("GET %s", url)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching input: %w", err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, year, day); err != nil {
		return "", err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxInputSize))
	if err != nil {
		return "", fmt.Errorf("reading input body: %w", err)
	}
	return string(body), nil
}

// checkStatus maps the site's error responses onto domain errors.
func (c *Client) checkStatus(resp *http.Response, year, day int) error {
	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		// Unpublished day or wrong event year.
		return fmt.Errorf("%w: %d day %d input", domain.ErrNotFound, year, day)
	case resp.StatusCode == http.StatusBadRequest:
		// The site answers 400 to requests with a stale or bogus
		// session cookie.
		return fmt.Errorf("%w: session cookie rejected", domain.ErrNoSession)
	case resp.StatusCode == http.StatusFound || resp.StatusCode == http.StatusSeeOther:
		// Redirect to the login page.
		return fmt.Errorf("%w: redirected to login", domain.ErrNoSession)
	case resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: server asked to slow down", domain.ErrRateLimited)
	default:
		return fmt.Errorf("unexpected status %s fetching %d day %d", resp.Status, year, day)
	}
}

// Package github talks to the public, unauthenticated GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"skillswap-hub/internal/config"
	"skillswap-hub/internal/domain"
	"skillswap-hub/internal/logger"

	"go.uber.org/zap"
)

const (
	DefaultBaseURL   = "https://api.github.com"
	DefaultUserAgent = "SkillSwap-Hub"
	DefaultTimeout   = 10 * time.Second

	acceptHeader = "application/vnd.github.v3+json"
	reposPerPage = "100"
)

// Client implements domain.GitHubClient. Every error it returns is a
// *domain.GitHubAPIError carrying a message that can be shown to users.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	timeout    time.Duration
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL points the client at another API root, such as a test server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		baseURL:    DefaultBaseURL,
		userAgent:  DefaultUserAgent,
		timeout:    DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewClientFromConfig builds a client from the github config section.
func NewClientFromConfig(cfg config.GitHubConfig) *Client {
	c := NewClient()
	if cfg.APIURL != "" {
		c.baseURL = cfg.APIURL
	}
	if cfg.UserAgent != "" {
		c.userAgent = cfg.UserAgent
	}
	if cfg.Timeout > 0 {
		c.timeout = cfg.Timeout
	}
	return c
}

// GetUser fetches GET /users/{username}.
func (c *Client) GetUser(ctx context.Context, username string) (*domain.GitHubUser, error) {
	var user domain.GitHubUser
	err := c.get(ctx, "/users/"+url.PathEscape(username), nil, &user, userStatusError)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListRepositories fetches up to 100 repositories, most recently updated first.
func (c *Client) ListRepositories(ctx context.Context, username string) ([]domain.GitHubRepository, error) {
	q := url.Values{}
	q.Set("per_page", reposPerPage)
	q.Set("sort", "updated")

	var repos []domain.GitHubRepository
	err := c.get(ctx, "/users/"+url.PathEscape(username)+"/repos", q, &repos, reposStatusError)
	if err != nil {
		return nil, err
	}
	return repos, nil
}

func userStatusError(status int) string {
	switch status {
	case http.StatusNotFound:
		return "GitHub user not found"
	case http.StatusForbidden:
		return "GitHub API rate limit exceeded. Please try again later."
	default:
		return fmt.Sprintf("GitHub API error: %d", status)
	}
}

func reposStatusError(status int) string {
	return fmt.Sprintf("Failed to fetch repositories: %d", status)
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out interface{}, statusMessage func(int) string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.baseURL + path
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &domain.GitHubAPIError{Message: "GitHub API request failed: " + err.Error(), Err: err}
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	logger.Get().Debug("GitHub API response",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.GitHubAPIError{Status: resp.StatusCode, Message: statusMessage(resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return transportError(ctxErr)
		}
		return &domain.GitHubAPIError{
			Status:  resp.StatusCode,
			Message: "GitHub API returned an unreadable response",
			Err:     err,
		}
	}
	return nil
}

func transportError(err error) *domain.GitHubAPIError {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &domain.GitHubAPIError{Message: "GitHub API request timed out", Err: err}
	case errors.Is(err, context.Canceled):
		return &domain.GitHubAPIError{Message: "GitHub analysis was cancelled", Err: err}
	default:
		return &domain.GitHubAPIError{Message: "GitHub API request failed: " + err.Error(), Err: err}
	}
}

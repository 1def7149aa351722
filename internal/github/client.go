package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/jonathan/career-compass/internal/types"
)

// DefaultBaseURL is the public GitHub REST API endpoint.
const DefaultBaseURL = "https://api.github.com"

// DefaultTimeout bounds each API request.
const DefaultTimeout = 10 * time.Second

// MaxReposPerPage is the page size used when listing repositories.
const MaxReposPerPage = 100

// Client is a minimal GitHub REST client. A token is optional; without one
// the public rate limits apply.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API root, mainly for tests.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithToken sets a bearer token for authenticated requests.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// NewClient builds a client. GITHUB_TOKEN is picked up from the
// environment when no explicit token is configured.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		token:      os.Getenv("GITHUB_TOKEN"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// User fetches a user profile.
func (c *Client) User(ctx context.Context, username string) (types.GitHubUser, error) {
	var user types.GitHubUser
	url := fmt.Sprintf("%s/users/%s", c.baseURL, username)
	if err := c.getJSON(ctx, url, username, &user); err != nil {
		return types.GitHubUser{}, err
	}
	return user, nil
}

// Repos fetches the user's public repositories, most recently updated first.
func (c *Client) Repos(ctx context.Context, username string) ([]types.GitHubRepo, error) {
	var repos []types.GitHubRepo
	url := fmt.Sprintf("%s/users/%s/repos?per_page=%d&sort=updated", c.baseURL, username, MaxReposPerPage)
	if err := c.getJSON(ctx, url, username, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// Languages fetches the byte counts per language for one repository.
func (c *Client) Languages(ctx context.Context, username, repo string) (map[string]int, error) {
	var languages map[string]int
	url := fmt.Sprintf("%s/repos/%s/%s/languages", c.baseURL, username, repo)
	if err := c.getJSON(ctx, url, username, &languages); err != nil {
		return nil, err
	}
	return languages, nil
}

func (c *Client) getJSON(ctx context.Context, url, username string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &Error{Kind: KindUnknown, Username: username, Message: "building request", Cause: err}
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyTransportError(err, username)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decode
	case http.StatusNotFound:
		return &Error{
			Kind:     KindNotFound,
			Username: username,
			Message:  fmt.Sprintf("GitHub user %q not found", username),
		}
	case http.StatusForbidden:
		return &Error{
			Kind:     KindRateLimited,
			Username: username,
			Message:  "API rate limit reached. Please try again in a few minutes.",
		}
	default:
		return &Error{
			Kind:     KindUnknown,
			Username: username,
			Message:  fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindConnection, Username: username, Message: "reading response", Cause: err}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &Error{Kind: KindUnknown, Username: username, Message: "decoding response", Cause: err}
	}
	return nil
}

// classifyTransportError separates timeouts from other connection failures.
func classifyTransportError(err error, username string) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindTimeout, Username: username,
			Message: "Request timed out. Check your internet connection.", Cause: err}
	}
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{Kind: KindTimeout, Username: username,
			Message: "Request timed out. Check your internet connection.", Cause: err}
	}
	return &Error{Kind: KindConnection, Username: username,
		Message: "Connection error", Cause: err}
}

package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"agentdock/clients"
)

const defaultBaseURL = "https://api.github.com"

// GitHubClient implements the clients.GitHubClient interface over the
// GitHub REST v3 API. The access token is injected at construction and
// the client holds no other state, so it is safe for concurrent use.
type GitHubClient struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
}

// NewGitHubClient creates a new GitHub client with the provided access token.
// baseURL may be empty, in which case the public GitHub API is used.
func NewGitHubClient(accessToken, baseURL string) clients.GitHubClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &GitHubClient{
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		accessToken: accessToken,
	}
}

func (c *GitHubClient) doRequest(
	ctx context.Context,
	method, path string,
	body any,
	out any,
) error {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("Authorization", "token "+c.accessToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call GitHub API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return &clients.APIError{
			Platform:   "github",
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// ListOwnRepositories lists the repositories the authenticated user has access to
func (c *GitHubClient) ListOwnRepositories(ctx context.Context) ([]clients.GitHubRepository, error) {
	var repos []clients.GitHubRepository
	if err := c.doRequest(ctx, "GET", "/user/repos", nil, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// ListPullRequests lists the open pull requests in the specified repository
func (c *GitHubClient) ListPullRequests(
	ctx context.Context,
	owner, repo string,
) ([]clients.GitHubPullRequest, error) {
	var prs []clients.GitHubPullRequest
	path := fmt.Sprintf("/repos/%s/%s/pulls", owner, repo)
	if err := c.doRequest(ctx, "GET", path, nil, &prs); err != nil {
		return nil, err
	}
	return prs, nil
}

// GetPullRequest fetches a single pull request
func (c *GitHubClient) GetPullRequest(
	ctx context.Context,
	owner, repo string,
	number int,
) (*clients.GitHubPullRequest, error) {
	var pr clients.GitHubPullRequest
	path := fmt.Sprintf("/repos/%s/%s/pulls/%d", owner, repo, number)
	if err := c.doRequest(ctx, "GET", path, nil, &pr); err != nil {
		return nil, err
	}
	return &pr, nil
}

// GetRepositoryStats fetches repository metadata used for the stats summary
func (c *GitHubClient) GetRepositoryStats(
	ctx context.Context,
	owner, repo string,
) (*clients.GitHubRepoStats, error) {
	var stats clients.GitHubRepoStats
	path := fmt.Sprintf("/repos/%s/%s", owner, repo)
	if err := c.doRequest(ctx, "GET", path, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// CreatePullRequest opens a new pull request
func (c *GitHubClient) CreatePullRequest(
	ctx context.Context,
	owner, repo string,
	params clients.CreatePullRequestParams,
) (*clients.GitHubPullRequest, error) {
	if params.Base == "" {
		params.Base = "main"
	}

	var pr clients.GitHubPullRequest
	path := fmt.Sprintf("/repos/%s/%s/pulls", owner, repo)
	if err := c.doRequest(ctx, "POST", path, params, &pr); err != nil {
		return nil, err
	}
	return &pr, nil
}

package clients

import "fmt"

// LLMCompletion is the text result of one LLM call plus its token usage
type LLMCompletion struct {
	Text         string
	InputTokens  int64
	OutputTokens int64
}

// APIError represents a downstream platform API failure with its HTTP status.
// The orchestrator maps these onto ActionResult error info verbatim.
type APIError struct {
	Platform   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s API error: status %d, body: %s", e.Platform, e.StatusCode, e.Body)
}

// IsAuthError reports whether the failure looks like a rejected credential
// rather than a valid request failing remotely
func (e *APIError) IsAuthError() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

type GitHubUser struct {
	Login string `json:"login"`
}

type GitHubBaseRepo struct {
	FullName string `json:"full_name"`
}

type GitHubBase struct {
	Repo GitHubBaseRepo `json:"repo"`
}

type GitHubPullRequest struct {
	Number    int        `json:"number"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	State     string     `json:"state"`
	HTMLURL   string     `json:"html_url"`
	CreatedAt string     `json:"created_at"`
	User      GitHubUser `json:"user"`
	Base      GitHubBase `json:"base"`
}

type GitHubRepository struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	HTMLURL     string `json:"html_url"`
	Private     bool   `json:"private"`
	Stars       int    `json:"stargazers_count"`
	Forks       int    `json:"forks_count"`
}

type GitHubLicense struct {
	Name string `json:"name"`
}

type GitHubRepoStats struct {
	FullName      string         `json:"full_name"`
	Description   string         `json:"description"`
	Stars         int            `json:"stargazers_count"`
	Forks         int            `json:"forks_count"`
	OpenIssues    int            `json:"open_issues_count"`
	DefaultBranch string         `json:"default_branch"`
	License       *GitHubLicense `json:"license"`
	CreatedAt     string         `json:"created_at"`
	UpdatedAt     string         `json:"updated_at"`
	HTMLURL       string         `json:"html_url"`
}

type CreatePullRequestParams struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Head  string `json:"head"`
	Base  string `json:"base"`
}

type SlackAuthTestResponse struct {
	UserID string
	TeamID string
}

type SlackChannel struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsPrivate bool   `json:"is_private"`
}

type SlackPostMessageResponse struct {
	Channel   string `json:"channel"`
	Timestamp string `json:"timestamp"`
}

type SlackMessage struct {
	User      string `json:"user"`
	Timestamp string `json:"ts"`
	Text      string `json:"text"`
}

type JiraProject struct {
	Key            string `json:"key"`
	Name           string `json:"name"`
	ProjectTypeKey string `json:"projectTypeKey"`
}

type JiraTicket struct {
	Key         string `json:"key"`
	Project     string `json:"project"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	Assignee    string `json:"assignee"`
	Reporter    string `json:"reporter"`
	IssueType   string `json:"issue_type"`
	Created     string `json:"created"`
	Updated     string `json:"updated"`
}

type JiraTicketQuery struct {
	ProjectKey string
	Status     string
	Assignee   string
}

type CreateJiraTicketParams struct {
	ProjectKey  string
	Summary     string
	Description string
	IssueType   string
	Priority    string
	Assignee    string
	Labels      []string
}

type UpdateJiraTicketParams struct {
	Summary     string
	Description string
	Status      string
	Priority    string
	Assignee    string
	Labels      []string
}

// HasUpdates returns true when at least one field would change
func (p UpdateJiraTicketParams) HasUpdates() bool {
	return p.Summary != "" || p.Description != "" || p.Status != "" ||
		p.Priority != "" || p.Assignee != "" || len(p.Labels) > 0
}

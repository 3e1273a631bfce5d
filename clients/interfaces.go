package clients

import "context"

// LLMClient is the single point where the system depends on a
// non-deterministic external service. Tests stub it with fixtures.
type LLMClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (*LLMCompletion, error)
}

// GitHubClient performs GitHub REST operations with an injected credential
type GitHubClient interface {
	ListOwnRepositories(ctx context.Context) ([]GitHubRepository, error)
	ListPullRequests(ctx context.Context, owner, repo string) ([]GitHubPullRequest, error)
	GetPullRequest(ctx context.Context, owner, repo string, number int) (*GitHubPullRequest, error)
	GetRepositoryStats(ctx context.Context, owner, repo string) (*GitHubRepoStats, error)
	CreatePullRequest(ctx context.Context, owner, repo string, req CreatePullRequestParams) (*GitHubPullRequest, error)
}

// SlackClient performs Slack API operations with an injected credential
type SlackClient interface {
	AuthTest(ctx context.Context) (*SlackAuthTestResponse, error)
	ListChannels(ctx context.Context) ([]SlackChannel, error)
	PostMessage(ctx context.Context, channel, text string) (*SlackPostMessageResponse, error)
	GetConversationHistory(ctx context.Context, channel string, limit int) ([]SlackMessage, error)
}

// JiraClient performs Jira REST operations with an injected credential
type JiraClient interface {
	ListProjects(ctx context.Context) ([]JiraProject, error)
	ListTickets(ctx context.Context, query JiraTicketQuery) ([]JiraTicket, int, error)
	GetTicket(ctx context.Context, ticketID string) (*JiraTicket, error)
	CreateTicket(ctx context.Context, req CreateJiraTicketParams) (*JiraTicket, error)
	UpdateTicket(ctx context.Context, ticketID string, req UpdateJiraTicketParams) (*JiraTicket, error)
}

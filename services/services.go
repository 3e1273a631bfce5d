package services

import (
	"context"

	"github.com/samber/mo"

	"agentdock/models"
)

type GitHubIntegrationsService interface {
	ConfigureGitHubIntegration(ctx context.Context, accessToken string) (*models.GitHubIntegration, error)
	GetGitHubIntegration(ctx context.Context) (mo.Option[*models.GitHubIntegration], error)
	DeleteGitHubIntegration(ctx context.Context) error
}

type SlackIntegrationsService interface {
	ConfigureSlackIntegration(ctx context.Context, authToken string) (*models.SlackIntegration, error)
	GetSlackIntegration(ctx context.Context) (mo.Option[*models.SlackIntegration], error)
	DeleteSlackIntegration(ctx context.Context) error
}

type JiraIntegrationsService interface {
	ConfigureJiraIntegration(ctx context.Context, baseURL, email, apiToken string) (*models.JiraIntegration, error)
	GetJiraIntegration(ctx context.Context) (mo.Option[*models.JiraIntegration], error)
	DeleteJiraIntegration(ctx context.Context) error
}

type TurnCostService interface {
	RecordTurnCost(ctx context.Context, turnID string, inputTokens, outputTokens int64) (*models.TurnCost, error)
	GetTurnCost(ctx context.Context, turnID string) (mo.Option[*models.TurnCost], error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	BeginTransaction(ctx context.Context) (context.Context, error)
	CommitTransaction(ctx context.Context) error
	RollbackTransaction(ctx context.Context) error
}

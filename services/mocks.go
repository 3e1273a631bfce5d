package services

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"agentdock/models"
)

// MockGitHubIntegrationsService is a mock implementation of GitHubIntegrationsService
type MockGitHubIntegrationsService struct {
	mock.Mock
}

func (m *MockGitHubIntegrationsService) ConfigureGitHubIntegration(
	ctx context.Context,
	accessToken string,
) (*models.GitHubIntegration, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GitHubIntegration), args.Error(1)
}

func (m *MockGitHubIntegrationsService) GetGitHubIntegration(
	ctx context.Context,
) (mo.Option[*models.GitHubIntegration], error) {
	args := m.Called(ctx)
	return args.Get(0).(mo.Option[*models.GitHubIntegration]), args.Error(1)
}

func (m *MockGitHubIntegrationsService) DeleteGitHubIntegration(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockSlackIntegrationsService is a mock implementation of SlackIntegrationsService
type MockSlackIntegrationsService struct {
	mock.Mock
}

func (m *MockSlackIntegrationsService) ConfigureSlackIntegration(
	ctx context.Context,
	authToken string,
) (*models.SlackIntegration, error) {
	args := m.Called(ctx, authToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SlackIntegration), args.Error(1)
}

func (m *MockSlackIntegrationsService) GetSlackIntegration(
	ctx context.Context,
) (mo.Option[*models.SlackIntegration], error) {
	args := m.Called(ctx)
	return args.Get(0).(mo.Option[*models.SlackIntegration]), args.Error(1)
}

func (m *MockSlackIntegrationsService) DeleteSlackIntegration(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockJiraIntegrationsService is a mock implementation of JiraIntegrationsService
type MockJiraIntegrationsService struct {
	mock.Mock
}

func (m *MockJiraIntegrationsService) ConfigureJiraIntegration(
	ctx context.Context,
	baseURL, email, apiToken string,
) (*models.JiraIntegration, error) {
	args := m.Called(ctx, baseURL, email, apiToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JiraIntegration), args.Error(1)
}

func (m *MockJiraIntegrationsService) GetJiraIntegration(
	ctx context.Context,
) (mo.Option[*models.JiraIntegration], error) {
	args := m.Called(ctx)
	return args.Get(0).(mo.Option[*models.JiraIntegration]), args.Error(1)
}

func (m *MockJiraIntegrationsService) DeleteJiraIntegration(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockTurnCostService is a mock implementation of TurnCostService
type MockTurnCostService struct {
	mock.Mock
}

func (m *MockTurnCostService) RecordTurnCost(
	ctx context.Context,
	turnID string,
	inputTokens, outputTokens int64,
) (*models.TurnCost, error) {
	args := m.Called(ctx, turnID, inputTokens, outputTokens)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TurnCost), args.Error(1)
}

func (m *MockTurnCostService) GetTurnCost(
	ctx context.Context,
	turnID string,
) (mo.Option[*models.TurnCost], error) {
	args := m.Called(ctx, turnID)
	return args.Get(0).(mo.Option[*models.TurnCost]), args.Error(1)
}

// MockTransactionManager is a mock implementation of TransactionManager
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	// Execute the function directly so service logic under test still runs
	if args.Error(0) == nil {
		return fn(ctx)
	}
	return args.Error(0)
}

func (m *MockTransactionManager) BeginTransaction(ctx context.Context) (context.Context, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(context.Context), args.Error(1)
}

func (m *MockTransactionManager) CommitTransaction(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTransactionManager) RollbackTransaction(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

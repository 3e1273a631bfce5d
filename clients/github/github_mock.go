package github

import (
	"context"

	"github.com/stretchr/testify/mock"

	"agentdock/clients"
)

// MockGitHubClient is a mock implementation of clients.GitHubClient
type MockGitHubClient struct {
	mock.Mock
}

func (m *MockGitHubClient) ListOwnRepositories(ctx context.Context) ([]clients.GitHubRepository, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]clients.GitHubRepository), args.Error(1)
}

func (m *MockGitHubClient) ListPullRequests(
	ctx context.Context,
	owner, repo string,
) ([]clients.GitHubPullRequest, error) {
	args := m.Called(ctx, owner, repo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]clients.GitHubPullRequest), args.Error(1)
}

func (m *MockGitHubClient) GetPullRequest(
	ctx context.Context,
	owner, repo string,
	number int,
) (*clients.GitHubPullRequest, error) {
	args := m.Called(ctx, owner, repo, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.GitHubPullRequest), args.Error(1)
}

func (m *MockGitHubClient) GetRepositoryStats(
	ctx context.Context,
	owner, repo string,
) (*clients.GitHubRepoStats, error) {
	args := m.Called(ctx, owner, repo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.GitHubRepoStats), args.Error(1)
}

func (m *MockGitHubClient) CreatePullRequest(
	ctx context.Context,
	owner, repo string,
	params clients.CreatePullRequestParams,
) (*clients.GitHubPullRequest, error) {
	args := m.Called(ctx, owner, repo, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.GitHubPullRequest), args.Error(1)
}

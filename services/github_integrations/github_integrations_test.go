package github_integrations

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agentdock/core"
	"agentdock/models"
	"agentdock/services"
	"agentdock/testutils"
)

// mockGitHubIntegrationsRepository is a mock implementation of GitHubIntegrationsRepository
type mockGitHubIntegrationsRepository struct {
	mock.Mock
}

func (m *mockGitHubIntegrationsRepository) CreateGitHubIntegration(
	ctx context.Context,
	integration *models.GitHubIntegration,
) error {
	args := m.Called(ctx, integration)
	return args.Error(0)
}

func (m *mockGitHubIntegrationsRepository) GetLatestGitHubIntegration(
	ctx context.Context,
) (*models.GitHubIntegration, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GitHubIntegration), args.Error(1)
}

func (m *mockGitHubIntegrationsRepository) DeleteAllGitHubIntegrations(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type githubIntegrationsTestFixture struct {
	repo      *mockGitHubIntegrationsRepository
	txManager *services.MockTransactionManager
	service   *GitHubIntegrationsService
}

func newGitHubIntegrationsTestFixture() *githubIntegrationsTestFixture {
	f := &githubIntegrationsTestFixture{
		repo:      new(mockGitHubIntegrationsRepository),
		txManager: new(services.MockTransactionManager),
	}
	f.service = NewGitHubIntegrationsService(f.repo, f.txManager)
	return f
}

func TestConfigureGitHubIntegration_ReplacesPrevious(t *testing.T) {
	f := newGitHubIntegrationsTestFixture()
	token := testutils.GenerateTestToken("ghp")

	f.txManager.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	f.repo.On("DeleteAllGitHubIntegrations", mock.Anything).Return(nil)
	f.repo.On("CreateGitHubIntegration", mock.Anything, mock.MatchedBy(func(i *models.GitHubIntegration) bool {
		return i.AccessToken == token && core.IsValidULID(i.ID)
	})).Return(nil)

	integration, err := f.service.ConfigureGitHubIntegration(context.Background(), token)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(integration.ID, "ghi_"))
	assert.Equal(t, token, integration.AccessToken)
	f.repo.AssertExpectations(t)
	f.txManager.AssertExpectations(t)
}

func TestConfigureGitHubIntegration_EmptyToken(t *testing.T) {
	f := newGitHubIntegrationsTestFixture()

	integration, err := f.service.ConfigureGitHubIntegration(context.Background(), "")

	require.Error(t, err)
	assert.Nil(t, integration)
	f.txManager.AssertNotCalled(t, "WithTransaction", mock.Anything, mock.Anything)
	f.repo.AssertNotCalled(t, "CreateGitHubIntegration", mock.Anything, mock.Anything)
}

func TestConfigureGitHubIntegration_CreateFails(t *testing.T) {
	f := newGitHubIntegrationsTestFixture()

	f.txManager.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	f.repo.On("DeleteAllGitHubIntegrations", mock.Anything).Return(nil)
	f.repo.On("CreateGitHubIntegration", mock.Anything, mock.Anything).
		Return(errors.New("connection reset"))

	integration, err := f.service.ConfigureGitHubIntegration(
		context.Background(), testutils.GenerateTestToken("ghp"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create GitHub integration")
	assert.Nil(t, integration)
}

func TestGetGitHubIntegration_NotConfigured(t *testing.T) {
	f := newGitHubIntegrationsTestFixture()
	f.repo.On("GetLatestGitHubIntegration", mock.Anything).Return(nil, core.ErrNotFound)

	integration, err := f.service.GetGitHubIntegration(context.Background())

	require.NoError(t, err)
	assert.True(t, integration.IsAbsent())
}

func TestGetGitHubIntegration_Found(t *testing.T) {
	f := newGitHubIntegrationsTestFixture()
	stored := &models.GitHubIntegration{ID: "ghi_stored", AccessToken: "gh-token"}
	f.repo.On("GetLatestGitHubIntegration", mock.Anything).Return(stored, nil)

	integration, err := f.service.GetGitHubIntegration(context.Background())

	require.NoError(t, err)
	found, ok := integration.Get()
	require.True(t, ok)
	assert.Equal(t, "ghi_stored", found.ID)
}

func TestGetGitHubIntegration_RepoError(t *testing.T) {
	f := newGitHubIntegrationsTestFixture()
	f.repo.On("GetLatestGitHubIntegration", mock.Anything).
		Return(nil, errors.New("connection reset"))

	integration, err := f.service.GetGitHubIntegration(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get GitHub integration")
	assert.True(t, integration.IsAbsent())
}

func TestDeleteGitHubIntegration(t *testing.T) {
	f := newGitHubIntegrationsTestFixture()
	f.repo.On("DeleteAllGitHubIntegrations", mock.Anything).Return(nil)

	err := f.service.DeleteGitHubIntegration(context.Background())

	require.NoError(t, err)
	f.repo.AssertExpectations(t)
}

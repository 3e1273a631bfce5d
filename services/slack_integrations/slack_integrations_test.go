package slack_integrations

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agentdock/clients"
	slackclient "agentdock/clients/slack"
	"agentdock/core"
	"agentdock/models"
	"agentdock/services"
	"agentdock/testutils"
)

// mockSlackIntegrationsRepository is a mock implementation of SlackIntegrationsRepository
type mockSlackIntegrationsRepository struct {
	mock.Mock
}

func (m *mockSlackIntegrationsRepository) CreateSlackIntegration(
	ctx context.Context,
	integration *models.SlackIntegration,
) error {
	args := m.Called(ctx, integration)
	return args.Error(0)
}

func (m *mockSlackIntegrationsRepository) GetLatestSlackIntegration(
	ctx context.Context,
) (*models.SlackIntegration, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SlackIntegration), args.Error(1)
}

func (m *mockSlackIntegrationsRepository) DeleteAllSlackIntegrations(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type slackIntegrationsTestFixture struct {
	repo         *mockSlackIntegrationsRepository
	txManager    *services.MockTransactionManager
	slackClient  *slackclient.MockSlackClient
	factoryToken string
	service      *SlackIntegrationsService
}

func newSlackIntegrationsTestFixture() *slackIntegrationsTestFixture {
	f := &slackIntegrationsTestFixture{
		repo:        new(mockSlackIntegrationsRepository),
		txManager:   new(services.MockTransactionManager),
		slackClient: new(slackclient.MockSlackClient),
	}
	f.service = NewSlackIntegrationsService(f.repo, f.txManager, func(authToken string) clients.SlackClient {
		f.factoryToken = authToken
		return f.slackClient
	})
	return f
}

func TestConfigureSlackIntegration_ValidatesTokenBeforeStore(t *testing.T) {
	f := newSlackIntegrationsTestFixture()
	token := testutils.GenerateTestToken("xoxb")

	f.slackClient.On("AuthTest", mock.Anything).
		Return(&clients.SlackAuthTestResponse{UserID: "U123", TeamID: "T123"}, nil)
	f.txManager.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	f.repo.On("DeleteAllSlackIntegrations", mock.Anything).Return(nil)
	f.repo.On("CreateSlackIntegration", mock.Anything, mock.MatchedBy(func(i *models.SlackIntegration) bool {
		return i.AuthToken == token && i.SlackTeamID == "T123" && core.IsValidULID(i.ID)
	})).Return(nil)

	integration, err := f.service.ConfigureSlackIntegration(context.Background(), token)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(integration.ID, "sli_"))
	assert.Equal(t, "T123", integration.SlackTeamID)
	assert.Equal(t, token, f.factoryToken)
	f.repo.AssertExpectations(t)
}

func TestConfigureSlackIntegration_AuthTestFails(t *testing.T) {
	f := newSlackIntegrationsTestFixture()
	f.slackClient.On("AuthTest", mock.Anything).
		Return(nil, errors.New("invalid_auth"))

	integration, err := f.service.ConfigureSlackIntegration(
		context.Background(), testutils.GenerateTestToken("xoxb"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to verify Slack token")
	assert.Nil(t, integration)

	// A rejected token never reaches storage
	f.txManager.AssertNotCalled(t, "WithTransaction", mock.Anything, mock.Anything)
	f.repo.AssertNotCalled(t, "CreateSlackIntegration", mock.Anything, mock.Anything)
}

func TestConfigureSlackIntegration_EmptyToken(t *testing.T) {
	f := newSlackIntegrationsTestFixture()

	integration, err := f.service.ConfigureSlackIntegration(context.Background(), "")

	require.Error(t, err)
	assert.Nil(t, integration)
	f.slackClient.AssertNotCalled(t, "AuthTest", mock.Anything)
}

func TestGetSlackIntegration_NotConfigured(t *testing.T) {
	f := newSlackIntegrationsTestFixture()
	f.repo.On("GetLatestSlackIntegration", mock.Anything).Return(nil, core.ErrNotFound)

	integration, err := f.service.GetSlackIntegration(context.Background())

	require.NoError(t, err)
	assert.True(t, integration.IsAbsent())
}

func TestGetSlackIntegration_Found(t *testing.T) {
	f := newSlackIntegrationsTestFixture()
	stored := &models.SlackIntegration{ID: "sli_stored", AuthToken: "xoxb-token", SlackTeamID: "T123"}
	f.repo.On("GetLatestSlackIntegration", mock.Anything).Return(stored, nil)

	integration, err := f.service.GetSlackIntegration(context.Background())

	require.NoError(t, err)
	found, ok := integration.Get()
	require.True(t, ok)
	assert.Equal(t, "sli_stored", found.ID)
}

func TestDeleteSlackIntegration(t *testing.T) {
	f := newSlackIntegrationsTestFixture()
	f.repo.On("DeleteAllSlackIntegrations", mock.Anything).Return(nil)

	err := f.service.DeleteSlackIntegration(context.Background())

	require.NoError(t, err)
	f.repo.AssertExpectations(t)
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agentdock/models"
	"agentdock/services"
	"agentdock/usecases"
)

type chatHandlerTestFixture struct {
	agentUseCase *usecases.MockAgentUseCase
	githubSvc    *services.MockGitHubIntegrationsService
	slackSvc     *services.MockSlackIntegrationsService
	jiraSvc      *services.MockJiraIntegrationsService
	router       *mux.Router
}

func newChatHandlerTestFixture() *chatHandlerTestFixture {
	f := &chatHandlerTestFixture{
		agentUseCase: new(usecases.MockAgentUseCase),
		githubSvc:    new(services.MockGitHubIntegrationsService),
		slackSvc:     new(services.MockSlackIntegrationsService),
		jiraSvc:      new(services.MockJiraIntegrationsService),
	}

	handler := NewChatHTTPHandler(f.agentUseCase, f.githubSvc, f.slackSvc, f.jiraSvc)
	f.router = mux.NewRouter()
	handler.SetupEndpoints(f.router)
	return f
}

func (f *chatHandlerTestFixture) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)
	return recorder
}

func TestHandleChat_Success(t *testing.T) {
	f := newChatHandlerTestFixture()
	f.agentUseCase.On("HandleTurn", mock.Anything, "list my repos", (*models.TurnOptions)(nil)).
		Return(&models.AggregatedResponse{ResponseText: "Here are your repositories:"})

	recorder := f.do("POST", "/chat", `{"message": "list my repos"}`)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var response models.AggregatedResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "Here are your repositories:", response.ResponseText)
	assert.Nil(t, response.ActionsTaken)
}

func TestHandleChat_PassesTurnOptions(t *testing.T) {
	f := newChatHandlerTestFixture()

	var captured *models.TurnOptions
	f.agentUseCase.On("HandleTurn", mock.Anything, "hi", mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(*models.TurnOptions)
		}).
		Return(&models.AggregatedResponse{ResponseText: "hello"})

	body := `{"message": "hi", "context": {"endpoint_overrides": {"github": "https://github.test"}}}`
	recorder := f.do("POST", "/chat", body)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, captured)
	assert.Equal(t, "https://github.test", captured.EndpointOverride(models.PlatformGitHub))
}

func TestHandleChat_EmptyMessage(t *testing.T) {
	f := newChatHandlerTestFixture()

	recorder := f.do("POST", "/chat", `{"message": ""}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	f.agentUseCase.AssertNotCalled(t, "HandleTurn", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleChat_InvalidJSON(t *testing.T) {
	f := newChatHandlerTestFixture()

	recorder := f.do("POST", "/chat", `not json`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestConfigureGitHubIntegration_Success(t *testing.T) {
	f := newChatHandlerTestFixture()
	f.githubSvc.On("ConfigureGitHubIntegration", mock.Anything, "ghp_token123").
		Return(&models.GitHubIntegration{ID: "ghi_test"}, nil)

	recorder := f.do("POST", "/integrations/github", `{"access_token": "ghp_token123"}`)

	require.Equal(t, http.StatusOK, recorder.Code)

	var integration models.GitHubIntegration
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &integration))
	assert.Equal(t, "ghi_test", integration.ID)
}

func TestConfigureGitHubIntegration_ServiceError(t *testing.T) {
	f := newChatHandlerTestFixture()
	f.githubSvc.On("ConfigureGitHubIntegration", mock.Anything, "").
		Return(nil, errors.New("access token cannot be empty"))

	recorder := f.do("POST", "/integrations/github", `{"access_token": ""}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestConfigureJiraIntegration_Success(t *testing.T) {
	f := newChatHandlerTestFixture()
	f.jiraSvc.On("ConfigureJiraIntegration", mock.Anything, "https://acme.atlassian.net", "dev@acme.com", "jira_token").
		Return(&models.JiraIntegration{ID: "jri_test"}, nil)

	body := `{"base_url": "https://acme.atlassian.net", "email": "dev@acme.com", "api_token": "jira_token"}`
	recorder := f.do("POST", "/integrations/jira", body)

	require.Equal(t, http.StatusOK, recorder.Code)
}

func TestDeleteSlackIntegration(t *testing.T) {
	f := newChatHandlerTestFixture()
	f.slackSvc.On("DeleteSlackIntegration", mock.Anything).Return(nil)

	recorder := f.do("DELETE", "/integrations/slack", "")

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	f.slackSvc.AssertExpectations(t)
}

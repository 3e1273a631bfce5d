package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"agentdock/appctx"
	"agentdock/models"
	"agentdock/services"
	"agentdock/usecases"
)

type ChatHTTPHandler struct {
	agentUseCase              usecases.AgentUseCase
	githubIntegrationsService services.GitHubIntegrationsService
	slackIntegrationsService  services.SlackIntegrationsService
	jiraIntegrationsService   services.JiraIntegrationsService
}

func NewChatHTTPHandler(
	agentUseCase usecases.AgentUseCase,
	githubIntegrationsService services.GitHubIntegrationsService,
	slackIntegrationsService services.SlackIntegrationsService,
	jiraIntegrationsService services.JiraIntegrationsService,
) *ChatHTTPHandler {
	return &ChatHTTPHandler{
		agentUseCase:              agentUseCase,
		githubIntegrationsService: githubIntegrationsService,
		slackIntegrationsService:  slackIntegrationsService,
		jiraIntegrationsService:   jiraIntegrationsService,
	}
}

type GitHubIntegrationRequest struct {
	AccessToken string `json:"access_token"`
}

type SlackIntegrationRequest struct {
	AuthToken string `json:"auth_token"`
}

type JiraIntegrationRequest struct {
	BaseURL  string `json:"base_url"`
	Email    string `json:"email"`
	APIToken string `json:"api_token"`
}

func (h *ChatHTTPHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	log.Printf("💬 Chat request received from %s", r.RemoteAddr)

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Failed to decode chat request: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		http.Error(w, "message cannot be empty", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	if req.Context != nil {
		ctx = appctx.SetTurnOptions(ctx, req.Context)
	}

	response := h.agentUseCase.HandleTurn(ctx, req.Message, req.Context)
	h.writeJSONResponse(w, http.StatusOK, response)
}

func (h *ChatHTTPHandler) HandleConfigureGitHubIntegration(w http.ResponseWriter, r *http.Request) {
	log.Printf("➕ Configure GitHub integration request received from %s", r.RemoteAddr)

	var req GitHubIntegrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Failed to decode GitHub integration request: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	integration, err := h.githubIntegrationsService.ConfigureGitHubIntegration(r.Context(), req.AccessToken)
	if err != nil {
		log.Printf("❌ Failed to configure GitHub integration: %v", err)
		http.Error(w, "failed to configure GitHub integration", http.StatusBadRequest)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, integration)
}

func (h *ChatHTTPHandler) HandleDeleteGitHubIntegration(w http.ResponseWriter, r *http.Request) {
	log.Printf("🗑️ Delete GitHub integration request received from %s", r.RemoteAddr)

	if err := h.githubIntegrationsService.DeleteGitHubIntegration(r.Context()); err != nil {
		log.Printf("❌ Failed to delete GitHub integration: %v", err)
		http.Error(w, "failed to delete GitHub integration", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ChatHTTPHandler) HandleConfigureSlackIntegration(w http.ResponseWriter, r *http.Request) {
	log.Printf("➕ Configure Slack integration request received from %s", r.RemoteAddr)

	var req SlackIntegrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Failed to decode Slack integration request: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	integration, err := h.slackIntegrationsService.ConfigureSlackIntegration(r.Context(), req.AuthToken)
	if err != nil {
		log.Printf("❌ Failed to configure Slack integration: %v", err)
		http.Error(w, "failed to configure Slack integration", http.StatusBadRequest)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, integration)
}

func (h *ChatHTTPHandler) HandleDeleteSlackIntegration(w http.ResponseWriter, r *http.Request) {
	log.Printf("🗑️ Delete Slack integration request received from %s", r.RemoteAddr)

	if err := h.slackIntegrationsService.DeleteSlackIntegration(r.Context()); err != nil {
		log.Printf("❌ Failed to delete Slack integration: %v", err)
		http.Error(w, "failed to delete Slack integration", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ChatHTTPHandler) HandleConfigureJiraIntegration(w http.ResponseWriter, r *http.Request) {
	log.Printf("➕ Configure Jira integration request received from %s", r.RemoteAddr)

	var req JiraIntegrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Failed to decode Jira integration request: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	integration, err := h.jiraIntegrationsService.ConfigureJiraIntegration(
		r.Context(), req.BaseURL, req.Email, req.APIToken)
	if err != nil {
		log.Printf("❌ Failed to configure Jira integration: %v", err)
		http.Error(w, "failed to configure Jira integration", http.StatusBadRequest)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, integration)
}

func (h *ChatHTTPHandler) HandleDeleteJiraIntegration(w http.ResponseWriter, r *http.Request) {
	log.Printf("🗑️ Delete Jira integration request received from %s", r.RemoteAddr)

	if err := h.jiraIntegrationsService.DeleteJiraIntegration(r.Context()); err != nil {
		log.Printf("❌ Failed to delete Jira integration: %v", err)
		http.Error(w, "failed to delete Jira integration", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ChatHTTPHandler) SetupEndpoints(router *mux.Router) {
	router.HandleFunc("/chat", h.HandleChat).Methods("POST")

	router.HandleFunc("/integrations/github", h.HandleConfigureGitHubIntegration).Methods("POST")
	router.HandleFunc("/integrations/github", h.HandleDeleteGitHubIntegration).Methods("DELETE")

	router.HandleFunc("/integrations/slack", h.HandleConfigureSlackIntegration).Methods("POST")
	router.HandleFunc("/integrations/slack", h.HandleDeleteSlackIntegration).Methods("DELETE")

	router.HandleFunc("/integrations/jira", h.HandleConfigureJiraIntegration).Methods("POST")
	router.HandleFunc("/integrations/jira", h.HandleDeleteJiraIntegration).Methods("DELETE")
}

func (h *ChatHTTPHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("❌ Failed to encode JSON response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

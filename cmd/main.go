package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"agentdock/clients"
	anthropicclient "agentdock/clients/anthropic"
	githubclient "agentdock/clients/github"
	jiraclient "agentdock/clients/jira"
	slackclient "agentdock/clients/slack"
	"agentdock/config"
	"agentdock/db"
	"agentdock/handlers"
	"agentdock/middleware"
	githubintegrations "agentdock/services/github_integrations"
	jiraintegrations "agentdock/services/jira_integrations"
	slackintegrations "agentdock/services/slack_integrations"
	"agentdock/services/turncost"
	"agentdock/services/txmanager"
	"agentdock/usecases/agent"
)

func main() {
	if err := run(); err != nil {
		log.Printf("❌ Fatal error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Initialize error alert middleware
	alertMiddleware := middleware.NewErrorAlertMiddleware(middleware.SlackAlertConfig{
		WebhookURL:  cfg.AlertWebhookURL,
		Environment: cfg.Environment,
		AppName:     "agentdock",
		LogsURL:     cfg.ServerLogsURL,
	})

	// Initialize database connection
	dbConn, err := db.NewConnection(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	// Initialize repositories with shared connection
	githubIntegrationsRepo := db.NewPostgresGitHubIntegrationsRepository(dbConn, cfg.DatabaseSchema)
	slackIntegrationsRepo := db.NewPostgresSlackIntegrationsRepository(dbConn, cfg.DatabaseSchema)
	jiraIntegrationsRepo := db.NewPostgresJiraIntegrationsRepository(dbConn, cfg.DatabaseSchema)
	turnCostsRepo := db.NewPostgresTurnCostsRepository(dbConn, cfg.DatabaseSchema)

	// Initialize transaction manager
	txManager := txmanager.NewTransactionManager(dbConn)

	slackClientFactory := func(authToken string) clients.SlackClient {
		return slackclient.NewSlackClient(authToken, cfg.AdapterEndpoints.SlackBaseURL)
	}

	githubIntegrationsService := githubintegrations.NewGitHubIntegrationsService(githubIntegrationsRepo, txManager)
	slackIntegrationsService := slackintegrations.NewSlackIntegrationsService(
		slackIntegrationsRepo,
		txManager,
		slackClientFactory,
	)
	jiraIntegrationsService := jiraintegrations.NewJiraIntegrationsService(jiraIntegrationsRepo, txManager)
	turnCostService := turncost.NewTurnCostService(turnCostsRepo)

	llmClient := anthropicclient.NewAnthropicClient(cfg.AnthropicConfig.APIKey, cfg.AnthropicConfig.Model)
	classifier := agent.NewLLMIntentClassifier(llmClient)

	agentUseCase := agent.NewAgentUseCase(
		classifier,
		llmClient,
		githubIntegrationsService,
		slackIntegrationsService,
		jiraIntegrationsService,
		turnCostService,
		func(accessToken, baseURL string) clients.GitHubClient {
			return githubclient.NewGitHubClient(accessToken, baseURL)
		},
		func(authToken, apiURL string) clients.SlackClient {
			return slackclient.NewSlackClient(authToken, apiURL)
		},
		func(baseURL, email, apiToken string) clients.JiraClient {
			return jiraclient.NewJiraClient(baseURL, email, apiToken)
		},
		cfg.AdapterEndpoints,
		cfg.AggregatorMode,
	)

	chatHandler := handlers.NewChatHTTPHandler(
		agentUseCase,
		githubIntegrationsService,
		slackIntegrationsService,
		jiraIntegrationsService,
	)

	// Create a new router
	router := mux.NewRouter()
	chatHandler.SetupEndpoints(router)

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			log.Printf("❌ Failed to write health check response: %v", err)
		}
	}).Methods("GET")

	// Setup CORS middleware
	allowedOrigins := strings.Split(cfg.CORSAllowedOrigins, ",")
	for i, origin := range allowedOrigins {
		allowedOrigins[i] = strings.TrimSpace(origin)
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	// Setup and handle graceful shutdown
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           alertMiddleware.HTTPMiddleware(c.Handler(router)),
		ReadHeaderTimeout: 30 * time.Second,
	}

	return handleGracefulShutdown(server)
}

func handleGracefulShutdown(server *http.Server) error {
	// Channel to listen for interrupt signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		log.Printf("✅ Listening on http://localhost%s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("❌ Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	<-stop
	log.Printf("🛑 Shutdown signal received, cleaning up...")

	// Create a deadline for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown server gracefully
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("❌ Server shutdown error: %v", err)
		return err
	}

	log.Printf("✅ Server stopped gracefully")
	return nil
}

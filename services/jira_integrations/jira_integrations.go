package jira_integrations

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"github.com/samber/mo"

	"agentdock/core"
	"agentdock/models"
	"agentdock/services"
)

// JiraIntegrationsRepository is the storage this service depends on
type JiraIntegrationsRepository interface {
	CreateJiraIntegration(ctx context.Context, integration *models.JiraIntegration) error
	GetLatestJiraIntegration(ctx context.Context) (*models.JiraIntegration, error)
	DeleteAllJiraIntegrations(ctx context.Context) error
}

type JiraIntegrationsService struct {
	jiraRepo  JiraIntegrationsRepository
	txManager services.TransactionManager
}

func NewJiraIntegrationsService(
	repo JiraIntegrationsRepository,
	txManager services.TransactionManager,
) *JiraIntegrationsService {
	return &JiraIntegrationsService{
		jiraRepo:  repo,
		txManager: txManager,
	}
}

// ConfigureJiraIntegration stores the Jira site URL plus the email/API token
// pair used for basic auth. Only one integration is active at a time.
func (s *JiraIntegrationsService) ConfigureJiraIntegration(
	ctx context.Context,
	baseURL, email, apiToken string,
) (*models.JiraIntegration, error) {
	log.Printf("📋 Starting to configure Jira integration")

	if baseURL == "" {
		return nil, fmt.Errorf("base URL cannot be empty")
	}
	if email == "" {
		return nil, fmt.Errorf("email cannot be empty")
	}
	if apiToken == "" {
		return nil, fmt.Errorf("API token cannot be empty")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("base URL must be a valid absolute URL")
	}

	integration := &models.JiraIntegration{
		ID:       core.NewID("jri"),
		BaseURL:  baseURL,
		Email:    email,
		APIToken: apiToken,
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.jiraRepo.DeleteAllJiraIntegrations(txCtx); err != nil {
			return fmt.Errorf("failed to remove previous Jira integration: %w", err)
		}
		if err := s.jiraRepo.CreateJiraIntegration(txCtx, integration); err != nil {
			return fmt.Errorf("failed to create Jira integration: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("📋 Completed successfully - configured Jira integration with ID: %s", integration.ID)
	return integration, nil
}

func (s *JiraIntegrationsService) GetJiraIntegration(
	ctx context.Context,
) (mo.Option[*models.JiraIntegration], error) {
	log.Printf("📋 Starting to get Jira integration")

	integration, err := s.jiraRepo.GetLatestJiraIntegration(ctx)
	if core.IsNotFoundError(err) {
		log.Printf("📋 Completed successfully - no Jira integration configured")
		return mo.None[*models.JiraIntegration](), nil
	}
	if err != nil {
		return mo.None[*models.JiraIntegration](), fmt.Errorf("failed to get Jira integration: %w", err)
	}

	log.Printf("📋 Completed successfully - found Jira integration: %s", integration.ID)
	return mo.Some(integration), nil
}

func (s *JiraIntegrationsService) DeleteJiraIntegration(ctx context.Context) error {
	log.Printf("📋 Starting to delete Jira integration")

	if err := s.jiraRepo.DeleteAllJiraIntegrations(ctx); err != nil {
		return fmt.Errorf("failed to delete Jira integration: %w", err)
	}

	log.Printf("📋 Completed successfully - deleted Jira integration")
	return nil
}

package github_integrations

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/mo"

	"agentdock/core"
	"agentdock/models"
	"agentdock/services"
)

// GitHubIntegrationsRepository is the storage this service depends on
type GitHubIntegrationsRepository interface {
	CreateGitHubIntegration(ctx context.Context, integration *models.GitHubIntegration) error
	GetLatestGitHubIntegration(ctx context.Context) (*models.GitHubIntegration, error)
	DeleteAllGitHubIntegrations(ctx context.Context) error
}

type GitHubIntegrationsService struct {
	githubRepo GitHubIntegrationsRepository
	txManager  services.TransactionManager
}

func NewGitHubIntegrationsService(
	repo GitHubIntegrationsRepository,
	txManager services.TransactionManager,
) *GitHubIntegrationsService {
	return &GitHubIntegrationsService{
		githubRepo: repo,
		txManager:  txManager,
	}
}

// ConfigureGitHubIntegration stores the personal access token used for all
// GitHub actions. Only one integration is active at a time, so any previous
// token is replaced.
func (s *GitHubIntegrationsService) ConfigureGitHubIntegration(
	ctx context.Context,
	accessToken string,
) (*models.GitHubIntegration, error) {
	log.Printf("📋 Starting to configure GitHub integration")

	if accessToken == "" {
		return nil, fmt.Errorf("access token cannot be empty")
	}

	integration := &models.GitHubIntegration{
		ID:          core.NewID("ghi"),
		AccessToken: accessToken,
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.githubRepo.DeleteAllGitHubIntegrations(txCtx); err != nil {
			return fmt.Errorf("failed to remove previous GitHub integration: %w", err)
		}
		if err := s.githubRepo.CreateGitHubIntegration(txCtx, integration); err != nil {
			return fmt.Errorf("failed to create GitHub integration: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("📋 Completed successfully - configured GitHub integration with ID: %s", integration.ID)
	return integration, nil
}

func (s *GitHubIntegrationsService) GetGitHubIntegration(
	ctx context.Context,
) (mo.Option[*models.GitHubIntegration], error) {
	log.Printf("📋 Starting to get GitHub integration")

	integration, err := s.githubRepo.GetLatestGitHubIntegration(ctx)
	if core.IsNotFoundError(err) {
		log.Printf("📋 Completed successfully - no GitHub integration configured")
		return mo.None[*models.GitHubIntegration](), nil
	}
	if err != nil {
		return mo.None[*models.GitHubIntegration](), fmt.Errorf("failed to get GitHub integration: %w", err)
	}

	log.Printf("📋 Completed successfully - found GitHub integration: %s", integration.ID)
	return mo.Some(integration), nil
}

func (s *GitHubIntegrationsService) DeleteGitHubIntegration(ctx context.Context) error {
	log.Printf("📋 Starting to delete GitHub integration")

	if err := s.githubRepo.DeleteAllGitHubIntegrations(ctx); err != nil {
		return fmt.Errorf("failed to delete GitHub integration: %w", err)
	}

	log.Printf("📋 Completed successfully - deleted GitHub integration")
	return nil
}

package slack_integrations

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/mo"

	"agentdock/clients"
	"agentdock/core"
	"agentdock/models"
	"agentdock/services"
)

// SlackIntegrationsRepository is the storage this service depends on
type SlackIntegrationsRepository interface {
	CreateSlackIntegration(ctx context.Context, integration *models.SlackIntegration) error
	GetLatestSlackIntegration(ctx context.Context) (*models.SlackIntegration, error)
	DeleteAllSlackIntegrations(ctx context.Context) error
}

type SlackIntegrationsService struct {
	slackRepo          SlackIntegrationsRepository
	txManager          services.TransactionManager
	slackClientFactory func(authToken string) clients.SlackClient
}

func NewSlackIntegrationsService(
	repo SlackIntegrationsRepository,
	txManager services.TransactionManager,
	slackClientFactory func(authToken string) clients.SlackClient,
) *SlackIntegrationsService {
	return &SlackIntegrationsService{
		slackRepo:          repo,
		txManager:          txManager,
		slackClientFactory: slackClientFactory,
	}
}

// ConfigureSlackIntegration validates the bot token against the Slack API
// and stores it. Only one integration is active at a time.
func (s *SlackIntegrationsService) ConfigureSlackIntegration(
	ctx context.Context,
	authToken string,
) (*models.SlackIntegration, error) {
	log.Printf("📋 Starting to configure Slack integration")

	if authToken == "" {
		return nil, fmt.Errorf("auth token cannot be empty")
	}

	slackClient := s.slackClientFactory(authToken)
	authTest, err := slackClient.AuthTest(ctx)
	if err != nil {
		log.Printf("❌ Slack token validation failed: %v", err)
		return nil, fmt.Errorf("failed to verify Slack token: %w", err)
	}

	integration := &models.SlackIntegration{
		ID:          core.NewID("sli"),
		AuthToken:   authToken,
		SlackTeamID: authTest.TeamID,
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.slackRepo.DeleteAllSlackIntegrations(txCtx); err != nil {
			return fmt.Errorf("failed to remove previous Slack integration: %w", err)
		}
		if err := s.slackRepo.CreateSlackIntegration(txCtx, integration); err != nil {
			return fmt.Errorf("failed to create Slack integration: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf(
		"📋 Completed successfully - configured Slack integration %s for team: %s",
		integration.ID,
		integration.SlackTeamID,
	)
	return integration, nil
}

func (s *SlackIntegrationsService) GetSlackIntegration(
	ctx context.Context,
) (mo.Option[*models.SlackIntegration], error) {
	log.Printf("📋 Starting to get Slack integration")

	integration, err := s.slackRepo.GetLatestSlackIntegration(ctx)
	if core.IsNotFoundError(err) {
		log.Printf("📋 Completed successfully - no Slack integration configured")
		return mo.None[*models.SlackIntegration](), nil
	}
	if err != nil {
		return mo.None[*models.SlackIntegration](), fmt.Errorf("failed to get Slack integration: %w", err)
	}

	log.Printf("📋 Completed successfully - found Slack integration: %s", integration.ID)
	return mo.Some(integration), nil
}

func (s *SlackIntegrationsService) DeleteSlackIntegration(ctx context.Context) error {
	log.Printf("📋 Starting to delete Slack integration")

	if err := s.slackRepo.DeleteAllSlackIntegrations(ctx); err != nil {
		return fmt.Errorf("failed to delete Slack integration: %w", err)
	}

	log.Printf("📋 Completed successfully - deleted Slack integration")
	return nil
}

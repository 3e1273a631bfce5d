package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"agentdock/core"
	"agentdock/db/tx"
	"agentdock/models"
)

var slackIntegrationsColumns = []string{
	"id",
	"auth_token",
	"slack_team_id",
	"created_at",
	"updated_at",
}

type PostgresSlackIntegrationsRepository struct {
	db     *sqlx.DB
	schema string
}

func NewPostgresSlackIntegrationsRepository(db *sqlx.DB, schema string) *PostgresSlackIntegrationsRepository {
	return &PostgresSlackIntegrationsRepository{db: db, schema: schema}
}

func (r *PostgresSlackIntegrationsRepository) CreateSlackIntegration(
	ctx context.Context,
	integration *models.SlackIntegration,
) error {
	query := fmt.Sprintf(`
		INSERT INTO %s.slack_integrations (id, auth_token, slack_team_id)
		VALUES ($1, $2, $3)
		RETURNING %s`, r.schema, strings.Join(slackIntegrationsColumns, ", "))

	err := tx.GetTransactional(ctx, r.db).GetContext(
		ctx, integration, query, integration.ID, integration.AuthToken, integration.SlackTeamID)
	if err != nil {
		return fmt.Errorf("failed to create slack integration: %w", err)
	}

	return nil
}

func (r *PostgresSlackIntegrationsRepository) GetLatestSlackIntegration(
	ctx context.Context,
) (*models.SlackIntegration, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.slack_integrations
		ORDER BY created_at DESC
		LIMIT 1`, strings.Join(slackIntegrationsColumns, ", "), r.schema)

	var integration models.SlackIntegration
	err := tx.GetTransactional(ctx, r.db).GetContext(ctx, &integration, query)
	if err == sql.ErrNoRows {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get slack integration: %w", err)
	}

	return &integration, nil
}

func (r *PostgresSlackIntegrationsRepository) DeleteAllSlackIntegrations(ctx context.Context) error {
	query := fmt.Sprintf(`DELETE FROM %s.slack_integrations`, r.schema)

	_, err := tx.GetTransactional(ctx, r.db).ExecContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to delete slack integrations: %w", err)
	}

	return nil
}

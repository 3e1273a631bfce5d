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

var jiraIntegrationsColumns = []string{
	"id",
	"base_url",
	"email",
	"api_token",
	"created_at",
	"updated_at",
}

type PostgresJiraIntegrationsRepository struct {
	db     *sqlx.DB
	schema string
}

func NewPostgresJiraIntegrationsRepository(db *sqlx.DB, schema string) *PostgresJiraIntegrationsRepository {
	return &PostgresJiraIntegrationsRepository{db: db, schema: schema}
}

func (r *PostgresJiraIntegrationsRepository) CreateJiraIntegration(
	ctx context.Context,
	integration *models.JiraIntegration,
) error {
	query := fmt.Sprintf(`
		INSERT INTO %s.jira_integrations (id, base_url, email, api_token)
		VALUES ($1, $2, $3, $4)
		RETURNING %s`, r.schema, strings.Join(jiraIntegrationsColumns, ", "))

	err := tx.GetTransactional(ctx, r.db).GetContext(
		ctx, integration, query,
		integration.ID, integration.BaseURL, integration.Email, integration.APIToken)
	if err != nil {
		return fmt.Errorf("failed to create jira integration: %w", err)
	}

	return nil
}

func (r *PostgresJiraIntegrationsRepository) GetLatestJiraIntegration(
	ctx context.Context,
) (*models.JiraIntegration, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.jira_integrations
		ORDER BY created_at DESC
		LIMIT 1`, strings.Join(jiraIntegrationsColumns, ", "), r.schema)

	var integration models.JiraIntegration
	err := tx.GetTransactional(ctx, r.db).GetContext(ctx, &integration, query)
	if err == sql.ErrNoRows {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get jira integration: %w", err)
	}

	return &integration, nil
}

func (r *PostgresJiraIntegrationsRepository) DeleteAllJiraIntegrations(ctx context.Context) error {
	query := fmt.Sprintf(`DELETE FROM %s.jira_integrations`, r.schema)

	_, err := tx.GetTransactional(ctx, r.db).ExecContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to delete jira integrations: %w", err)
	}

	return nil
}

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

var githubIntegrationsColumns = []string{
	"id",
	"access_token",
	"created_at",
	"updated_at",
}

type PostgresGitHubIntegrationsRepository struct {
	db     *sqlx.DB
	schema string
}

func NewPostgresGitHubIntegrationsRepository(db *sqlx.DB, schema string) *PostgresGitHubIntegrationsRepository {
	return &PostgresGitHubIntegrationsRepository{db: db, schema: schema}
}

func (r *PostgresGitHubIntegrationsRepository) CreateGitHubIntegration(
	ctx context.Context,
	integration *models.GitHubIntegration,
) error {
	query := fmt.Sprintf(`
		INSERT INTO %s.github_integrations (id, access_token)
		VALUES ($1, $2)
		RETURNING %s`, r.schema, strings.Join(githubIntegrationsColumns, ", "))

	err := tx.GetTransactional(ctx, r.db).GetContext(
		ctx, integration, query, integration.ID, integration.AccessToken)
	if err != nil {
		return fmt.Errorf("failed to create github integration: %w", err)
	}

	return nil
}

func (r *PostgresGitHubIntegrationsRepository) GetLatestGitHubIntegration(
	ctx context.Context,
) (*models.GitHubIntegration, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.github_integrations
		ORDER BY created_at DESC
		LIMIT 1`, strings.Join(githubIntegrationsColumns, ", "), r.schema)

	var integration models.GitHubIntegration
	err := tx.GetTransactional(ctx, r.db).GetContext(ctx, &integration, query)
	if err == sql.ErrNoRows {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get github integration: %w", err)
	}

	return &integration, nil
}

func (r *PostgresGitHubIntegrationsRepository) DeleteAllGitHubIntegrations(ctx context.Context) error {
	query := fmt.Sprintf(`DELETE FROM %s.github_integrations`, r.schema)

	_, err := tx.GetTransactional(ctx, r.db).ExecContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to delete github integrations: %w", err)
	}

	return nil
}

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

var turnCostsColumns = []string{
	"id",
	"turn_id",
	"input_tokens",
	"output_tokens",
	"estimated_cost_usd",
	"created_at",
	"updated_at",
}

type PostgresTurnCostsRepository struct {
	db     *sqlx.DB
	schema string
}

func NewPostgresTurnCostsRepository(db *sqlx.DB, schema string) *PostgresTurnCostsRepository {
	return &PostgresTurnCostsRepository{db: db, schema: schema}
}

func (r *PostgresTurnCostsRepository) CreateTurnCost(ctx context.Context, cost *models.TurnCost) error {
	query := fmt.Sprintf(`
		INSERT INTO %s.turn_costs (id, turn_id, input_tokens, output_tokens, estimated_cost_usd)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s`, r.schema, strings.Join(turnCostsColumns, ", "))

	err := tx.GetTransactional(ctx, r.db).GetContext(
		ctx, cost, query,
		cost.ID, cost.TurnID, cost.InputTokens, cost.OutputTokens, cost.EstimatedCostUSD)
	if err != nil {
		return fmt.Errorf("failed to create turn cost: %w", err)
	}

	return nil
}

func (r *PostgresTurnCostsRepository) GetTurnCostByTurnID(
	ctx context.Context,
	turnID string,
) (*models.TurnCost, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.turn_costs
		WHERE turn_id = $1`, strings.Join(turnCostsColumns, ", "), r.schema)

	var cost models.TurnCost
	err := tx.GetTransactional(ctx, r.db).GetContext(ctx, &cost, query, turnID)
	if err == sql.ErrNoRows {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get turn cost: %w", err)
	}

	return &cost, nil
}

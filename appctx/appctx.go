package appctx

import (
	"context"

	"agentdock/models"
)

// Context key for storing per-turn options
type contextKey string

const turnOptionsContextKey contextKey = "turn_options"

// SetTurnOptions adds the caller-supplied turn options to the request context
func SetTurnOptions(ctx context.Context, opts *models.TurnOptions) context.Context {
	return context.WithValue(ctx, turnOptionsContextKey, opts)
}

// GetTurnOptions extracts the turn options from the request context
func GetTurnOptions(ctx context.Context) (*models.TurnOptions, bool) {
	opts, ok := ctx.Value(turnOptionsContextKey).(*models.TurnOptions)
	return opts, ok
}

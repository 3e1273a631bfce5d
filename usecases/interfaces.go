package usecases

import (
	"context"

	"agentdock/models"
)

// AgentUseCase is the core contract of the system: one call per chat turn.
// It never returns an error - every failure mode is representable as data
// inside the AggregatedResponse.
type AgentUseCase interface {
	HandleTurn(ctx context.Context, message string, opts *models.TurnOptions) *models.AggregatedResponse
}

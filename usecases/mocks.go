package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"agentdock/models"
)

// MockAgentUseCase is a mock implementation of AgentUseCase
type MockAgentUseCase struct {
	mock.Mock
}

func (m *MockAgentUseCase) HandleTurn(
	ctx context.Context,
	message string,
	opts *models.TurnOptions,
) *models.AggregatedResponse {
	args := m.Called(ctx, message, opts)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*models.AggregatedResponse)
}

package anthropic

import (
	"context"

	"github.com/stretchr/testify/mock"

	"agentdock/clients"
)

// MockLLMClient is a mock implementation of clients.LLMClient
type MockLLMClient struct {
	mock.Mock
}

func (m *MockLLMClient) Complete(
	ctx context.Context,
	systemPrompt, userPrompt string,
) (*clients.LLMCompletion, error) {
	args := m.Called(ctx, systemPrompt, userPrompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.LLMCompletion), args.Error(1)
}

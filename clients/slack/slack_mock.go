package slack

import (
	"context"

	"github.com/stretchr/testify/mock"

	"agentdock/clients"
)

// MockSlackClient is a mock implementation of clients.SlackClient
type MockSlackClient struct {
	mock.Mock
}

func (m *MockSlackClient) AuthTest(ctx context.Context) (*clients.SlackAuthTestResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.SlackAuthTestResponse), args.Error(1)
}

func (m *MockSlackClient) ListChannels(ctx context.Context) ([]clients.SlackChannel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]clients.SlackChannel), args.Error(1)
}

func (m *MockSlackClient) PostMessage(
	ctx context.Context,
	channel, text string,
) (*clients.SlackPostMessageResponse, error) {
	args := m.Called(ctx, channel, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.SlackPostMessageResponse), args.Error(1)
}

func (m *MockSlackClient) GetConversationHistory(
	ctx context.Context,
	channel string,
	limit int,
) ([]clients.SlackMessage, error) {
	args := m.Called(ctx, channel, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]clients.SlackMessage), args.Error(1)
}

package agent

import (
	"context"

	"github.com/stretchr/testify/mock"

	"agentdock/models"
)

// MockIntentClassifier is a mock implementation of IntentClassifier
type MockIntentClassifier struct {
	mock.Mock
}

func (m *MockIntentClassifier) Classify(ctx context.Context, message string) (*models.IntentRecord, Usage) {
	args := m.Called(ctx, message)
	return args.Get(0).(*models.IntentRecord), args.Get(1).(Usage)
}

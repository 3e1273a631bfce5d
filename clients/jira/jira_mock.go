package jira

import (
	"context"

	"github.com/stretchr/testify/mock"

	"agentdock/clients"
)

// MockJiraClient is a mock implementation of clients.JiraClient
type MockJiraClient struct {
	mock.Mock
}

func (m *MockJiraClient) ListProjects(ctx context.Context) ([]clients.JiraProject, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]clients.JiraProject), args.Error(1)
}

func (m *MockJiraClient) ListTickets(
	ctx context.Context,
	query clients.JiraTicketQuery,
) ([]clients.JiraTicket, int, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]clients.JiraTicket), args.Int(1), args.Error(2)
}

func (m *MockJiraClient) GetTicket(ctx context.Context, ticketID string) (*clients.JiraTicket, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.JiraTicket), args.Error(1)
}

func (m *MockJiraClient) CreateTicket(
	ctx context.Context,
	params clients.CreateJiraTicketParams,
) (*clients.JiraTicket, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.JiraTicket), args.Error(1)
}

func (m *MockJiraClient) UpdateTicket(
	ctx context.Context,
	ticketID string,
	params clients.UpdateJiraTicketParams,
) (*clients.JiraTicket, error) {
	args := m.Called(ctx, ticketID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.JiraTicket), args.Error(1)
}

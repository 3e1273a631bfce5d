package slack

import (
	"context"

	"github.com/slack-go/slack"

	"agentdock/clients"
)

// SlackClient implements the clients.SlackClient interface using the
// slack-go/slack SDK
type SlackClient struct {
	*slack.Client
}

// NewSlackClient creates a new Slack client with the provided auth token.
// apiURL may be empty, in which case the public Slack API is used.
func NewSlackClient(authToken, apiURL string) clients.SlackClient {
	var options []slack.Option
	if apiURL != "" {
		options = append(options, slack.OptionAPIURL(apiURL))
	}
	return &SlackClient{
		Client: slack.New(authToken, options...),
	}
}

// AuthTest verifies the bot token and returns information about the bot
func (c *SlackClient) AuthTest(ctx context.Context) (*clients.SlackAuthTestResponse, error) {
	response, err := c.Client.AuthTestContext(ctx)
	if err != nil {
		return nil, err
	}

	return &clients.SlackAuthTestResponse{
		UserID: response.UserID,
		TeamID: response.TeamID,
	}, nil
}

// ListChannels lists public and private channels in the workspace
func (c *SlackClient) ListChannels(ctx context.Context) ([]clients.SlackChannel, error) {
	sdkChannels, _, err := c.Client.GetConversationsContext(ctx, &slack.GetConversationsParameters{
		Types: []string{"public_channel", "private_channel"},
		Limit: 200,
	})
	if err != nil {
		return nil, err
	}

	channels := make([]clients.SlackChannel, 0, len(sdkChannels))
	for _, ch := range sdkChannels {
		channels = append(channels, clients.SlackChannel{
			ID:        ch.ID,
			Name:      ch.Name,
			IsPrivate: ch.IsPrivate,
		})
	}
	return channels, nil
}

// PostMessage sends a message to a Slack channel
func (c *SlackClient) PostMessage(
	ctx context.Context,
	channel, text string,
) (*clients.SlackPostMessageResponse, error) {
	channelID, timestamp, err := c.Client.PostMessageContext(
		ctx,
		channel,
		slack.MsgOptionText(text, false),
	)
	if err != nil {
		return nil, err
	}

	return &clients.SlackPostMessageResponse{
		Channel:   channelID,
		Timestamp: timestamp,
	}, nil
}

// GetConversationHistory fetches the most recent messages in a channel
func (c *SlackClient) GetConversationHistory(
	ctx context.Context,
	channel string,
	limit int,
) ([]clients.SlackMessage, error) {
	response, err := c.Client.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
		ChannelID: channel,
		Limit:     limit,
	})
	if err != nil {
		return nil, err
	}

	messages := make([]clients.SlackMessage, 0, len(response.Messages))
	for _, msg := range response.Messages {
		messages = append(messages, clients.SlackMessage{
			User:      msg.User,
			Timestamp: msg.Timestamp,
			Text:      msg.Text,
		})
	}
	return messages, nil
}

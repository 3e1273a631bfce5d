package agent

import (
	"context"
	"fmt"
	"log"
	"strings"

	"agentdock/clients"
	"agentdock/models"
	"agentdock/utils"
)

const defaultHistoryLimit = 10

func (u *AgentUseCase) executeSlackAction(
	ctx context.Context,
	client clients.SlackClient,
	params models.PlatformParams,
) models.ActionResult {
	action := params.StringParam("action")
	channel := params.StringParam("channel")

	switch action {
	case "list_channels":
		return u.listChannels(ctx, client)

	case "send_message":
		if channel == "" {
			return clarificationResult(models.PlatformSlack, action,
				"I need a channel name or ID to send a message.")
		}
		messageContent := params.StringParam("message_content")
		if messageContent == "" {
			return clarificationResult(models.PlatformSlack, action,
				"I need message content to send to the Slack channel.")
		}
		return u.sendMessage(ctx, client, channel, messageContent)

	case "get_conversation_history":
		if channel == "" {
			return clarificationResult(models.PlatformSlack, action,
				"I need a channel name or ID to get conversation history.")
		}
		limit := params.IntParam("limit")
		if limit <= 0 {
			limit = defaultHistoryLimit
		}
		return u.getConversationHistory(ctx, client, channel, limit)

	default:
		return clarificationResult(models.PlatformSlack, action,
			"I understand you want to perform a Slack action, but I need more information to proceed.")
	}
}

func (u *AgentUseCase) listChannels(ctx context.Context, client clients.SlackClient) models.ActionResult {
	channels, err := client.ListChannels(ctx)
	if err != nil {
		log.Printf("❌ Failed to list Slack channels: %v", err)
		return remoteFailureResult(models.PlatformSlack, "list_channels",
			"I couldn't list your Slack channels because the Slack API call failed.", err)
	}

	if len(channels) == 0 {
		return models.ActionResult{
			Platform:    models.PlatformSlack,
			Action:      "list_channels",
			Success:     true,
			DisplayText: "No channels found in your Slack workspace.",
			RawData:     []clients.SlackChannel{},
		}
	}

	var lines []string
	for _, channel := range channels {
		visibility := "Public"
		if channel.IsPrivate {
			visibility = "Private"
		}
		lines = append(lines, fmt.Sprintf("• #%s (%s) - %s", channel.Name, channel.ID, visibility))
	}

	return models.ActionResult{
		Platform:    models.PlatformSlack,
		Action:      "list_channels",
		Success:     true,
		DisplayText: "Here are the channels in your Slack workspace:\n\n" + strings.Join(lines, "\n"),
		RawData:     channels,
	}
}

func (u *AgentUseCase) sendMessage(
	ctx context.Context,
	client clients.SlackClient,
	channel, text string,
) models.ActionResult {
	// Message bodies may carry markdown, from the classifier or from threaded
	// GitHub data; Slack wants mrkdwn
	posted, err := client.PostMessage(ctx, channel, utils.ConvertMarkdownToSlack(text))
	if err != nil {
		log.Printf("❌ Failed to send Slack message: %v", err)
		return remoteFailureResult(models.PlatformSlack, "send_message", fmt.Sprintf(
			"I couldn't send the message to %s because the Slack API call failed.", channel), err)
	}

	return models.ActionResult{
		Platform:    models.PlatformSlack,
		Action:      "send_message",
		Success:     true,
		DisplayText: fmt.Sprintf("Message successfully sent to %s!", channel),
		RawData:     posted,
	}
}

func (u *AgentUseCase) getConversationHistory(
	ctx context.Context,
	client clients.SlackClient,
	channel string,
	limit int,
) models.ActionResult {
	messages, err := client.GetConversationHistory(ctx, channel, limit)
	if err != nil {
		log.Printf("❌ Failed to get Slack conversation history: %v", err)
		return remoteFailureResult(models.PlatformSlack, "get_conversation_history", fmt.Sprintf(
			"I couldn't read the conversation history of %s because the Slack API call failed.", channel), err)
	}

	if len(messages) == 0 {
		return models.ActionResult{
			Platform:    models.PlatformSlack,
			Action:      "get_conversation_history",
			Success:     true,
			DisplayText: fmt.Sprintf("No messages found in %s.", channel),
			RawData:     []clients.SlackMessage{},
		}
	}

	var blocks []string
	for _, msg := range messages {
		user := msg.User
		if user == "" {
			user = "Unknown"
		}
		blocks = append(blocks, fmt.Sprintf("*%s at %s:*\n%s", user, msg.Timestamp, msg.Text))
	}

	return models.ActionResult{
		Platform: models.PlatformSlack,
		Action:   "get_conversation_history",
		Success:  true,
		DisplayText: fmt.Sprintf(
			"Here are the recent messages in %s:\n\n%s",
			channel, strings.Join(blocks, "\n\n")),
		RawData: messages,
	}
}

package anthropic

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"agentdock/clients"
)

// AnthropicClient implements the clients.LLMClient interface using the
// Anthropic Messages API
type AnthropicClient struct {
	client anthropic.Client
	model  anthropic.Model
}

// NewAnthropicClient creates a new LLM client with the provided API key and model
func NewAnthropicClient(apiKey, model string) clients.LLMClient {
	return &AnthropicClient{
		client: anthropic.NewClient(
			option.WithAPIKey(apiKey),
			option.WithRequestTimeout(60*time.Second),
		),
		model: anthropic.Model(model),
	}
}

// Complete sends one prompt to the model and returns the text of its reply
// along with token usage. Low temperature keeps classification output stable.
func (c *AnthropicClient) Complete(
	ctx context.Context,
	systemPrompt, userPrompt string,
) (*clients.LLMCompletion, error) {
	params := anthropic.MessageNewParams{
		Model:       c.model,
		MaxTokens:   1024,
		Temperature: anthropic.Float(0.1),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	}
	if systemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: systemPrompt}}
	}

	message, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	var sb strings.Builder
	for _, block := range message.Content {
		if variant, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(variant.Text)
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return nil, fmt.Errorf("model returned no text content")
	}

	return &clients.LLMCompletion{
		Text:         text,
		InputTokens:  message.Usage.InputTokens,
		OutputTokens: message.Usage.OutputTokens,
	}, nil
}

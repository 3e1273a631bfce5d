package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"agentdock/clients"
	"agentdock/models"
)

// Usage is the token count consumed by one classifier or synthesis call
type Usage struct {
	InputTokens  int64
	OutputTokens int64
}

func (u Usage) Add(other Usage) Usage {
	return Usage{
		InputTokens:  u.InputTokens + other.InputTokens,
		OutputTokens: u.OutputTokens + other.OutputTokens,
	}
}

// IntentClassifier turns a free-text message into a typed intent record.
// Implementations must always return a usable record - classification
// failures degrade to the conversation fallback, they never error out.
type IntentClassifier interface {
	Classify(ctx context.Context, message string) (*models.IntentRecord, Usage)
}

const classifierSystemPrompt = `You are an intent classifier for a chatbot that handles GitHub, Slack, and Jira operations. Always return valid JSON and nothing else.`

const classifierPromptTemplate = `Analyze this message: %q

Return a JSON object with:
1. "platforms": a list of the platforms to involve, in execution order. Each entry is one of "github", "slack", "jira". Use ["conversation"] for general chat that needs no platform.
2. "confidence": a number between 0 and 1 indicating your confidence.

If "github" is included, add a "github" object with these fields:
- action: one of [list_prs, get_pr_summary, get_stats, create_pr, list_my_repos]
- owner: repository owner (if mentioned)
- repo: repository name (if mentioned)
- pr_number: pull request number (if mentioned)
- pr_title: pull request title (if mentioned)
- pr_body: pull request body (if mentioned)
- pr_head: pull request head branch (if mentioned)
- pr_base: pull request base branch (if mentioned)

If "slack" is included, add a "slack" object with these fields:
- action: one of [list_channels, send_message, get_conversation_history]
- channel: channel name or ID (if mentioned)
- message_content: content of message to send (if explicitly stated, otherwise omit)
- limit: number of history messages to fetch (if mentioned)

If "jira" is included, add a "jira" object with these fields:
- action: one of [list_projects, list_tickets, get_ticket, create_ticket, update_ticket]
- project_key: project key (if mentioned)
- ticket_id: ticket ID or key (if mentioned)
- summary: ticket summary (if mentioned)
- description: ticket description (if mentioned)
- status: ticket status (if mentioned)
- priority: ticket priority (if mentioned)
- assignee: ticket assignee (if mentioned)
- issue_type: issue type (if mentioned)
- labels: ticket labels (if mentioned)

Return ONLY the JSON object, no other text.`

// LLMIntentClassifier classifies messages through a single LLM completion
type LLMIntentClassifier struct {
	llm clients.LLMClient
}

func NewLLMIntentClassifier(llm clients.LLMClient) *LLMIntentClassifier {
	return &LLMIntentClassifier{llm: llm}
}

func (c *LLMIntentClassifier) Classify(ctx context.Context, message string) (*models.IntentRecord, Usage) {
	log.Printf("📋 Starting to classify message intent")

	prompt := fmt.Sprintf(classifierPromptTemplate, message)
	completion, err := c.llm.Complete(ctx, classifierSystemPrompt, prompt)
	if err != nil {
		log.Printf("⚠️ Intent classification failed, falling back to conversation: %v", err)
		return models.ConversationIntent(), Usage{}
	}

	usage := Usage{InputTokens: completion.InputTokens, OutputTokens: completion.OutputTokens}

	record, ok := parseIntentJSON(completion.Text)
	if !ok {
		log.Printf("⚠️ Could not parse classifier output, falling back to conversation")
		return models.ConversationIntent(), usage
	}

	log.Printf(
		"📋 Completed successfully - classified intent: platforms=%v confidence=%.2f",
		record.Platforms,
		record.Confidence,
	)
	return record, usage
}

// parseIntentJSON extracts and validates the intent record from raw LLM text.
// Tolerates surrounding prose and a singular "platform" key; anything
// unusable yields ok=false so the caller can fall back to conversation.
func parseIntentJSON(text string) (*models.IntentRecord, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, false
	}

	var raw struct {
		Platforms  []string              `json:"platforms"`
		Platform   string                `json:"platform"`
		Confidence float64               `json:"confidence"`
		GitHub     models.PlatformParams `json:"github"`
		Slack      models.PlatformParams `json:"slack"`
		Jira       models.PlatformParams `json:"jira"`
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), &raw); err != nil {
		return nil, false
	}

	names := raw.Platforms
	if len(names) == 0 && raw.Platform != "" {
		names = []string{raw.Platform}
	}
	if len(names) == 0 {
		return nil, false
	}

	platforms := make([]models.Platform, 0, len(names))
	for _, name := range names {
		platform := models.Platform(strings.ToLower(strings.TrimSpace(name)))
		if !models.KnownPlatform(platform) {
			log.Printf("⚠️ Classifier named unknown platform %q, skipping", name)
			continue
		}
		platforms = append(platforms, platform)
	}
	if len(platforms) == 0 {
		return nil, false
	}

	confidence := raw.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	params := map[models.Platform]models.PlatformParams{}
	if raw.GitHub != nil {
		params[models.PlatformGitHub] = raw.GitHub
	}
	if raw.Slack != nil {
		params[models.PlatformSlack] = raw.Slack
	}
	if raw.Jira != nil {
		params[models.PlatformJira] = raw.Jira
	}

	return &models.IntentRecord{
		Platforms:  platforms,
		Confidence: confidence,
		Params:     params,
	}, true
}

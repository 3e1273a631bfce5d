package agent

import (
	"context"
	"fmt"
	"log"
	"strings"

	"agentdock/models"
)

// AggregatorModeConcat joins display texts; AggregatorModeSynthesize asks
// the LLM for a single narrative reply over the per-platform analyses.
const (
	AggregatorModeConcat     = "concat"
	AggregatorModeSynthesize = "synthesize"
)

const synthesisSystemPrompt = "You are a helpful assistant that reports on actions taken across " +
	"GitHub, Slack, and Jira. Produce one concise natural-language reply that references every " +
	"platform analysis you are given. Do not invent results that are not in the analyses."

// aggregate reduces the ordered ActionResult sequence into the final
// response. ActionsTaken stays nil when no result carried any payload.
func (u *AgentUseCase) aggregate(
	ctx context.Context,
	message string,
	results []models.ActionResult,
	usage *Usage,
) *models.AggregatedResponse {
	responseText := concatDisplayTexts(results)

	if u.aggregatorMode == AggregatorModeSynthesize {
		if synthesized, ok := u.synthesizeResponse(ctx, message, results, usage); ok {
			responseText = synthesized
		}
	}

	response := &models.AggregatedResponse{ResponseText: responseText}
	if anyResultHasPayload(results) {
		response.ActionsTaken = results
	}
	return response
}

func anyResultHasPayload(results []models.ActionResult) bool {
	for _, result := range results {
		if result.RawData != nil {
			return true
		}
	}
	return false
}

func concatDisplayTexts(results []models.ActionResult) string {
	var fragments []string
	for _, result := range results {
		if result.DisplayText != "" {
			fragments = append(fragments, result.DisplayText)
		}
	}
	return strings.Join(fragments, "\n\n")
}

// synthesizeResponse asks the LLM to merge the per-platform fragments into
// one narrative reply. Any failure falls back to plain concatenation.
func (u *AgentUseCase) synthesizeResponse(
	ctx context.Context,
	message string,
	results []models.ActionResult,
	usage *Usage,
) (string, bool) {
	if len(results) == 0 {
		return "", false
	}

	var analyses strings.Builder
	for _, result := range results {
		if result.DisplayText == "" {
			continue
		}
		fmt.Fprintf(&analyses, "%s analysis (%s):\n%s\n\n", result.Platform, result.Action, result.DisplayText)
	}
	if analyses.Len() == 0 {
		return "", false
	}

	prompt := fmt.Sprintf(
		"User message: %s\n\nPer-platform analyses:\n\n%s\nReply to the user in one coherent message.",
		message, analyses.String())

	completion, err := u.llm.Complete(ctx, synthesisSystemPrompt, prompt)
	if err != nil {
		log.Printf("⚠️ Response synthesis failed, falling back to concatenation: %v", err)
		return "", false
	}

	*usage = usage.Add(Usage{InputTokens: completion.InputTokens, OutputTokens: completion.OutputTokens})

	synthesized := strings.TrimSpace(completion.Text)
	if synthesized == "" {
		return "", false
	}
	return synthesized, true
}

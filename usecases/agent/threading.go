package agent

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"agentdock/clients"
	"agentdock/models"
	"agentdock/utils"
)

const (
	maxThreadedPRs    = 5
	maxThreadedPRBody = 300
)

// needsSlackThreading detects the canonical cross-platform case: GitHub data
// must be fetched first and synthesized into the Slack message body. Only
// applies when the classifier did not already extract explicit message
// content.
func needsSlackThreading(intent *models.IntentRecord) bool {
	if !intent.HasPlatform(models.PlatformGitHub) || !intent.HasPlatform(models.PlatformSlack) {
		return false
	}
	slackParams := intent.ParamsFor(models.PlatformSlack)
	if slackParams.StringParam("action") != "send_message" {
		return false
	}
	return slackParams.StringParam("message_content") == ""
}

// threadGitHubDataIntoSlackParams merges the formatted GitHub result into a
// copy of the Slack params as message_content. Returns ok=false when the
// producing call failed or yielded no usable data, in which case the Slack
// send must be skipped.
func threadGitHubDataIntoSlackParams(
	slackParams models.PlatformParams,
	githubResult *models.ActionResult,
) (models.PlatformParams, bool) {
	if githubResult == nil || !githubResult.Success || githubResult.RawData == nil {
		return nil, false
	}

	messageContent := formatGitHubDataForSlack(githubResult.RawData, githubResult.DisplayText)
	if messageContent == "" {
		return nil, false
	}

	merged := models.PlatformParams{}
	for key, value := range slackParams {
		merged[key] = value
	}
	merged["message_content"] = messageContent

	log.Printf("📋 Threaded GitHub data into Slack message (%d chars)", len(messageContent))
	return merged, true
}

func crossPlatformDataMissingResult(slackParams models.PlatformParams) models.ActionResult {
	return models.ActionResult{
		Platform: models.PlatformSlack,
		Action:   slackParams.StringParam("action"),
		Success:  false,
		DisplayText: "I couldn't complete the cross-platform action: " +
			"the GitHub data needed for the Slack message is missing.",
		Error: &models.ErrorInfo{
			Kind:    models.ErrorKindCrossPlatformDataMissing,
			Message: "cross-platform action could not be completed, data missing",
		},
	}
}

// formatGitHubDataForSlack renders GitHub raw data as a human-readable Slack
// message body. Single pull requests become a summary block, lists become a
// capped bulleted list, anything else falls back to a JSON dump of the data
// (or the original display text when it cannot be marshaled).
func formatGitHubDataForSlack(rawData any, fallbackText string) string {
	switch data := rawData.(type) {
	case *clients.GitHubPullRequest:
		if data == nil {
			return ""
		}
		return formatSinglePRForSlack(data)

	case []clients.GitHubPullRequest:
		if len(data) == 0 {
			return ""
		}
		return formatPRListForSlack(data)

	default:
		dump, err := json.MarshalIndent(rawData, "", "  ")
		if err != nil {
			return fallbackText
		}
		// An empty collection is no usable data, same as an empty PR list
		switch string(dump) {
		case "[]", "{}", "null":
			return ""
		}
		return string(dump)
	}
}

func formatSinglePRForSlack(pr *clients.GitHubPullRequest) string {
	body := pr.Body
	if body == "" {
		body = "No description provided"
	}
	return fmt.Sprintf(
		"*Pull Request #%d: %s*\n"+
			"Repository: %s\n"+
			"Author: %s\n"+
			"Status: %s\n"+
			"Created: %s\n"+
			"%s\n"+
			"%s",
		pr.Number, pr.Title,
		pr.Base.Repo.FullName,
		pr.User.Login,
		pr.State,
		pr.CreatedAt,
		utils.TruncateText(body, maxThreadedPRBody),
		pr.HTMLURL)
}

func formatPRListForSlack(prs []clients.GitHubPullRequest) string {
	shown := prs
	if len(shown) > maxThreadedPRs {
		shown = shown[:maxThreadedPRs]
	}

	var lines []string
	for _, pr := range shown {
		lines = append(lines, fmt.Sprintf(
			"• #%d %s by %s (%s)\n  %s",
			pr.Number, pr.Title, pr.User.Login, pr.State, pr.HTMLURL))
	}

	listing := "*Pull Requests:*\n" + strings.Join(lines, "\n")
	if len(prs) > maxThreadedPRs {
		listing += fmt.Sprintf("\n...and %d more", len(prs)-maxThreadedPRs)
	}
	return listing
}

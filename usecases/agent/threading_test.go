package agent

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agentdock/clients"
	"agentdock/models"
)

func threadingIntent(slackParams models.PlatformParams) *models.IntentRecord {
	return &models.IntentRecord{
		Platforms:  []models.Platform{models.PlatformSlack, models.PlatformGitHub},
		Confidence: 0.8,
		Params: map[models.Platform]models.PlatformParams{
			models.PlatformGitHub: {"action": "list_prs", "owner": "acme", "repo": "widgets"},
			models.PlatformSlack:  slackParams,
		},
	}
}

func TestNeedsSlackThreading(t *testing.T) {
	assert.True(t, needsSlackThreading(threadingIntent(
		models.PlatformParams{"action": "send_message", "channel": "#eng"})))

	// Explicit message content means no threading is needed
	assert.False(t, needsSlackThreading(threadingIntent(
		models.PlatformParams{"action": "send_message", "channel": "#eng", "message_content": "hi"})))

	// Non-send actions never thread
	assert.False(t, needsSlackThreading(threadingIntent(
		models.PlatformParams{"action": "list_channels"})))

	// Slack alone never threads
	assert.False(t, needsSlackThreading(&models.IntentRecord{
		Platforms: []models.Platform{models.PlatformSlack},
		Params: map[models.Platform]models.PlatformParams{
			models.PlatformSlack: {"action": "send_message", "channel": "#eng"},
		},
	}))
}

func TestOrderedPlatforms_ForcesGitHubFirstWhenThreading(t *testing.T) {
	intent := threadingIntent(models.PlatformParams{"action": "send_message", "channel": "#eng"})

	platforms := orderedPlatforms(intent, true)

	assert.Equal(t, []models.Platform{models.PlatformGitHub, models.PlatformSlack}, platforms)
}

func TestOrderedPlatforms_KeepsClassifierOrderOtherwise(t *testing.T) {
	intent := &models.IntentRecord{
		Platforms: []models.Platform{models.PlatformJira, models.PlatformGitHub, models.PlatformSlack},
	}

	platforms := orderedPlatforms(intent, false)

	assert.Equal(t,
		[]models.Platform{models.PlatformJira, models.PlatformGitHub, models.PlatformSlack},
		platforms)
}

func TestThreadGitHubDataIntoSlackParams(t *testing.T) {
	slackParams := models.PlatformParams{"action": "send_message", "channel": "#eng"}

	merged, ok := threadGitHubDataIntoSlackParams(slackParams, &models.ActionResult{
		Platform: models.PlatformGitHub,
		Action:   "get_pr_summary",
		Success:  true,
		RawData:  samplePullRequest(),
	})

	require.True(t, ok)
	assert.Contains(t, merged.StringParam("message_content"), "Fix bug")
	assert.Equal(t, "#eng", merged.StringParam("channel"))

	// The original params are not mutated
	assert.Empty(t, slackParams.StringParam("message_content"))
}

func TestThreadGitHubDataIntoSlackParams_ProducerFailed(t *testing.T) {
	slackParams := models.PlatformParams{"action": "send_message", "channel": "#eng"}

	_, ok := threadGitHubDataIntoSlackParams(slackParams, &models.ActionResult{
		Platform: models.PlatformGitHub,
		Success:  false,
		Error:    &models.ErrorInfo{Kind: models.ErrorKindRemoteAPIFailure},
	})
	assert.False(t, ok)

	_, ok = threadGitHubDataIntoSlackParams(slackParams, nil)
	assert.False(t, ok)

	_, ok = threadGitHubDataIntoSlackParams(slackParams, &models.ActionResult{
		Platform: models.PlatformGitHub,
		Success:  true,
		RawData:  []clients.GitHubPullRequest{},
	})
	assert.False(t, ok)

	// An empty non-PR collection is just as unusable as an empty PR list
	_, ok = threadGitHubDataIntoSlackParams(slackParams, &models.ActionResult{
		Platform: models.PlatformGitHub,
		Action:   "list_my_repos",
		Success:  true,
		RawData:  []clients.GitHubRepository{},
	})
	assert.False(t, ok)
}

func TestFormatGitHubDataForSlack_SinglePR(t *testing.T) {
	text := formatGitHubDataForSlack(samplePullRequest(), "")

	assert.Contains(t, text, "Pull Request #42: Fix bug")
	assert.Contains(t, text, "acme/widgets")
	assert.Contains(t, text, "Author: a")
	assert.Contains(t, text, "open")
	assert.Contains(t, text, "https://x/42")
}

func TestFormatGitHubDataForSlack_TruncatesLongBody(t *testing.T) {
	pr := samplePullRequest()
	pr.Body = strings.Repeat("x", 500)

	text := formatGitHubDataForSlack(pr, "")

	assert.Contains(t, text, strings.Repeat("x", maxThreadedPRBody)+"...")
	assert.NotContains(t, text, strings.Repeat("x", maxThreadedPRBody+1))
}

func TestFormatGitHubDataForSlack_PRListCappedAtFive(t *testing.T) {
	prs := make([]clients.GitHubPullRequest, 7)
	for i := range prs {
		prs[i] = clients.GitHubPullRequest{
			Number:  i + 1,
			Title:   fmt.Sprintf("PR number %d", i+1),
			State:   "open",
			HTMLURL: fmt.Sprintf("https://x/%d", i+1),
			User:    clients.GitHubUser{Login: "a"},
		}
	}

	text := formatGitHubDataForSlack(prs, "")

	assert.Contains(t, text, "PR number 5")
	assert.NotContains(t, text, "PR number 6")
	assert.Contains(t, text, "...and 2 more")
}

func TestFormatGitHubDataForSlack_FallsBackToJSONDump(t *testing.T) {
	text := formatGitHubDataForSlack(map[string]any{"full_name": "acme/widgets", "stars": 3}, "fallback")

	assert.Contains(t, text, `"full_name": "acme/widgets"`)
}

func TestFormatGitHubDataForSlack_EmptyCollectionsYieldNothing(t *testing.T) {
	assert.Empty(t, formatGitHubDataForSlack([]clients.GitHubRepository{}, "fallback"))
	assert.Empty(t, formatGitHubDataForSlack(map[string]any{}, "fallback"))
	assert.Empty(t, formatGitHubDataForSlack(nil, "fallback"))
}

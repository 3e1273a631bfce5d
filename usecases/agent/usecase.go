package agent

import (
	"context"
	"log"

	"agentdock/appctx"
	"agentdock/clients"
	"agentdock/config"
	"agentdock/core"
	"agentdock/models"
	"agentdock/services"
)

const helpMessage = "Hello! I'm your assistant for GitHub, Slack, and Jira. I can help you with:\n" +
	"• GitHub: listing your repositories, checking pull requests, repository statistics, creating pull requests\n" +
	"• Slack: listing channels, sending messages, reading conversation history\n" +
	"• Jira: listing projects and tickets, creating and updating tickets\n\n" +
	"Just ask in plain language, for example 'list all my repositories' or 'send PR #42 from acme/widgets to #eng'."

// GitHubClientFactory builds a GitHub client for one dispatch with the
// stored credential and the resolved endpoint
type GitHubClientFactory func(accessToken, baseURL string) clients.GitHubClient

type SlackClientFactory func(authToken, apiURL string) clients.SlackClient

type JiraClientFactory func(baseURL, email, apiToken string) clients.JiraClient

// AgentUseCase orchestrates one chat turn: classify, dispatch to platform
// adapters, thread cross-platform data, aggregate.
type AgentUseCase struct {
	classifier                IntentClassifier
	llm                       clients.LLMClient
	githubIntegrationsService services.GitHubIntegrationsService
	slackIntegrationsService  services.SlackIntegrationsService
	jiraIntegrationsService   services.JiraIntegrationsService
	turnCostService           services.TurnCostService
	githubClientFactory       GitHubClientFactory
	slackClientFactory        SlackClientFactory
	jiraClientFactory         JiraClientFactory
	endpoints                 config.AdapterEndpoints
	aggregatorMode            string
}

func NewAgentUseCase(
	classifier IntentClassifier,
	llm clients.LLMClient,
	githubIntegrationsService services.GitHubIntegrationsService,
	slackIntegrationsService services.SlackIntegrationsService,
	jiraIntegrationsService services.JiraIntegrationsService,
	turnCostService services.TurnCostService,
	githubClientFactory GitHubClientFactory,
	slackClientFactory SlackClientFactory,
	jiraClientFactory JiraClientFactory,
	endpoints config.AdapterEndpoints,
	aggregatorMode string,
) *AgentUseCase {
	return &AgentUseCase{
		classifier:                classifier,
		llm:                       llm,
		githubIntegrationsService: githubIntegrationsService,
		slackIntegrationsService:  slackIntegrationsService,
		jiraIntegrationsService:   jiraIntegrationsService,
		turnCostService:           turnCostService,
		githubClientFactory:       githubClientFactory,
		slackClientFactory:        slackClientFactory,
		jiraClientFactory:         jiraClientFactory,
		endpoints:                 endpoints,
		aggregatorMode:            aggregatorMode,
	}
}

// HandleTurn processes one chat message end to end. It never returns an
// error: classification failures, missing params, credential problems and
// remote API failures are all folded into the aggregated response.
func (u *AgentUseCase) HandleTurn(
	ctx context.Context,
	message string,
	opts *models.TurnOptions,
) *models.AggregatedResponse {
	turnID := core.NewID("turn")
	log.Printf("📋 Starting to handle turn %s: %s", turnID, message)

	// The HTTP layer may stash per-request options in the context instead of
	// threading them through explicitly
	if opts == nil {
		if ctxOpts, ok := appctx.GetTurnOptions(ctx); ok {
			opts = ctxOpts
		}
	}

	intent, usage := u.classifier.Classify(ctx, message)

	if intent.IsConversation() {
		log.Printf("📋 Turn %s classified as conversation, no adapter dispatch", turnID)
		results := []models.ActionResult{{
			Platform:    models.PlatformConversation,
			Action:      "conversation",
			Success:     true,
			DisplayText: helpMessage,
		}}
		response := u.aggregate(ctx, message, results, &usage)
		u.recordCost(ctx, turnID, usage)
		log.Printf("📋 Completed successfully - turn %s done", turnID)
		return response
	}

	results := u.dispatch(ctx, intent, opts)

	log.Printf("📋 Turn %s aggregating %d action results", turnID, len(results))
	response := u.aggregate(ctx, message, results, &usage)
	u.recordCost(ctx, turnID, usage)

	log.Printf("📋 Completed successfully - turn %s done", turnID)
	return response
}

// dispatch invokes the adapter for each platform in deterministic order.
// Failures are isolated per platform; every invocation yields exactly one
// ActionResult.
func (u *AgentUseCase) dispatch(
	ctx context.Context,
	intent *models.IntentRecord,
	opts *models.TurnOptions,
) []models.ActionResult {
	threading := needsSlackThreading(intent)
	platforms := orderedPlatforms(intent, threading)

	var results []models.ActionResult
	var githubResult *models.ActionResult

	for _, platform := range platforms {
		params := intent.ParamsFor(platform)

		switch platform {
		case models.PlatformGitHub:
			log.Printf("📋 Dispatching to github adapter")
			result := u.dispatchGitHub(ctx, params, opts)
			results = append(results, result)
			githubResult = &results[len(results)-1]

		case models.PlatformSlack:
			log.Printf("📋 Dispatching to slack adapter")
			if threading {
				threaded, ok := threadGitHubDataIntoSlackParams(params, githubResult)
				if !ok {
					results = append(results, crossPlatformDataMissingResult(params))
					continue
				}
				params = threaded
			}
			results = append(results, u.dispatchSlack(ctx, params, opts))

		case models.PlatformJira:
			log.Printf("📋 Dispatching to jira adapter")
			results = append(results, u.dispatchJira(ctx, params, opts))

		default:
			// conversation tags mixed into a multi-platform set carry no action
			continue
		}
	}

	return results
}

// orderedPlatforms returns the dispatch order: the classifier's order when
// given, with GitHub forced ahead of Slack when threading requires its data
func orderedPlatforms(intent *models.IntentRecord, threading bool) []models.Platform {
	seen := map[models.Platform]bool{}
	var platforms []models.Platform
	for _, p := range intent.Platforms {
		if p == models.PlatformConversation || seen[p] {
			continue
		}
		seen[p] = true
		platforms = append(platforms, p)
	}

	if len(platforms) == 0 {
		return nil
	}

	if threading {
		reordered := make([]models.Platform, 0, len(platforms))
		for _, p := range platforms {
			if p == models.PlatformGitHub {
				reordered = append([]models.Platform{p}, reordered...)
			} else {
				reordered = append(reordered, p)
			}
		}
		platforms = reordered
	}

	return platforms
}

func (u *AgentUseCase) dispatchGitHub(
	ctx context.Context,
	params models.PlatformParams,
	opts *models.TurnOptions,
) models.ActionResult {
	integration, err := u.githubIntegrationsService.GetGitHubIntegration(ctx)
	if err != nil {
		log.Printf("❌ Failed to resolve GitHub credential: %v", err)
		return credentialUnavailableResult(models.PlatformGitHub, params.StringParam("action"))
	}
	stored, ok := integration.Get()
	if !ok {
		return credentialUnavailableResult(models.PlatformGitHub, params.StringParam("action"))
	}

	baseURL := u.endpoints.GitHubBaseURL
	if override := opts.EndpointOverride(models.PlatformGitHub); override != "" {
		baseURL = override
	}

	client := u.githubClientFactory(stored.AccessToken, baseURL)
	return u.executeGitHubAction(ctx, client, params)
}

func (u *AgentUseCase) dispatchSlack(
	ctx context.Context,
	params models.PlatformParams,
	opts *models.TurnOptions,
) models.ActionResult {
	integration, err := u.slackIntegrationsService.GetSlackIntegration(ctx)
	if err != nil {
		log.Printf("❌ Failed to resolve Slack credential: %v", err)
		return credentialUnavailableResult(models.PlatformSlack, params.StringParam("action"))
	}
	stored, ok := integration.Get()
	if !ok {
		return credentialUnavailableResult(models.PlatformSlack, params.StringParam("action"))
	}

	apiURL := u.endpoints.SlackBaseURL
	if override := opts.EndpointOverride(models.PlatformSlack); override != "" {
		apiURL = override
	}

	client := u.slackClientFactory(stored.AuthToken, apiURL)
	return u.executeSlackAction(ctx, client, params)
}

func (u *AgentUseCase) dispatchJira(
	ctx context.Context,
	params models.PlatformParams,
	opts *models.TurnOptions,
) models.ActionResult {
	integration, err := u.jiraIntegrationsService.GetJiraIntegration(ctx)
	if err != nil {
		log.Printf("❌ Failed to resolve Jira credential: %v", err)
		return credentialUnavailableResult(models.PlatformJira, params.StringParam("action"))
	}
	stored, ok := integration.Get()
	if !ok {
		return credentialUnavailableResult(models.PlatformJira, params.StringParam("action"))
	}

	baseURL := stored.BaseURL
	if override := opts.EndpointOverride(models.PlatformJira); override != "" {
		baseURL = override
	}

	client := u.jiraClientFactory(baseURL, stored.Email, stored.APIToken)
	return u.executeJiraAction(ctx, client, params)
}

func credentialUnavailableResult(platform models.Platform, action string) models.ActionResult {
	var remediation string
	switch platform {
	case models.PlatformGitHub:
		remediation = "To use GitHub functionality, you need to configure GitHub first. " +
			"Please provide an access token via POST /integrations/github."
	case models.PlatformSlack:
		remediation = "To use Slack functionality, you need to configure Slack first. " +
			"Please provide a bot token via POST /integrations/slack."
	case models.PlatformJira:
		remediation = "To use Jira functionality, you need to configure Jira first. " +
			"Please provide your site URL, email and API token via POST /integrations/jira."
	}

	return models.ActionResult{
		Platform:    platform,
		Action:      action,
		Success:     false,
		DisplayText: remediation,
		Error: &models.ErrorInfo{
			Kind:    models.ErrorKindCredentialUnavailable,
			Message: "no credential configured for " + string(platform),
		},
	}
}

// remoteFailureResult maps an adapter call error onto an ActionResult,
// distinguishing rejected credentials from plain remote failures
func remoteFailureResult(platform models.Platform, action, displayText string, err error) models.ActionResult {
	if apiErr, ok := err.(*clients.APIError); ok {
		if apiErr.IsAuthError() {
			result := credentialUnavailableResult(platform, action)
			result.Error.StatusCode = apiErr.StatusCode
			return result
		}
		return models.ActionResult{
			Platform:    platform,
			Action:      action,
			Success:     false,
			DisplayText: displayText,
			Error: &models.ErrorInfo{
				Kind:       models.ErrorKindRemoteAPIFailure,
				Message:    apiErr.Error(),
				StatusCode: apiErr.StatusCode,
			},
		}
	}

	return models.ActionResult{
		Platform:    platform,
		Action:      action,
		Success:     false,
		DisplayText: displayText,
		Error: &models.ErrorInfo{
			Kind:    models.ErrorKindRemoteAPIFailure,
			Message: err.Error(),
		},
	}
}

func clarificationResult(platform models.Platform, action, question string) models.ActionResult {
	return models.ActionResult{
		Platform:    platform,
		Action:      action,
		Success:     false,
		DisplayText: question,
	}
}

func (u *AgentUseCase) recordCost(ctx context.Context, turnID string, usage Usage) {
	if usage.InputTokens == 0 && usage.OutputTokens == 0 {
		return
	}
	if _, err := u.turnCostService.RecordTurnCost(ctx, turnID, usage.InputTokens, usage.OutputTokens); err != nil {
		log.Printf("⚠️ Failed to record cost for turn %s: %v", turnID, err)
	}
}

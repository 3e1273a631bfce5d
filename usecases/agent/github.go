package agent

import (
	"context"
	"fmt"
	"log"
	"strings"

	"agentdock/clients"
	"agentdock/models"
)

func (u *AgentUseCase) executeGitHubAction(
	ctx context.Context,
	client clients.GitHubClient,
	params models.PlatformParams,
) models.ActionResult {
	action := params.StringParam("action")
	owner := params.StringParam("owner")
	repo := params.StringParam("repo")

	switch action {
	case "list_my_repos":
		return u.listOwnRepositories(ctx, client)

	case "list_prs":
		if owner == "" || repo == "" {
			return clarificationResult(models.PlatformGitHub, action,
				"I need more information about which repository and action you want to perform.")
		}
		return u.listPullRequests(ctx, client, owner, repo)

	case "get_pr_summary":
		prNumber := params.IntParam("pr_number")
		if owner == "" || repo == "" || prNumber == 0 {
			return clarificationResult(models.PlatformGitHub, action,
				"I need more information about which repository and action you want to perform.")
		}
		return u.getPullRequestSummary(ctx, client, owner, repo, prNumber)

	case "get_stats":
		if owner == "" || repo == "" {
			return clarificationResult(models.PlatformGitHub, action,
				"I need more information about which repository and action you want to perform.")
		}
		return u.getRepositoryStats(ctx, client, owner, repo)

	case "create_pr":
		title := params.StringParam("pr_title")
		head := params.StringParam("pr_head")
		if owner == "" || repo == "" || title == "" || head == "" {
			return clarificationResult(models.PlatformGitHub, action,
				"I need a repository, a title and a head branch to create a pull request.")
		}
		return u.createPullRequest(ctx, client, owner, repo, clients.CreatePullRequestParams{
			Title: title,
			Body:  params.StringParam("pr_body"),
			Head:  head,
			Base:  params.StringParam("pr_base"),
		})

	default:
		return clarificationResult(models.PlatformGitHub, action, fmt.Sprintf(
			"I understand you want to %s for %s/%s, but I need more information to proceed.",
			action, owner, repo))
	}
}

func (u *AgentUseCase) listOwnRepositories(ctx context.Context, client clients.GitHubClient) models.ActionResult {
	repos, err := client.ListOwnRepositories(ctx)
	if err != nil {
		log.Printf("❌ Failed to list repositories: %v", err)
		return remoteFailureResult(models.PlatformGitHub, "list_my_repos",
			"I couldn't list your repositories because the GitHub API call failed.", err)
	}

	if len(repos) == 0 {
		return models.ActionResult{
			Platform:    models.PlatformGitHub,
			Action:      "list_my_repos",
			Success:     true,
			DisplayText: "You don't have any repositories yet.",
			RawData:     []clients.GitHubRepository{},
		}
	}

	var lines []string
	for _, r := range repos {
		visibility := "Public"
		if r.Private {
			visibility = "Private"
		}
		description := r.Description
		if description == "" {
			description = "No description"
		}
		lines = append(lines, fmt.Sprintf(
			"• %s (%s) - %s\n  Stars: %d, Forks: %d\n  URL: %s",
			r.Name, visibility, description, r.Stars, r.Forks, r.HTMLURL))
	}

	return models.ActionResult{
		Platform:    models.PlatformGitHub,
		Action:      "list_my_repos",
		Success:     true,
		DisplayText: "Here are your repositories:\n" + strings.Join(lines, "\n"),
		RawData:     repos,
	}
}

func (u *AgentUseCase) listPullRequests(
	ctx context.Context,
	client clients.GitHubClient,
	owner, repo string,
) models.ActionResult {
	prs, err := client.ListPullRequests(ctx, owner, repo)
	if err != nil {
		log.Printf("❌ Failed to list pull requests: %v", err)
		return remoteFailureResult(models.PlatformGitHub, "list_prs", fmt.Sprintf(
			"I couldn't list the pull requests for %s/%s because the GitHub API call failed.",
			owner, repo), err)
	}

	if len(prs) == 0 {
		return models.ActionResult{
			Platform:    models.PlatformGitHub,
			Action:      "list_prs",
			Success:     true,
			DisplayText: fmt.Sprintf("No open pull requests found for %s/%s.", owner, repo),
			RawData:     []clients.GitHubPullRequest{},
		}
	}

	var lines []string
	for _, pr := range prs {
		lines = append(lines, fmt.Sprintf(
			"• #%d - %s by %s\n  Status: %s, Created: %s\n  URL: %s",
			pr.Number, pr.Title, pr.User.Login, pr.State, pr.CreatedAt, pr.HTMLURL))
	}

	return models.ActionResult{
		Platform: models.PlatformGitHub,
		Action:   "list_prs",
		Success:  true,
		DisplayText: fmt.Sprintf(
			"Here are the pull requests for %s/%s:\n\n%s",
			owner, repo, strings.Join(lines, "\n")),
		RawData: prs,
	}
}

func (u *AgentUseCase) getPullRequestSummary(
	ctx context.Context,
	client clients.GitHubClient,
	owner, repo string,
	prNumber int,
) models.ActionResult {
	pr, err := client.GetPullRequest(ctx, owner, repo, prNumber)
	if err != nil {
		log.Printf("❌ Failed to get pull request summary: %v", err)
		return remoteFailureResult(models.PlatformGitHub, "get_pr_summary", fmt.Sprintf(
			"I couldn't get the summary of PR #%d in %s/%s because the GitHub API call failed.",
			prNumber, owner, repo), err)
	}

	body := pr.Body
	if body == "" {
		body = "No description provided"
	}
	summary := fmt.Sprintf(
		"PR #%d: %s\nAuthor: %s\nStatus: %s\nCreated: %s\nDescription: %s\nURL: %s",
		pr.Number, pr.Title, pr.User.Login, strings.ToUpper(pr.State), pr.CreatedAt, body, pr.HTMLURL)

	return models.ActionResult{
		Platform: models.PlatformGitHub,
		Action:   "get_pr_summary",
		Success:  true,
		DisplayText: fmt.Sprintf(
			"Here's the summary of PR #%d in %s/%s:\n\n%s",
			prNumber, owner, repo, summary),
		RawData: pr,
	}
}

func (u *AgentUseCase) getRepositoryStats(
	ctx context.Context,
	client clients.GitHubClient,
	owner, repo string,
) models.ActionResult {
	stats, err := client.GetRepositoryStats(ctx, owner, repo)
	if err != nil {
		log.Printf("❌ Failed to get repository stats: %v", err)
		return remoteFailureResult(models.PlatformGitHub, "get_stats", fmt.Sprintf(
			"I couldn't get the statistics for %s/%s because the GitHub API call failed.",
			owner, repo), err)
	}

	description := stats.Description
	if description == "" {
		description = "No description"
	}
	license := "None"
	if stats.License != nil {
		license = stats.License.Name
	}
	block := fmt.Sprintf(
		"Repository: %s\nDescription: %s\nStars: %d\nForks: %d\nOpen Issues: %d\n"+
			"Default Branch: %s\nLicense: %s\nCreated: %s\nLast Updated: %s\nURL: %s",
		stats.FullName, description, stats.Stars, stats.Forks, stats.OpenIssues,
		stats.DefaultBranch, license, stats.CreatedAt, stats.UpdatedAt, stats.HTMLURL)

	return models.ActionResult{
		Platform: models.PlatformGitHub,
		Action:   "get_stats",
		Success:  true,
		DisplayText: fmt.Sprintf(
			"Here are the statistics for %s/%s:\n\n%s",
			owner, repo, block),
		RawData: stats,
	}
}

func (u *AgentUseCase) createPullRequest(
	ctx context.Context,
	client clients.GitHubClient,
	owner, repo string,
	params clients.CreatePullRequestParams,
) models.ActionResult {
	pr, err := client.CreatePullRequest(ctx, owner, repo, params)
	if err != nil {
		log.Printf("❌ Failed to create pull request: %v", err)
		return remoteFailureResult(models.PlatformGitHub, "create_pr", fmt.Sprintf(
			"I couldn't create the pull request in %s/%s because the GitHub API call failed.",
			owner, repo), err)
	}

	return models.ActionResult{
		Platform: models.PlatformGitHub,
		Action:   "create_pr",
		Success:  true,
		DisplayText: fmt.Sprintf(
			"Created pull request #%d: %s\nURL: %s",
			pr.Number, pr.Title, pr.HTMLURL),
		RawData: pr,
	}
}

package agent

import (
	"context"
	"fmt"
	"log"
	"strings"

	"agentdock/clients"
	"agentdock/models"
)

const maxTicketsShown = 10

func (u *AgentUseCase) executeJiraAction(
	ctx context.Context,
	client clients.JiraClient,
	params models.PlatformParams,
) models.ActionResult {
	action := params.StringParam("action")

	switch action {
	case "list_projects":
		return u.listProjects(ctx, client)

	case "list_tickets":
		projectKey := params.StringParam("project_key")
		if projectKey == "" {
			return clarificationResult(models.PlatformJira, action,
				"I need a project key to list tickets. Please provide one.")
		}
		return u.listTickets(ctx, client, clients.JiraTicketQuery{
			ProjectKey: projectKey,
			Status:     params.StringParam("status"),
			Assignee:   params.StringParam("assignee"),
		})

	case "get_ticket":
		ticketID := params.StringParam("ticket_id")
		if ticketID == "" {
			return clarificationResult(models.PlatformJira, action,
				"I need a ticket ID to get details. Please provide one.")
		}
		return u.getTicket(ctx, client, ticketID)

	case "create_ticket":
		projectKey := params.StringParam("project_key")
		if projectKey == "" {
			return clarificationResult(models.PlatformJira, action,
				"I need a project key to create a ticket. Please provide one.")
		}
		summary := params.StringParam("summary")
		if summary == "" {
			return clarificationResult(models.PlatformJira, action,
				"I need a summary to create a ticket. Please provide one.")
		}
		return u.createTicket(ctx, client, clients.CreateJiraTicketParams{
			ProjectKey:  projectKey,
			Summary:     summary,
			Description: params.StringParam("description"),
			IssueType:   params.StringParam("issue_type"),
			Priority:    params.StringParam("priority"),
			Assignee:    params.StringParam("assignee"),
			Labels:      labelsParam(params),
		})

	case "update_ticket":
		ticketID := params.StringParam("ticket_id")
		if ticketID == "" {
			return clarificationResult(models.PlatformJira, action,
				"I need a ticket ID to update. Please provide one.")
		}
		updates := clients.UpdateJiraTicketParams{
			Summary:     params.StringParam("summary"),
			Description: params.StringParam("description"),
			Status:      params.StringParam("status"),
			Priority:    params.StringParam("priority"),
			Assignee:    params.StringParam("assignee"),
			Labels:      labelsParam(params),
		}
		if !updates.HasUpdates() {
			return clarificationResult(models.PlatformJira, action,
				"I need at least one field to update. Please provide summary, description, status, priority, assignee, or labels.")
		}
		return u.updateTicket(ctx, client, ticketID, updates)

	default:
		return clarificationResult(models.PlatformJira, action, fmt.Sprintf(
			"I understand you want to perform a Jira action (%s), but I need more information to proceed.", action))
	}
}

// labelsParam accepts both a JSON list and a single string for labels
func labelsParam(params models.PlatformParams) []string {
	value, ok := params["labels"]
	if !ok {
		return nil
	}
	switch v := value.(type) {
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	case []any:
		var labels []string
		for _, item := range v {
			if label, ok := item.(string); ok && label != "" {
				labels = append(labels, label)
			}
		}
		return labels
	}
	return nil
}

func (u *AgentUseCase) listProjects(ctx context.Context, client clients.JiraClient) models.ActionResult {
	projects, err := client.ListProjects(ctx)
	if err != nil {
		log.Printf("❌ Failed to list Jira projects: %v", err)
		return remoteFailureResult(models.PlatformJira, "list_projects",
			"I couldn't list your Jira projects because the Jira API call failed.", err)
	}

	if len(projects) == 0 {
		return models.ActionResult{
			Platform:    models.PlatformJira,
			Action:      "list_projects",
			Success:     true,
			DisplayText: "No projects found in your Jira instance.",
			RawData:     []clients.JiraProject{},
		}
	}

	var lines []string
	for _, project := range projects {
		lines = append(lines, fmt.Sprintf(
			"• %s (%s) - %s project", project.Name, project.Key, project.ProjectTypeKey))
	}

	return models.ActionResult{
		Platform:    models.PlatformJira,
		Action:      "list_projects",
		Success:     true,
		DisplayText: "Here are the projects in your Jira instance:\n\n" + strings.Join(lines, "\n"),
		RawData:     projects,
	}
}

func (u *AgentUseCase) listTickets(
	ctx context.Context,
	client clients.JiraClient,
	query clients.JiraTicketQuery,
) models.ActionResult {
	tickets, total, err := client.ListTickets(ctx, query)
	if err != nil {
		log.Printf("❌ Failed to list Jira tickets: %v", err)
		return remoteFailureResult(models.PlatformJira, "list_tickets", fmt.Sprintf(
			"I couldn't list the tickets for project %s because the Jira API call failed.",
			query.ProjectKey), err)
	}

	if len(tickets) == 0 {
		return models.ActionResult{
			Platform:    models.PlatformJira,
			Action:      "list_tickets",
			Success:     true,
			DisplayText: fmt.Sprintf("No tickets found for project %s.", query.ProjectKey),
			RawData:     []clients.JiraTicket{},
		}
	}

	shown := tickets
	if len(shown) > maxTicketsShown {
		shown = shown[:maxTicketsShown]
	}

	var lines []string
	for _, ticket := range shown {
		assignee := ticket.Assignee
		if assignee == "" {
			assignee = "Unassigned"
		}
		lines = append(lines, fmt.Sprintf(
			"• %s: %s\n  Status: %s | Priority: %s | Assignee: %s",
			ticket.Key, ticket.Summary, ticket.Status, ticket.Priority, assignee))
	}

	listing := strings.Join(lines, "\n")
	if total > maxTicketsShown {
		listing += fmt.Sprintf("\n\n...and %d more tickets.", total-maxTicketsShown)
	}

	return models.ActionResult{
		Platform: models.PlatformJira,
		Action:   "list_tickets",
		Success:  true,
		DisplayText: fmt.Sprintf(
			"Here are the tickets for project %s:\n\n%s",
			query.ProjectKey, listing),
		RawData: tickets,
	}
}

func (u *AgentUseCase) getTicket(
	ctx context.Context,
	client clients.JiraClient,
	ticketID string,
) models.ActionResult {
	ticket, err := client.GetTicket(ctx, ticketID)
	if err != nil {
		log.Printf("❌ Failed to get Jira ticket: %v", err)
		return remoteFailureResult(models.PlatformJira, "get_ticket", fmt.Sprintf(
			"I couldn't get the details of ticket %s because the Jira API call failed.", ticketID), err)
	}

	return models.ActionResult{
		Platform: models.PlatformJira,
		Action:   "get_ticket",
		Success:  true,
		DisplayText: fmt.Sprintf(
			"Here are the details for ticket %s:\n\n%s",
			ticketID, formatTicketDetails(ticket)),
		RawData: ticket,
	}
}

func (u *AgentUseCase) createTicket(
	ctx context.Context,
	client clients.JiraClient,
	params clients.CreateJiraTicketParams,
) models.ActionResult {
	ticket, err := client.CreateTicket(ctx, params)
	if err != nil {
		log.Printf("❌ Failed to create Jira ticket: %v", err)
		return remoteFailureResult(models.PlatformJira, "create_ticket", fmt.Sprintf(
			"I couldn't create the ticket in project %s because the Jira API call failed.",
			params.ProjectKey), err)
	}

	return models.ActionResult{
		Platform: models.PlatformJira,
		Action:   "create_ticket",
		Success:  true,
		DisplayText: fmt.Sprintf(
			"Ticket %s created successfully:\n\n%s",
			ticket.Key, formatTicketSummaryLine(ticket)),
		RawData: ticket,
	}
}

func (u *AgentUseCase) updateTicket(
	ctx context.Context,
	client clients.JiraClient,
	ticketID string,
	params clients.UpdateJiraTicketParams,
) models.ActionResult {
	ticket, err := client.UpdateTicket(ctx, ticketID, params)
	if err != nil {
		log.Printf("❌ Failed to update Jira ticket: %v", err)
		return remoteFailureResult(models.PlatformJira, "update_ticket", fmt.Sprintf(
			"I couldn't update ticket %s because the Jira API call failed.", ticketID), err)
	}

	return models.ActionResult{
		Platform: models.PlatformJira,
		Action:   "update_ticket",
		Success:  true,
		DisplayText: fmt.Sprintf(
			"Ticket %s updated successfully:\n\n%s",
			ticketID, formatTicketSummaryLine(ticket)),
		RawData: ticket,
	}
}

func formatTicketDetails(ticket *clients.JiraTicket) string {
	assignee := ticket.Assignee
	if assignee == "" {
		assignee = "Unassigned"
	}
	description := ticket.Description
	if description == "" {
		description = "No description"
	}
	return fmt.Sprintf(
		"**%s: %s**\n\n"+
			"**Project**: %s\n**Status**: %s\n**Type**: %s\n**Priority**: %s\n"+
			"**Assignee**: %s\n**Reporter**: %s\n**Created**: %s\n**Updated**: %s\n\n"+
			"**Description**:\n%s",
		ticket.Key, ticket.Summary, ticket.Project, ticket.Status, ticket.IssueType,
		ticket.Priority, assignee, ticket.Reporter, ticket.Created, ticket.Updated, description)
}

func formatTicketSummaryLine(ticket *clients.JiraTicket) string {
	assignee := ticket.Assignee
	if assignee == "" {
		assignee = "Unassigned"
	}
	return fmt.Sprintf(
		"**%s: %s**\n**Status**: %s | **Priority**: %s | **Assignee**: %s",
		ticket.Key, ticket.Summary, ticket.Status, ticket.Priority, assignee)
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GitHubIntegration holds the stored GitHub credential for this deployment.
// Credentials are injected into adapter calls per turn - there is no
// module-global token state.
type GitHubIntegration struct {
	ID          string    `db:"id"           json:"id"`
	AccessToken string    `db:"access_token" json:"-"`
	CreatedAt   time.Time `db:"created_at"   json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"   json:"updated_at"`
}

// SlackIntegration holds the stored Slack bot credential for this deployment
type SlackIntegration struct {
	ID          string    `db:"id"            json:"id"`
	AuthToken   string    `db:"auth_token"    json:"-"`
	SlackTeamID string    `db:"slack_team_id" json:"slack_team_id"`
	CreatedAt   time.Time `db:"created_at"    json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"    json:"updated_at"`
}

// JiraIntegration holds the stored Jira credential for this deployment
type JiraIntegration struct {
	ID        string    `db:"id"         json:"id"`
	BaseURL   string    `db:"base_url"   json:"base_url"`
	Email     string    `db:"email"      json:"email"`
	APIToken  string    `db:"api_token"  json:"-"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// TurnCost records the estimated LLM spend for one chat turn
type TurnCost struct {
	ID               string          `db:"id"                 json:"id"`
	TurnID           string          `db:"turn_id"            json:"turn_id"`
	InputTokens      int64           `db:"input_tokens"       json:"input_tokens"`
	OutputTokens     int64           `db:"output_tokens"      json:"output_tokens"`
	EstimatedCostUSD decimal.Decimal `db:"estimated_cost_usd" json:"estimated_cost_usd"`
	CreatedAt        time.Time       `db:"created_at"         json:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"         json:"updated_at"`
}

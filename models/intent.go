package models

import (
	"strconv"
	"strings"
)

// Platform identifies a routing target for a classified chat message.
type Platform string

const (
	PlatformGitHub       Platform = "github"
	PlatformSlack        Platform = "slack"
	PlatformJira         Platform = "jira"
	PlatformConversation Platform = "conversation"
)

// KnownPlatform returns true if the given tag is one of the routable platforms
func KnownPlatform(p Platform) bool {
	switch p {
	case PlatformGitHub, PlatformSlack, PlatformJira, PlatformConversation:
		return true
	}
	return false
}

// PlatformParams holds the fields the classifier extracted for one platform,
// e.g. {"owner": "acme", "repo": "widgets", "pr_number": 42}
type PlatformParams map[string]any

// IntentRecord is the typed result of classifying one user message.
// It is created once per turn and never mutated after creation.
type IntentRecord struct {
	// Platforms lists the target platforms in the order the classifier named them
	Platforms  []Platform                  `json:"platforms"`
	Confidence float64                     `json:"confidence"`
	Params     map[Platform]PlatformParams `json:"params,omitempty"`
}

// ConversationIntent is the fallback record used whenever classification fails
func ConversationIntent() *IntentRecord {
	return &IntentRecord{
		Platforms:  []Platform{PlatformConversation},
		Confidence: 0,
	}
}

// IsConversation returns true when no platform dispatch should happen
func (r *IntentRecord) IsConversation() bool {
	if len(r.Platforms) == 0 {
		return true
	}
	for _, p := range r.Platforms {
		if p != PlatformConversation {
			return false
		}
	}
	return true
}

// HasPlatform returns true if the record targets the given platform
func (r *IntentRecord) HasPlatform(platform Platform) bool {
	for _, p := range r.Platforms {
		if p == platform {
			return true
		}
	}
	return false
}

// ParamsFor returns the extracted params for a platform, never nil
func (r *IntentRecord) ParamsFor(platform Platform) PlatformParams {
	if r.Params == nil {
		return PlatformParams{}
	}
	params, ok := r.Params[platform]
	if !ok || params == nil {
		return PlatformParams{}
	}
	return params
}

// StringParam returns the named field as a trimmed string, or "" when absent.
// Numeric values are not converted; use IntParam for those.
func (p PlatformParams) StringParam(name string) string {
	value, ok := p[name]
	if !ok {
		return ""
	}
	str, ok := value.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(str)
}

// IntParam returns the named field as an int, handling both JSON numbers and
// numeric strings, or 0 when absent/unparseable
func (p PlatformParams) IntParam(name string) int {
	value, ok := p[name]
	if !ok {
		return 0
	}
	switch v := value.(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}

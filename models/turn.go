package models

// ErrorKind classifies adapter failures so the aggregation text can
// distinguish them
type ErrorKind string

const (
	ErrorKindCredentialUnavailable    ErrorKind = "credential_unavailable"
	ErrorKindRemoteAPIFailure         ErrorKind = "remote_api_failure"
	ErrorKindCrossPlatformDataMissing ErrorKind = "cross_platform_data_missing"
)

// ErrorInfo describes why an adapter invocation failed.
// Clarification requests (missing params) carry no ErrorInfo at all -
// they are questions to the user, not failures.
type ErrorInfo struct {
	Kind       ErrorKind `json:"kind"`
	Message    string    `json:"message"`
	StatusCode int       `json:"status_code,omitempty"`
}

// ActionResult is the outcome of exactly one adapter invocation during a turn.
// The orchestrator owns these for the duration of the request; they are never
// persisted.
type ActionResult struct {
	Platform    Platform   `json:"platform"`
	Action      string     `json:"action"`
	Success     bool       `json:"success"`
	DisplayText string     `json:"display_text"`
	RawData     any        `json:"result,omitempty"`
	Error       *ErrorInfo `json:"error,omitempty"`
}

// IsClarification returns true for "need more info" results which are
// surfaced to the user as questions rather than failures
func (r *ActionResult) IsClarification() bool {
	return !r.Success && r.Error == nil
}

// AggregatedResponse is the terminal artifact of one chat turn.
// ActionsTaken is nil (not empty) when no result carried any payload,
// signaling "nothing actionable occurred".
type AggregatedResponse struct {
	ResponseText string         `json:"response"`
	ActionsTaken []ActionResult `json:"actions_taken"`
}

// TurnOptions is the optional per-turn context supplied by the caller.
// Endpoint overrides select which adapter instance a platform dispatch
// talks to; absent entries fall back to the configured defaults.
type TurnOptions struct {
	EndpointOverrides map[Platform]string `json:"endpoint_overrides,omitempty"`
}

// EndpointOverride returns the override for a platform, or "" when unset
func (o *TurnOptions) EndpointOverride(platform Platform) string {
	if o == nil || o.EndpointOverrides == nil {
		return ""
	}
	return o.EndpointOverrides[platform]
}

// ChatRequest is the inbound payload of the thin HTTP chat surface
type ChatRequest struct {
	Message string       `json:"message"`
	Context *TurnOptions `json:"context,omitempty"`
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversationIntent(t *testing.T) {
	record := ConversationIntent()

	assert.True(t, record.IsConversation())
	assert.Equal(t, float64(0), record.Confidence)
}

func TestIsConversation(t *testing.T) {
	assert.True(t, (&IntentRecord{}).IsConversation())
	assert.True(t, (&IntentRecord{Platforms: []Platform{PlatformConversation}}).IsConversation())
	assert.False(t, (&IntentRecord{Platforms: []Platform{PlatformGitHub}}).IsConversation())
	assert.False(t, (&IntentRecord{
		Platforms: []Platform{PlatformConversation, PlatformSlack},
	}).IsConversation())
}

func TestParamsFor_NeverNil(t *testing.T) {
	record := &IntentRecord{Platforms: []Platform{PlatformGitHub}}

	params := record.ParamsFor(PlatformGitHub)

	assert.NotNil(t, params)
	assert.Empty(t, params.StringParam("owner"))
}

func TestIntParam(t *testing.T) {
	params := PlatformParams{
		"as_number":   float64(42),
		"as_string":   "42",
		"as_int":      7,
		"padded":      " 42 ",
		"negative":    "-3",
		"not_numeric": "forty-two",
	}

	assert.Equal(t, 42, params.IntParam("as_number"))
	assert.Equal(t, 42, params.IntParam("as_string"))
	assert.Equal(t, 7, params.IntParam("as_int"))
	assert.Equal(t, 42, params.IntParam("padded"))
	assert.Equal(t, -3, params.IntParam("negative"))
	assert.Equal(t, 0, params.IntParam("not_numeric"))
	assert.Equal(t, 0, params.IntParam("absent"))
}

func TestStringParam_TrimsWhitespace(t *testing.T) {
	params := PlatformParams{"channel": "  #eng  ", "count": float64(3)}

	assert.Equal(t, "#eng", params.StringParam("channel"))
	assert.Empty(t, params.StringParam("count"))
	assert.Empty(t, params.StringParam("absent"))
}

func TestIsClarification(t *testing.T) {
	clarification := &ActionResult{Success: false}
	failure := &ActionResult{Success: false, Error: &ErrorInfo{Kind: ErrorKindRemoteAPIFailure}}
	success := &ActionResult{Success: true}

	assert.True(t, clarification.IsClarification())
	assert.False(t, failure.IsClarification())
	assert.False(t, success.IsClarification())
}

func TestEndpointOverride(t *testing.T) {
	var nilOpts *TurnOptions
	assert.Empty(t, nilOpts.EndpointOverride(PlatformGitHub))

	opts := &TurnOptions{EndpointOverrides: map[Platform]string{
		PlatformGitHub: "https://github.internal.example.com",
	}}
	assert.Equal(t, "https://github.internal.example.com", opts.EndpointOverride(PlatformGitHub))
	assert.Empty(t, opts.EndpointOverride(PlatformSlack))
}

package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", TruncateText("short", 10))
	assert.Equal(t, "exact", TruncateText("exact", 5))
	assert.Equal(t, "abc...", TruncateText("abcdef", 3))
}

func TestConvertMarkdownToSlack(t *testing.T) {
	input := "# Heading\n**bold** and [link](https://example.com)"

	result := ConvertMarkdownToSlack(input)

	assert.Contains(t, result, "*Heading*")
	assert.Contains(t, result, "*bold*")
	assert.Contains(t, result, "<https://example.com|link>")
	assert.False(t, strings.Contains(result, "**"))
}

func TestAssertInvariant(t *testing.T) {
	assert.NotPanics(t, func() { AssertInvariant(true, "fine") })
	assert.PanicsWithValue(t, "invariant violated - broken", func() { AssertInvariant(false, "broken") })
}

package utils

import (
	"regexp"
)

func AssertInvariant(condition bool, message string) {
	if !condition {
		panic("invariant violated - " + message)
	}
}

// ConvertMarkdownToSlack rewrites common markdown constructs into Slack's
// mrkdwn flavor. Every outbound Slack message body passes through this
// before posting.
func ConvertMarkdownToSlack(message string) string {
	result := message

	// Markdown links [text](url) become <url|text>; done first so link text
	// is not mangled by the bold conversion below
	linkRegex := regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	result = linkRegex.ReplaceAllString(result, "<$2|$1>")

	// Headings become Slack bold lines, with any embedded **bold** collapsed
	headingRegex := regexp.MustCompile(`(?m)^#+\s*(.+)$`)
	result = headingRegex.ReplaceAllStringFunc(result, func(match string) string {
		content := regexp.MustCompile(`^#+\s*(.+)$`).ReplaceAllString(match, "$1")
		boldRegex := regexp.MustCompile(`\*\*(.+?)\*\*`)
		content = boldRegex.ReplaceAllString(content, "$1")
		return "*" + content + "*"
	})

	// Remaining **text** becomes *text*
	boldRegex := regexp.MustCompile(`\*\*(.+?)\*\*`)
	result = boldRegex.ReplaceAllString(result, "*$1*")

	return result
}

// TruncateText shortens text to at most maxLen runes, appending "..." when
// anything was cut
func TruncateText(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "..."
}

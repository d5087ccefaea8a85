package services

import (
	"regexp"
	"strings"
)

var (
	headingRe    = regexp.MustCompile(`#{1,6}\s*`)
	boldRe       = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe     = regexp.MustCompile(`\*(.*?)\*`)
	bulletRe     = regexp.MustCompile(`(?m)^\s*[*\-•]\s+`)
	blankLinesRe = regexp.MustCompile(`\n{3,}`)
)

// CleanLLMOutput normalizes raw model output: heading markers are stripped,
// bold/italic emphasis collapses to plain text, bullet markers become a single
// canonical "- ", runs of three or more newlines collapse to one blank line,
// and surrounding whitespace is trimmed. Idempotent.
func CleanLLMOutput(text string) string {
	text = headingRe.ReplaceAllString(text, "")
	text = boldRe.ReplaceAllString(text, "$1")
	text = italicRe.ReplaceAllString(text, "$1")
	text = bulletRe.ReplaceAllString(text, "- ")
	text = blankLinesRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

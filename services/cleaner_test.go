package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanLLMOutput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"strips headings", "## Summary\nThe answer.", "Summary\nThe answer."},
		{"unwraps bold", "This is **important** text", "This is important text"},
		{"unwraps italic", "This is *subtle* text", "This is subtle text"},
		{"normalizes star bullets", "* first\n* second", "- first\n- second"},
		{"normalizes unicode bullets", "• first\n• second", "- first\n- second"},
		{"collapses blank lines", "one\n\n\n\n\ntwo", "one\n\ntwo"},
		{"trims whitespace", "  \n answer \n  ", "answer"},
		{"plain text untouched", "just a sentence", "just a sentence"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanLLMOutput(tt.input))
		})
	}
}

func TestCleanLLMOutputIdempotent(t *testing.T) {
	inputs := []string{
		"# Title\n\n\n\n**bold** and *italic*\n* a bullet\n",
		"- already clean\n\ntwo paragraphs",
		"### Deep **nesting** with\n\n\n\n\n• bullets",
	}
	for _, input := range inputs {
		once := CleanLLMOutput(input)
		assert.Equal(t, once, CleanLLMOutput(once))
	}
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectUserMood(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"confused marker", "I'm confused about section 2", "confused"},
		{"not clear phrase", "this is not clear to me", "confused"},
		{"stressed marker", "I'm stuck on this and it's urgent", "stressed"},
		{"curious why", "why does the contract terminate early?", "curious"},
		{"curious explain", "Explain the refund policy", "curious"},
		{"positive marker", "thanks, that was helpful", "positive"},
		{"no markers", "What is the capital of France?", "neutral"},
		{"empty", "", "neutral"},
		{"case folded", "WHY is this section here", "curious"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectUserMood(tt.text))
		})
	}
}

// A query carrying both a confusion marker and a positivity marker must
// classify as confused: the priority order is part of the behavior.
func TestDetectUserMoodPriority(t *testing.T) {
	assert.Equal(t, "confused", DetectUserMood("thanks but I'm confused"))
	assert.Equal(t, "stressed", DetectUserMood("I'm stuck, thanks anyway"))
	assert.Equal(t, "confused", DetectUserMood("I'm confused about why this happens"))
}

func TestMapMoodToResponse(t *testing.T) {
	cfg := MapMoodToResponse("confused")
	assert.Equal(t, "supportive, patient, and simple", cfg.Tone)
	assert.Equal(t, "step-by-step bullet points", cfg.Style)

	cfg = MapMoodToResponse("neutral")
	assert.Equal(t, "professional and clear", cfg.Tone)
	assert.Equal(t, "paragraphs", cfg.Style)

	// Unknown moods fall back to neutral.
	assert.Equal(t, MapMoodToResponse("neutral"), MapMoodToResponse("ecstatic"))
}

package services

import "strings"

// ResponseConfig is the tone/style directive resolved from a detected mood.
type ResponseConfig struct {
	Tone  string
	Style string
}

// Keyword sets checked by DetectUserMood, in priority order. A query matching
// both a confusion marker and a politeness marker is still "confused": urgency
// and clarity issues outrank politeness when shaping the response.
var (
	confusedMarkers = []string{"confused", "not clear", "don't understand"}
	stressedMarkers = []string{"stuck", "frustrated", "urgent"}
	curiousMarkers  = []string{"why", "how", "explain"}
	positiveMarkers = []string{"thanks", "great", "awesome"}
)

// DetectUserMood classifies free-text query tone into one of
// confused, stressed, curious, positive or neutral. First match wins;
// the check order is observable behavior and must not be rearranged.
func DetectUserMood(text string) string {
	text = strings.ToLower(text)

	if containsAny(text, confusedMarkers) {
		return "confused"
	}
	if containsAny(text, stressedMarkers) {
		return "stressed"
	}
	if containsAny(text, curiousMarkers) {
		return "curious"
	}
	if containsAny(text, positiveMarkers) {
		return "positive"
	}
	return "neutral"
}

func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}

var moodResponses = map[string]ResponseConfig{
	"confused": {
		Tone:  "supportive, patient, and simple",
		Style: "step-by-step bullet points",
	},
	"stressed": {
		Tone:  "calm, reassuring, and concise",
		Style: "short bullet points",
	},
	"curious": {
		Tone:  "academic and explanatory",
		Style: "well-structured paragraphs",
	},
	"positive": {
		Tone:  "friendly and engaging",
		Style: "paragraphs",
	},
	"neutral": {
		Tone:  "professional and clear",
		Style: "paragraphs",
	},
}

// MapMoodToResponse resolves the tone/style directive for a mood.
// Unknown moods fall back to the neutral directive.
func MapMoodToResponse(mood string) ResponseConfig {
	if cfg, ok := moodResponses[mood]; ok {
		return cfg
	}
	return moodResponses["neutral"]
}

package services

import "fmt"

// FallbackAnswer is the sentence the model is instructed to return verbatim
// when the document does not cover the question.
const FallbackAnswer = "The document does not contain this information."

const answerPromptTemplate = `You are a document-aware AI assistant.

RULES:
- Use ONLY the provided context
- If answer is missing, say:
  "%s"

User Mood: %s
Response Tone: %s
Response Style: %s

FORMATTING GUIDELINES (IMPORTANT):
- Do NOT write the entire answer in a single paragraph
- Break the answer into multiple short paragraphs
- Each paragraph should explain only ONE idea
- Leave a blank line between paragraphs for readability
- If the style requires bullet points, use clear bullet points
- If the style requires paragraphs, use 2-5 short paragraphs

Context:
%s

Question:
%s`

// BuildAnswerPrompt assembles the single fixed prompt for answer generation:
// context-only instruction, fallback sentence, the resolved mood directive and
// the formatting rules.
func BuildAnswerPrompt(context, question, mood string, cfg ResponseConfig) string {
	return fmt.Sprintf(answerPromptTemplate,
		FallbackAnswer, mood, cfg.Tone, cfg.Style, context, question)
}

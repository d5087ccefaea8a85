package services

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
)

// mapEmbedder returns fixed vectors for known texts. Unknown texts are an
// error so tests notice unexpected embedding calls.
type mapEmbedder struct {
	vectors    map[string][]float32
	textCalls  int
	batchCalls int
}

func (e *mapEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	e.textCalls++
	vec, ok := e.vectors[text]
	if !ok {
		return nil, fmt.Errorf("no fixture vector for %q", text)
	}
	return vec, nil
}

func (e *mapEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	e.batchCalls++
	out := make([][]float32, len(texts))
	for i, text := range texts {
		vec, ok := e.vectors[text]
		if !ok {
			return nil, fmt.Errorf("no fixture vector for %q", text)
		}
		out[i] = vec
	}
	return out, nil
}

// wordEmbedder is a deterministic bag-of-words embedder: texts sharing words
// land near each other, which is enough signal for end-to-end tests without a
// model server.
type wordEmbedder struct {
	textCalls  int
	batchCalls int
}

const wordVecDim = 32

func wordVec(text string) []float32 {
	vec := make([]float32, wordVecDim)
	for _, word := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	}) {
		h := fnv.New32a()
		h.Write([]byte(word))
		vec[h.Sum32()%wordVecDim]++
	}
	return vec
}

func (e *wordEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	e.textCalls++
	return wordVec(text), nil
}

func (e *wordEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	e.batchCalls++
	out := make([][]float32, len(texts))
	for i, text := range texts {
		out[i] = wordVec(text)
	}
	return out, nil
}

// stubCompleter runs a canned completion function and counts invocations.
type stubCompleter struct {
	fn    func(prompt string) (string, error)
	calls int
}

func (c *stubCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	c.calls++
	if c.fn != nil {
		return c.fn(prompt)
	}
	return "stub answer", nil
}

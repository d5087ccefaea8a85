package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "what is this?", NormalizeQuery("  What Is This?  "))
	assert.Equal(t, "", NormalizeQuery("   "))
}

func TestAnswerCache(t *testing.T) {
	cache := NewAnswerCache()

	_, ok := cache.Get("missing")
	assert.False(t, ok)

	cache.Put(NormalizeQuery("  What Is This? "), "an answer")
	answer, ok := cache.Get("what is this?")
	assert.True(t, ok)
	assert.Equal(t, "an answer", answer)
	assert.Equal(t, 1, cache.Len())

	// Differently cased forms of the same question share one entry.
	cache.Put(NormalizeQuery("WHAT IS THIS?"), "an answer")
	assert.Equal(t, 1, cache.Len())
}

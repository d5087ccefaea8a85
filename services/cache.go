package services

import (
	"strings"
	"sync"
)

// AnswerCache memoizes normalized question -> cleaned answer for the lifetime
// of one loaded document session. It is unbounded: acceptable while the scope
// is a single document per process, since the whole cache is discarded on the
// next ingestion.
type AnswerCache struct {
	mu      sync.RWMutex
	answers map[string]string
}

func NewAnswerCache() *AnswerCache {
	return &AnswerCache{answers: make(map[string]string)}
}

func (c *AnswerCache) Get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	answer, ok := c.answers[key]
	return answer, ok
}

func (c *AnswerCache) Put(key, answer string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.answers[key] = answer
}

func (c *AnswerCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.answers)
}

// NormalizeQuery produces the cache key form of a question: trimmed and
// case-folded. The same form is fed to retrieval and generation.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

package models

// Page is one page of extracted text from a source document.
type Page struct {
	Number int
	Text   string
}

// Chunk is the atomic retrieval unit: a slice of page text with its provenance.
// Chunks are never mutated after creation.
type Chunk struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Page   int    `json:"page"` // 0 means unknown
	Source string `json:"source"`
}

// ScoredChunk is a chunk with its similarity score against a query.
// Embedding is the stored vector when the index backend has one; nil otherwise.
type ScoredChunk struct {
	Chunk     Chunk
	Score     float64
	Embedding []float32
}

// DocumentInfo describes the currently loaded document session.
type DocumentInfo struct {
	Source      string `json:"source"`
	Fingerprint string `json:"fingerprint"`
	ChunkCount  int    `json:"chunk_count"`
}

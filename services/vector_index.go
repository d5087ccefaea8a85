package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github/itish2003/pdfchat/models"
)

// VectorIndex is one document's searchable collection of (chunk, embedding)
// pairs. An index is built exactly once per fingerprint; repeat ingestions of
// the same bytes load the persisted copy instead of rebuilding.
type VectorIndex interface {
	// Search returns the top k chunks by cosine similarity to the query
	// vector, best first. Backends that hold vectors in memory attach them to
	// the results; backends that do not leave Embedding nil.
	Search(ctx context.Context, queryVec []float32, k int) ([]models.ScoredChunk, error)

	// Count reports the number of stored chunks.
	Count(ctx context.Context) (int, error)
}

// IndexProvider persists and resolves vector indexes keyed by document
// fingerprint.
type IndexProvider interface {
	// Load returns the persisted index for a fingerprint, if one exists.
	Load(ctx context.Context, fingerprint string) (VectorIndex, bool, error)

	// Build creates, persists and returns a fresh index. Persistence is
	// all-or-nothing: a failed build leaves no index addressable under the
	// fingerprint.
	Build(ctx context.Context, fingerprint string, chunks []models.Chunk, vectors [][]float32) (VectorIndex, error)
}

// CosineSimilarity computes the normalized dot product of two vectors.
// Zero-norm vectors score 0 rather than dividing by zero.
func CosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
	}
	for _, x := range a {
		normA += float64(x) * float64(x)
	}
	for _, y := range b {
		normB += float64(y) * float64(y)
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// indexFileName is the on-disk file inside each fingerprint directory.
const indexFileName = "index.json"

// localIndexFile is the serialized form of a LocalVectorIndex.
type localIndexFile struct {
	Fingerprint string         `json:"fingerprint"`
	CreatedAt   time.Time      `json:"created_at"`
	Chunks      []models.Chunk `json:"chunks"`
	Vectors     [][]float32    `json:"vectors"`
}

// LocalIndexProvider persists indexes as JSON under one directory per
// fingerprint beneath a fixed root, mirroring the layout
// <root>/<fingerprint>/index.json.
type LocalIndexProvider struct {
	root string
}

func NewLocalIndexProvider(root string) *LocalIndexProvider {
	return &LocalIndexProvider{root: root}
}

func (p *LocalIndexProvider) indexPath(fingerprint string) string {
	return filepath.Join(p.root, fingerprint, indexFileName)
}

// Load reads a previously persisted index. The on-disk format is produced only
// by this system, so chunk content is trusted as written.
func (p *LocalIndexProvider) Load(ctx context.Context, fingerprint string) (VectorIndex, bool, error) {
	data, err := os.ReadFile(p.indexPath(fingerprint))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read persisted index: %w", err)
	}

	var file localIndexFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, false, fmt.Errorf("failed to decode persisted index: %w", err)
	}
	log.Printf("INDEX: Loaded existing index for %s (%d chunks)", fingerprint, len(file.Chunks))
	return &LocalVectorIndex{chunks: file.Chunks, vectors: file.Vectors}, true, nil
}

// Build persists the index atomically: the file is written to a temp name and
// renamed into place, so a crash mid-write leaves no index addressable.
func (p *LocalIndexProvider) Build(ctx context.Context, fingerprint string, chunks []models.Chunk, vectors [][]float32) (VectorIndex, error) {
	if len(chunks) != len(vectors) {
		return nil, fmt.Errorf("chunks and vectors length mismatch: %d vs %d", len(chunks), len(vectors))
	}

	dir := filepath.Join(p.root, fingerprint)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create index directory: %w", err)
	}

	data, err := json.Marshal(localIndexFile{
		Fingerprint: fingerprint,
		CreatedAt:   time.Now().UTC(),
		Chunks:      chunks,
		Vectors:     vectors,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode index: %w", err)
	}

	tmp := filepath.Join(dir, indexFileName+".tmp")
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write index: %w", err)
	}
	if err := os.Rename(tmp, p.indexPath(fingerprint)); err != nil {
		os.Remove(tmp)
		return nil, fmt.Errorf("failed to finalize index: %w", err)
	}

	log.Printf("INDEX: Persisted new index for %s (%d chunks)", fingerprint, len(chunks))
	return &LocalVectorIndex{chunks: chunks, vectors: vectors}, nil
}

// LocalVectorIndex is a brute-force cosine index held in memory. Document
// chunk counts stay small enough (one document per session) that exact scan
// beats any approximate structure.
type LocalVectorIndex struct {
	chunks  []models.Chunk
	vectors [][]float32
}

func (idx *LocalVectorIndex) Count(ctx context.Context) (int, error) {
	return len(idx.chunks), nil
}

func (idx *LocalVectorIndex) Search(ctx context.Context, queryVec []float32, k int) ([]models.ScoredChunk, error) {
	if k <= 0 {
		return nil, nil
	}

	results := make([]models.ScoredChunk, len(idx.chunks))
	for i := range idx.chunks {
		results[i] = models.ScoredChunk{
			Chunk:     idx.chunks[i],
			Score:     CosineSimilarity(queryVec, idx.vectors[i]),
			Embedding: idx.vectors[i],
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if k > len(results) {
		k = len(results)
	}
	return results[:k], nil
}

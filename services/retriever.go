package services

import (
	"context"
	"fmt"

	"github/itish2003/pdfchat/models"
)

// Retrieval widths. A pool of candidates is over-fetched by similarity, then
// a smaller diverse subset is selected from it.
const (
	retrieveK      = 6
	retrieveFetchK = 12
	mmrLambda      = 0.5
)

// Retriever wraps a VectorIndex with a maximal-marginal-relevance search:
// instead of pure top-k, candidates are picked greedily to balance relevance
// to the query against redundancy with chunks already selected. Repetitive
// document sections stop flooding the context this way.
type Retriever struct {
	index    VectorIndex
	embedder Embedder
	k        int
	fetchK   int
}

func NewRetriever(index VectorIndex, embedder Embedder) *Retriever {
	return &Retriever{
		index:    index,
		embedder: embedder,
		k:        retrieveK,
		fetchK:   retrieveFetchK,
	}
}

// Retrieve returns up to k chunks relevant to the query, diversity-selected
// from a fetchK-wide candidate pool.
func (r *Retriever) Retrieve(ctx context.Context, query string) ([]models.Chunk, error) {
	queryVec, err := r.embedder.EmbedText(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	candidates, err := r.index.Search(ctx, queryVec, r.fetchK)
	if err != nil {
		return nil, fmt.Errorf("failed to search index: %w", err)
	}
	if err := r.fillEmbeddings(ctx, candidates); err != nil {
		return nil, err
	}

	selected := selectMMR(queryVec, candidates, r.k, mmrLambda)
	chunks := make([]models.Chunk, len(selected))
	for i, s := range selected {
		chunks[i] = s.Chunk
	}
	return chunks, nil
}

// fillEmbeddings backfills candidate vectors for index backends that do not
// return stored embeddings with their search results.
func (r *Retriever) fillEmbeddings(ctx context.Context, candidates []models.ScoredChunk) error {
	var missing []int
	for i := range candidates {
		if candidates[i].Embedding == nil {
			missing = append(missing, i)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	texts := make([]string, len(missing))
	for i, idx := range missing {
		texts[i] = candidates[idx].Chunk.Text
	}
	vectors, err := r.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to embed candidates: %w", err)
	}
	for i, idx := range missing {
		candidates[idx].Embedding = vectors[i]
	}
	return nil
}

// selectMMR greedily picks k candidates maximizing
// lambda*sim(query, c) - (1-lambda)*max sim(c, already selected).
func selectMMR(queryVec []float32, candidates []models.ScoredChunk, k int, lambda float64) []models.ScoredChunk {
	if len(candidates) == 0 {
		return nil
	}
	if k > len(candidates) {
		k = len(candidates)
	}

	relevance := make([]float64, len(candidates))
	for i := range candidates {
		relevance[i] = CosineSimilarity(queryVec, candidates[i].Embedding)
	}

	var selected []models.ScoredChunk
	var selectedVecs [][]float32
	picked := make([]bool, len(candidates))

	for len(selected) < k {
		best := -1
		bestScore := 0.0
		for i := range candidates {
			if picked[i] {
				continue
			}
			redundancy := 0.0
			for _, vec := range selectedVecs {
				if sim := CosineSimilarity(candidates[i].Embedding, vec); sim > redundancy {
					redundancy = sim
				}
			}
			score := lambda*relevance[i] - (1-lambda)*redundancy
			if best == -1 || score > bestScore {
				best = i
				bestScore = score
			}
		}
		picked[best] = true
		candidates[best].Score = relevance[best]
		selected = append(selected, candidates[best])
		selectedVecs = append(selectedVecs, candidates[best].Embedding)
	}
	return selected
}

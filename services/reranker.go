package services

import (
	"context"
	"fmt"
	"sort"

	"github/itish2003/pdfchat/models"
)

// rerankTopN is how many chunks survive the rerank pass.
const rerankTopN = 3

// Reranker re-scores retrieved candidates with an exact cosine pass. It
// embeds the query and every candidate text afresh, independent of whatever
// the index computed internally: the retriever trades relevance for diversity,
// and this second pass corrects the ordering before the context is built.
type Reranker struct {
	embedder Embedder
}

func NewReranker(embedder Embedder) *Reranker {
	return &Reranker{embedder: embedder}
}

// Rerank keeps the top chunks by descending cosine similarity to the query.
// Ties keep their original order (stable sort). Fewer than rerankTopN inputs
// are returned as-is, reordered.
func (r *Reranker) Rerank(ctx context.Context, query string, chunks []models.Chunk) ([]models.Chunk, error) {
	if len(chunks) == 0 {
		return nil, nil
	}

	queryVec, err := r.embedder.EmbedText(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query for rerank: %w", err)
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}
	vectors, err := r.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to embed candidates for rerank: %w", err)
	}

	scored := make([]models.ScoredChunk, len(chunks))
	for i := range chunks {
		scored[i] = models.ScoredChunk{
			Chunk: chunks[i],
			Score: CosineSimilarity(queryVec, vectors[i]),
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	n := rerankTopN
	if n > len(scored) {
		n = len(scored)
	}
	top := make([]models.Chunk, n)
	for i := 0; i < n; i++ {
		top[i] = scored[i].Chunk
	}
	return top, nil
}

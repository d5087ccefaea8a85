package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	chromago "github.com/amikos-tech/chroma-go/pkg/api/v2"
	"github.com/amikos-tech/chroma-go/pkg/embeddings"

	"github/itish2003/pdfchat/models"
)

// ChromaIndexProvider keeps one Chroma collection per document fingerprint.
// Persistence is the Chroma server's concern; the identity contract is the
// collection name derived from the fingerprint.
type ChromaIndexProvider struct {
	client chromago.Client
}

func NewChromaIndexProvider(client chromago.Client) *ChromaIndexProvider {
	return &ChromaIndexProvider{client: client}
}

// collectionName derives the Chroma collection name for a fingerprint.
// Chroma caps collection names at 63 characters, so only the first 128 bits
// of the digest are used.
func collectionName(fingerprint string) string {
	if len(fingerprint) > 32 {
		fingerprint = fingerprint[:32]
	}
	return "doc-" + fingerprint
}

func (p *ChromaIndexProvider) collection(ctx context.Context, fingerprint string) (chromago.Collection, error) {
	return p.client.GetOrCreateCollection(
		ctx,
		collectionName(fingerprint),
		chromago.WithCollectionMetadataCreate(
			chromago.NewMetadata(
				chromago.NewStringAttribute("fingerprint", fingerprint),
				chromago.NewStringAttribute("created_by", "pdfchat"),
			),
		),
	)
}

// Load treats a non-empty collection as a previously built index. An empty
// collection (the side effect of a get-or-create probe) counts as absent.
func (p *ChromaIndexProvider) Load(ctx context.Context, fingerprint string) (VectorIndex, bool, error) {
	collection, err := p.collection(ctx, fingerprint)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get or create collection: %w", err)
	}
	count, err := collection.Count(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to count items in collection: %w", err)
	}
	if count == 0 {
		return nil, false, nil
	}
	log.Printf("INDEX: Reusing chroma collection %s (%d chunks)", collectionName(fingerprint), count)
	return &ChromaVectorIndex{collection: collection}, true, nil
}

// Build inserts every chunk with its embedding. On any insertion failure the
// chunks written so far are removed again, so a half-built collection is never
// left addressable as an index.
func (p *ChromaIndexProvider) Build(ctx context.Context, fingerprint string, chunks []models.Chunk, vectors [][]float32) (VectorIndex, error) {
	if len(chunks) != len(vectors) {
		return nil, fmt.Errorf("chunks and vectors length mismatch: %d vs %d", len(chunks), len(vectors))
	}

	collection, err := p.collection(ctx, fingerprint)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create collection: %w", err)
	}

	for i, chunk := range chunks {
		embedding := embeddings.NewEmbeddingFromFloat32(vectors[i])
		metadata := chromago.NewDocumentMetadata(
			chromago.NewStringAttribute("chunk_id", chunk.ID),
			chromago.NewStringAttribute("source", chunk.Source),
			chromago.NewStringAttribute("fingerprint", fingerprint),
			chromago.NewIntAttribute("page", int64(chunk.Page)),
		)
		err = collection.Add(ctx,
			chromago.WithIDs(chromago.DocumentID(chunk.ID)),
			chromago.WithTexts(chunk.Text),
			chromago.WithEmbeddings(embedding),
			chromago.WithMetadatas(metadata),
		)
		if err != nil {
			if cleanErr := collection.Delete(ctx, chromago.WithWhereDelete(chromago.EqString("fingerprint", fingerprint))); cleanErr != nil {
				log.Printf("INDEX WARN: cleanup after failed build: %v", cleanErr)
			}
			return nil, fmt.Errorf("failed to add chunk %d to chromadb: %w", i, err)
		}
	}

	log.Printf("INDEX: Built chroma collection %s (%d chunks)", collectionName(fingerprint), len(chunks))
	return &ChromaVectorIndex{collection: collection}, nil
}

// ChromaVectorIndex answers similarity queries against one collection.
// Query results carry no stored vectors; the retriever re-embeds candidates
// when it needs them.
type ChromaVectorIndex struct {
	collection chromago.Collection
}

func (idx *ChromaVectorIndex) Count(ctx context.Context) (int, error) {
	count, err := idx.collection.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count items in collection: %w", err)
	}
	return int(count), nil
}

func (idx *ChromaVectorIndex) Search(ctx context.Context, queryVec []float32, k int) ([]models.ScoredChunk, error) {
	// Chroma rejects queries asking for more results than the collection
	// holds, so clamp first.
	count, err := idx.Count(ctx)
	if err != nil {
		return nil, err
	}
	if k > count {
		k = count
	}
	if k == 0 {
		return nil, nil
	}

	embedding := embeddings.NewEmbeddingFromFloat32(queryVec)

	results, err := idx.collection.Query(
		ctx,
		chromago.WithQueryEmbeddings(embedding),
		chromago.WithNResults(k),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query chromadb: %w", err)
	}

	var scored []models.ScoredChunk
	documentGroups := results.GetDocumentsGroups()
	metadataGroups := results.GetMetadatasGroups()

	if len(documentGroups) > 0 {
		for i, doc := range documentGroups[0] {
			if doc.ContentString() == "" {
				continue
			}
			chunk := models.Chunk{Text: doc.ContentString()}
			if len(metadataGroups) > 0 && i < len(metadataGroups[0]) {
				applyChunkMetadata(&chunk, metadataGroups[0][i])
			}
			scored = append(scored, models.ScoredChunk{Chunk: chunk})
		}
	}
	return scored, nil
}

// applyChunkMetadata restores chunk provenance from a Chroma document
// metadata. The DocumentMetadata struct exposes no map accessor, so it is
// round-tripped through JSON.
func applyChunkMetadata(chunk *models.Chunk, metadata chromago.DocumentMetadata) {
	if metadata == nil {
		return
	}
	jsonBytes, err := json.Marshal(metadata)
	if err != nil {
		log.Printf("INDEX WARN: could not marshal metadata for document: %v", err)
		return
	}
	var metadataMap map[string]interface{}
	if err := json.Unmarshal(jsonBytes, &metadataMap); err != nil {
		log.Printf("INDEX WARN: could not unmarshal metadata for document: %v", err)
		return
	}
	if id, ok := metadataMap["chunk_id"].(string); ok {
		chunk.ID = id
	}
	if source, ok := metadataMap["source"].(string); ok {
		chunk.Source = source
	}
	if page, ok := metadataMap["page"].(float64); ok {
		chunk.Page = int(page)
	}
}

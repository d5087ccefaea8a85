package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github/itish2003/pdfchat/models"
)

// User-facing fixed responses. Internal failures never leak past these.
const (
	NoDocumentMessage = "Please upload and process a PDF first."
	QueryErrorMessage = "An error occurred while processing your question."
)

// RAGService interface defines the two operations exposed to the request layer.
type RAGService interface {
	// ProcessDocument makes the document at path queryable: fingerprint,
	// index reuse or build, retriever attachment, fresh answer cache.
	ProcessDocument(ctx context.Context, path string) error

	// AskQuestion answers a question against the currently loaded document.
	// Expected states (no document yet) and internal failures both come back
	// as fixed answer strings, never as raw errors.
	AskQuestion(ctx context.Context, question string) (string, error)

	// Status reports the active document session, or ErrNoDocumentLoaded
	// when none is loaded.
	Status(ctx context.Context) (*models.DocumentInfo, error)
}

// ragServiceImpl holds one active document session: one index, one retriever,
// one answer cache, each wholly replaced by the next ingestion. The mutex
// serializes ProcessDocument and AskQuestion so a query can never observe a
// half-swapped session.
type ragServiceImpl struct {
	embedder Embedder
	llm      Completer
	provider IndexProvider

	mu        sync.Mutex
	index     VectorIndex
	retriever *Retriever
	reranker  *Reranker
	cache     *AnswerCache
	info      *models.DocumentInfo
}

// NewRAGService creates a new RAG service instance.
func NewRAGService(embedder Embedder, llm Completer, provider IndexProvider) RAGService {
	return &ragServiceImpl{
		embedder: embedder,
		llm:      llm,
		provider: provider,
		reranker: NewReranker(embedder),
	}
}

// ProcessDocument implements RAGService.
func (r *ragServiceImpl) ProcessDocument(ctx context.Context, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	log.Printf("SERVICE: Processing document: %s", path)

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrDocumentNotFound, path)
		}
		return fmt.Errorf("failed to stat document: %w", err)
	}

	fingerprint, err := HashFile(path)
	if err != nil {
		log.Printf("SERVICE ERROR: Could not fingerprint %s: %v", path, err)
		return fmt.Errorf("failed to fingerprint document: %w", err)
	}

	index, ok, err := r.provider.Load(ctx, fingerprint)
	if err != nil {
		log.Printf("SERVICE ERROR: Could not load index for %s: %v", fingerprint, err)
		return fmt.Errorf("failed to load persisted index: %w", err)
	}
	if !ok {
		index, err = r.buildIndex(ctx, path, fingerprint)
		if err != nil {
			log.Printf("SERVICE ERROR: Could not build index for %s: %v", path, err)
			return err
		}
	}

	count, err := index.Count(ctx)
	if err != nil {
		log.Printf("SERVICE ERROR: Could not count chunks for %s: %v", fingerprint, err)
		return fmt.Errorf("failed to inspect index: %w", err)
	}

	// Swap in the new session. The previous index, retriever and cache are
	// discarded together.
	r.index = index
	r.retriever = NewRetriever(index, r.embedder)
	r.cache = NewAnswerCache()
	r.info = &models.DocumentInfo{
		Source:      filepath.Base(path),
		Fingerprint: fingerprint,
		ChunkCount:  count,
	}

	log.Printf("SERVICE: Document ready: %s (%d chunks)", r.info.Source, count)
	return nil
}

func (r *ragServiceImpl) buildIndex(ctx context.Context, path, fingerprint string) (VectorIndex, error) {
	pages, err := ExtractPages(path)
	if err != nil {
		return nil, fmt.Errorf("failed to extract document text: %w", err)
	}

	chunks, err := SplitPages(pages, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("failed to chunk document: %w", err)
	}
	if len(chunks) == 0 {
		return nil, fmt.Errorf("document contains no extractable text")
	}
	log.Printf("SERVICE: Split %s into %d chunks", path, len(chunks))

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}
	vectors, err := r.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to embed chunks: %w", err)
	}

	index, err := r.provider.Build(ctx, fingerprint, chunks, vectors)
	if err != nil {
		return nil, fmt.Errorf("failed to persist index: %w", err)
	}
	return index, nil
}

// AskQuestion implements RAGService.
func (r *ragServiceImpl) AskQuestion(ctx context.Context, question string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.retriever == nil {
		return NoDocumentMessage, nil
	}

	normalized := NormalizeQuery(question)
	if answer, ok := r.cache.Get(normalized); ok {
		log.Printf("SERVICE: Cache hit for question")
		return answer, nil
	}

	answer, err := r.answer(ctx, question, normalized)
	if err != nil {
		log.Printf("SERVICE ERROR: Query failed: %v", err)
		return QueryErrorMessage, nil
	}

	r.cache.Put(normalized, answer)
	return answer, nil
}

func (r *ragServiceImpl) answer(ctx context.Context, question, normalized string) (string, error) {
	chunks, err := r.retriever.Retrieve(ctx, normalized)
	if err != nil {
		return "", err
	}

	chunks, err = r.reranker.Rerank(ctx, normalized, chunks)
	if err != nil {
		return "", err
	}

	// Mood comes from the original question text; retrieval and generation
	// use the normalized form.
	mood := DetectUserMood(question)
	cfg := MapMoodToResponse(mood)

	prompt := BuildAnswerPrompt(FormatContext(chunks), normalized, mood, cfg)
	raw, err := r.llm.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	return CleanLLMOutput(raw), nil
}

// Status implements RAGService.
func (r *ragServiceImpl) Status(ctx context.Context) (*models.DocumentInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.info == nil {
		return nil, ErrNoDocumentLoaded
	}
	info := *r.info
	return &info, nil
}

// FormatContext joins reranked chunks into the single context block the
// prompt embeds, each chunk prefixed by its page number.
func FormatContext(chunks []models.Chunk) string {
	blocks := make([]string, len(chunks))
	for i, chunk := range chunks {
		page := "N/A"
		if chunk.Page > 0 {
			page = strconv.Itoa(chunk.Page)
		}
		blocks[i] = fmt.Sprintf("[Page %s]\n%s", page, chunk.Text)
	}
	return strings.Join(blocks, "\n\n")
}

// IsExpectedState reports whether an error marks an expected non-fault state
// rather than a genuine failure.
func IsExpectedState(err error) bool {
	return errors.Is(err, ErrNoDocumentLoaded)
}

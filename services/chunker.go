package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/textsplitter"

	"github/itish2003/pdfchat/models"
)

// Chunking constants. Fixed by design, not tunable per call.
const (
	chunkSize    = 800
	chunkOverlap = 150
)

// SplitPages turns extracted pages into overlapping chunks carrying page and
// source provenance. Empty pages produce no chunks.
func SplitPages(pages []models.Page, source string) ([]models.Chunk, error) {
	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(chunkSize),
		textsplitter.WithChunkOverlap(chunkOverlap),
	)

	var chunks []models.Chunk
	for _, page := range pages {
		if strings.TrimSpace(page.Text) == "" {
			continue
		}
		pieces, err := splitter.SplitText(page.Text)
		if err != nil {
			return nil, fmt.Errorf("failed to split page %d: %w", page.Number, err)
		}
		for i, piece := range pieces {
			chunks = append(chunks, models.Chunk{
				ID:     fmt.Sprintf("%s-chunk%d", uuid.New().String(), i),
				Text:   piece,
				Page:   page.Number,
				Source: source,
			})
		}
	}
	return chunks, nil
}

package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github/itish2003/pdfchat/models"
)

func TestSplitPagesAttachesProvenance(t *testing.T) {
	pages := []models.Page{
		{Number: 1, Text: "short first page"},
		{Number: 2, Text: strings.Repeat("sentence about topic two. ", 60)},
	}

	chunks, err := SplitPages(pages, "report.pdf")
	require.NoError(t, err)
	require.NotEmpty(t, chunks)

	sawPageTwo := false
	for _, chunk := range chunks {
		assert.Equal(t, "report.pdf", chunk.Source)
		assert.NotEmpty(t, chunk.ID)
		assert.NotEmpty(t, chunk.Text)
		if chunk.Page == 2 {
			sawPageTwo = true
		}
	}
	assert.True(t, sawPageTwo)

	// The long page exceeds one chunk length and must split.
	assert.Greater(t, len(chunks), 2)
}

func TestSplitPagesSkipsEmptyPages(t *testing.T) {
	pages := []models.Page{
		{Number: 1, Text: "   \n  "},
		{Number: 2, Text: "content"},
	}

	chunks, err := SplitPages(pages, "doc.pdf")
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, 2, chunks[0].Page)
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPagesPlainText(t *testing.T) {
	path := writeTempFile(t, "notes.txt", "line one\nline two")

	pages, err := ExtractPages(path)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, 1, pages[0].Number)
	assert.Equal(t, "line one\nline two", pages[0].Text)
}

func TestExtractPagesMarkdown(t *testing.T) {
	path := writeTempFile(t, "notes.md", "# Heading\nbody")

	pages, err := ExtractPages(path)
	require.NoError(t, err)
	require.Len(t, pages, 1)
}

func TestExtractPagesUnsupported(t *testing.T) {
	path := writeTempFile(t, "image.png", "not really an image")

	_, err := ExtractPages(path)
	assert.ErrorIs(t, err, ErrUnsupportedFile)
}

func TestIsSupportedFile(t *testing.T) {
	assert.True(t, IsSupportedFile("report.PDF"))
	assert.True(t, IsSupportedFile("notes.txt"))
	assert.True(t, IsSupportedFile("readme.md"))
	assert.False(t, IsSupportedFile("archive.zip"))
	assert.False(t, IsSupportedFile("noextension"))
}

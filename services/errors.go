package services

import "errors"

var (
	// ErrDocumentNotFound means the ingestion path does not resolve to a
	// readable file. Nothing has changed when it is returned.
	ErrDocumentNotFound = errors.New("document file not found")

	// ErrNoDocumentLoaded marks the expected "nothing ingested yet" state.
	// It is not a fault: AskQuestion answers it with a guidance message and
	// it never crosses the HTTP boundary.
	ErrNoDocumentLoaded = errors.New("no document loaded")

	// ErrUnsupportedFile is returned for extensions the extractor cannot handle.
	ErrUnsupportedFile = errors.New("unsupported file type")
)

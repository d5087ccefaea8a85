package models

// ProcessDocumentRequest matches the payload the upload server sends once it
// has materialized the file on local disk.
type ProcessDocumentRequest struct {
	Filename string `json:"filename"`
	FilePath string `json:"filePath" binding:"required"`
}

type QuestionRequest struct {
	Question string `json:"question" binding:"required"`
}

package models

type ProcessDocumentResponse struct {
	Status   string `json:"status"`
	Filename string `json:"filename,omitempty"`
	Error    string `json:"error,omitempty"`
}

type AnswerResponse struct {
	Answer string `json:"answer"`
	Error  string `json:"error,omitempty"`
}

// StatusResponse reports the active document session, if any.
type StatusResponse struct {
	Loaded   bool          `json:"loaded"`
	Document *DocumentInfo `json:"document,omitempty"`
}

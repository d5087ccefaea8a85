package models

// OllamaEmbedRequest is used to structure a single-text request to the Ollama
// /api/embeddings endpoint.
type OllamaEmbedRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

// OllamaEmbedResponse is used to parse the embedding from the Ollama API response.
type OllamaEmbedResponse struct {
	Embedding []float32 `json:"embedding"`
}

// OllamaBatchEmbedRequest is the batch form accepted by /api/embed.
type OllamaBatchEmbedRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type OllamaBatchEmbedResponse struct {
	Embeddings [][]float32 `json:"embeddings"`
}

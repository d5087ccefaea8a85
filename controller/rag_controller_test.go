package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github/itish2003/pdfchat/models"
	"github/itish2003/pdfchat/services"
)

// stubRAGService implements services.RAGService with canned behavior.
type stubRAGService struct {
	processErr error
	answer     string
	info       *models.DocumentInfo
}

func (s *stubRAGService) ProcessDocument(ctx context.Context, path string) error {
	return s.processErr
}

func (s *stubRAGService) AskQuestion(ctx context.Context, question string) (string, error) {
	return s.answer, nil
}

func (s *stubRAGService) Status(ctx context.Context) (*models.DocumentInfo, error) {
	if s.info == nil {
		return nil, services.ErrNoDocumentLoaded
	}
	return s.info, nil
}

func newRouter(svc services.RAGService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewRAGController(svc)
	router.POST("/api/v1/documents", ctrl.ProcessDocument)
	router.POST("/api/v1/query", ctrl.AskQuestion)
	router.GET("/api/v1/status", ctrl.Status)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestProcessDocumentSuccess(t *testing.T) {
	router := newRouter(&stubRAGService{})

	rec := doJSON(t, router, http.MethodPost, "/api/v1/documents",
		models.ProcessDocumentRequest{Filename: "doc.pdf", FilePath: "/tmp/doc.pdf"})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.ProcessDocumentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "doc.pdf", resp.Filename)
}

func TestProcessDocumentMissingFile(t *testing.T) {
	router := newRouter(&stubRAGService{processErr: services.ErrDocumentNotFound})

	rec := doJSON(t, router, http.MethodPost, "/api/v1/documents",
		models.ProcessDocumentRequest{FilePath: "/tmp/missing.pdf"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProcessDocumentBadBody(t *testing.T) {
	router := newRouter(&stubRAGService{})

	// filePath is required by the binding.
	rec := doJSON(t, router, http.MethodPost, "/api/v1/documents", map[string]string{"filename": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAskQuestionReturnsAnswer(t *testing.T) {
	router := newRouter(&stubRAGService{answer: "Paris."})

	rec := doJSON(t, router, http.MethodPost, "/api/v1/query",
		models.QuestionRequest{Question: "What is the capital of France?"})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.AnswerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Paris.", resp.Answer)
}

func TestStatusEmptyState(t *testing.T) {
	router := newRouter(&stubRAGService{})

	rec := doJSON(t, router, http.MethodGet, "/api/v1/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Loaded)
	assert.Nil(t, resp.Document)
}

func TestStatusLoaded(t *testing.T) {
	router := newRouter(&stubRAGService{info: &models.DocumentInfo{
		Source:      "doc.pdf",
		Fingerprint: "abc123",
		ChunkCount:  7,
	}})

	rec := doJSON(t, router, http.MethodGet, "/api/v1/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Loaded)
	require.NotNil(t, resp.Document)
	assert.Equal(t, 7, resp.Document.ChunkCount)
}

package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github/itish2003/pdfchat/models"
	"github/itish2003/pdfchat/services"
)

// RAGController handles the HTTP requests for the document QA API. It depends
// on the RAGService to perform the actual business logic.
type RAGController struct {
	ragService services.RAGService
}

// NewRAGController is a constructor function that creates a new RAGController.
// This is called from main.go to inject the service dependency.
func NewRAGController(service services.RAGService) *RAGController {
	return &RAGController{
		ragService: service,
	}
}

// ProcessDocument is the Gin handler for POST /api/v1/documents. The upload
// layer has already written the file to disk; this endpoint makes it
// queryable.
func (c *RAGController) ProcessDocument(ctx *gin.Context) {
	var req models.ProcessDocumentRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := c.ragService.ProcessDocument(ctx.Request.Context(), req.FilePath); err != nil {
		if errors.Is(err, services.ErrDocumentNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "File does not exist at path"})
			return
		}
		// The service has already logged the details; keep the response generic.
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process document"})
		return
	}

	ctx.JSON(http.StatusOK, models.ProcessDocumentResponse{
		Status:   "success",
		Filename: req.Filename,
	})
}

// AskQuestion is the Gin handler for POST /api/v1/query.
func (c *RAGController) AskQuestion(ctx *gin.Context) {
	var req models.QuestionRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	answer, err := c.ragService.AskQuestion(ctx.Request.Context(), req.Question)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate AI response"})
		return
	}

	ctx.JSON(http.StatusOK, models.AnswerResponse{Answer: answer})
}

// Status is the Gin handler for GET /api/v1/status.
func (c *RAGController) Status(ctx *gin.Context) {
	info, err := c.ragService.Status(ctx.Request.Context())
	if err != nil {
		if services.IsExpectedState(err) {
			ctx.JSON(http.StatusOK, models.StatusResponse{Loaded: false})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read status"})
		return
	}

	ctx.JSON(http.StatusOK, models.StatusResponse{Loaded: true, Document: info})
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github/itish2003/pdfchat/controller"
	"github/itish2003/pdfchat/services"

	chromago "github.com/amikos-tech/chroma-go/pkg/api/v2"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	// Load .env before reading any configuration.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("FATAL: GEMINI_API_KEY missing")
	}

	// Create HTTP client properly
	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}

	// Create Gemini client
	geminiClient, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Fatalf("FATAL: Failed to create Gemini client: %v", err)
	}
	log.Println("Successfully connected to Google Gemini.")

	embedder := services.NewOllamaEmbedder(
		httpClient,
		envOrDefault("OLLAMA_URL", "http://localhost:11434"),
		envOrDefault("OLLAMA_EMBED_MODEL", "nomic-embed-text:v1.5"),
	)
	generator := services.NewGeminiGenerator(geminiClient, envOrDefault("GEMINI_MODEL", "gemini-2.5-flash"))

	provider, cleanup, err := buildIndexProvider()
	if err != nil {
		log.Fatalf("FATAL: Failed to set up vector index backend: %v", err)
	}
	defer cleanup()

	ragService := services.NewRAGService(embedder, generator, provider)
	ragController := controller.NewRAGController(ragService)

	// Optionally follow an uploads directory so new documents become
	// queryable without an explicit process call.
	if watchDir := os.Getenv("WATCH_DIR"); watchDir != "" {
		watcher := services.NewDocumentWatcher(ragService)
		go watcher.Watch(context.Background(), watchDir)
	}

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware for testing
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Add health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "PDF Chat API",
			"version": "1.0.0",
		})
	})

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/documents", ragController.ProcessDocument) // Make an uploaded file queryable
		apiV1.POST("/query", ragController.AskQuestion)         // Ask a question about the loaded document
		apiV1.GET("/status", ragController.Status)              // Inspect the active document session
	}

	// Start the Server
	port := envOrDefault("PORT", "8080")
	log.Printf("Go Gin backend server starting on http://localhost:%s", port)
	log.Printf("Health check available at: http://localhost:%s/health", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("FATAL: Failed to start server: %v", err)
	}
}

// buildIndexProvider selects the vector index backend: the JSON-on-disk store
// by default, or a Chroma server when VECTOR_BACKEND=chroma.
func buildIndexProvider() (services.IndexProvider, func(), error) {
	switch envOrDefault("VECTOR_BACKEND", "local") {
	case "chroma":
		chromaClient, err := chromago.NewHTTPClient()
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := chromaClient.Close(); err != nil {
				log.Printf("Warning: Failed to close chroma client: %v", err)
			}
		}
		log.Println("Using Chroma vector index backend.")
		return services.NewChromaIndexProvider(chromaClient), cleanup, nil
	default:
		root := envOrDefault("VECTOR_STORE_DIR", "vector_store")
		if err := os.MkdirAll(root, 0o755); err != nil {
			return nil, nil, err
		}
		log.Printf("Using local vector index backend at %s.", root)
		return services.NewLocalIndexProvider(root), func() {}, nil
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

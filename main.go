package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"google.golang.org/genai"

	"github.com/Yashavanth-L/PDF-Analyzer/config"
	"github.com/Yashavanth-L/PDF-Analyzer/controller"
	"github.com/Yashavanth-L/PDF-Analyzer/services"
)

func main() {
	// Load .env file from the current directory
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Invalid configuration: %v", err)
	}

	// Create Gemini client
	geminiClient, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Fatalf("FATAL: Failed to create Gemini client: %v", err)
	}
	log.Println("Successfully connected to Google Gemini.")

	// Wire the pipeline: extractor -> prompt -> model, plus the
	// boundary-owned chat history.
	extractor := services.NewTextExtractor(cfg.UnidocLicenseKey)
	answerService := services.NewGeminiAnswerService(geminiClient, cfg.GeminiModel)
	analysisService := services.NewAnalysisService(extractor, answerService)
	historyService := services.NewHistoryService()
	analysisController := controller.NewAnalysisController(analysisService, historyService, cfg.MaxPDFBytes, cfg.RequestTimeout)

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

	router.GET("/", analysisController.Health)
	router.POST("/analyze", analysisController.Analyze)
	router.GET("/history", analysisController.History)

	// Start the Server
	log.Printf("PDF Analyzer backend starting on http://localhost:%s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/", cfg.Port)
	log.Printf("API endpoints:")
	log.Printf("  POST http://localhost:%s/analyze", cfg.Port)
	log.Printf("  GET  http://localhost:%s/history", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("FATAL: Failed to start server: %v", err)
	}
}

package main

import (
	"fmt"
	"log"
	"os"

	"lotsize-planner/internal/api/handlers"
	"lotsize-planner/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

func main() {
	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	// Log working directory and the item preset dir for debugging
	if wd, err := os.Getwd(); err == nil {
		log.Printf("Working directory: %s", wd)
	}
	itemDir := handlers.ItemDir()
	if info, err := os.Stat(itemDir); err == nil && info.IsDir() {
		log.Printf("Item directory found: %s", itemDir)
	} else {
		log.Printf("Item directory not found at: %s (error: %v)", itemDir, err)
	}

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	solveHandler := handlers.NewSolveHandler()
	itemHandler := handlers.NewItemHandler()
	formulationHandler := handlers.NewFormulationHandler()
	rankHandler := handlers.NewRankHandler()

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/solve", solveHandler.RunSolve)
		api.POST("/solve/compare", solveHandler.CompareSolves)

		api.GET("/items", itemHandler.ListItems)
		api.GET("/formulations", formulationHandler.ListFormulations)

		api.GET("/rank", rankHandler.RankItems)
	}

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

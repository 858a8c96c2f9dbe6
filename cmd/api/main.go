package main

import (
	"log"
	"time"

	"github.com/coverdesk/claims-go/internal/api/middleware"
	"github.com/coverdesk/claims-go/internal/api/routes"
	"github.com/coverdesk/claims-go/internal/client"
	"github.com/coverdesk/claims-go/internal/config"
	"github.com/coverdesk/claims-go/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	logger.Init(&logger.Config{Level: config.LogLevel, Format: config.LogFormat})

	// Initialize JWT signing key
	middleware.Init()

	catalog, err := config.LoadCatalog(config.ClaimTypeCatalog)
	if err != nil {
		log.Fatalf("Failed to load claim type catalog: %v", err)
	}

	clients := client.New(client.Config{
		ClaimsBaseURL:    config.ClaimsAPIBaseURL,
		DocumentsBaseURL: config.DocumentsAPIBaseURL,
		Timeout:          time.Duration(config.RequestTimeoutSec) * time.Second,
	})

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())

	routes.RegisterRoutes(router, clients, catalog)

	port := ":" + config.ServerPort
	log.Printf("Starting claims portal on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}

package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"media-buyer-intake/pkg/api"
	"media-buyer-intake/pkg/clients/sheets"
	"media-buyer-intake/pkg/config"
	"media-buyer-intake/pkg/logging"
	"media-buyer-intake/pkg/middleware"
	"media-buyer-intake/pkg/services"
)

func main() {
	envErr := godotenv.Load()

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger, err := logging.NewLogger(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if envErr != nil {
		logger.Info("No .env file loaded", zap.Error(envErr))
	}
	if cfg.GoogleClientEmail == "" || cfg.GooglePrivateKey == "" || cfg.GoogleSheetID == "" {
		logger.Warn("Google Sheets credentials are incomplete; submissions will fail")
	}

	// Initialize API clients
	sheetsClient := sheets.NewClient(cfg.GoogleClientEmail, cfg.GooglePrivateKey, cfg.GoogleSheetID, logger)

	// Initialize services
	submissionService := services.NewFormSubmissionService(sheetsClient, logger)

	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(cfg.CORSAllowOrigin))

	// Register routes
	handlers := api.NewHandlers(submissionService, logger)
	handlers.RegisterRoutes(router)

	// Start the server
	logger.Info("Server starting", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Error starting server", zap.Error(err))
	}
}

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carmarket/internal/ai"
	"carmarket/internal/config"
	"carmarket/internal/database"
	"carmarket/internal/handler"
	"carmarket/internal/repository"
	"carmarket/internal/router"
	"carmarket/internal/service"
	"carmarket/internal/storage"
	"carmarket/internal/validator"
	"carmarket/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title           Car Marketplace API
// @version         1.0
// @description     A peer-to-peer used-car marketplace API built with Gin and MongoDB.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}. Browsers send the token cookie set by /auth/login instead.

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("Configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	tx := database.NewTransactor(mongoDB.Client, cfg.MongoTransactions)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// AI content generation
	var generator ai.Generator
	if cfg.GeminiAPIKey != "" {
		gemini, err := ai.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("Failed to create Gemini client: %v", err)
		}
		defer gemini.Close()
		generator = gemini
		log.Printf("Using Gemini model %s for content generation", cfg.GeminiModel)
	} else {
		generator = ai.NewOffline()
		log.Println("GEMINI_API_KEY not set, using offline content generator")
	}

	// Photo storage. A nil Storage disables upload URLs.
	var photoStore storage.Storage
	if cfg.UploadsEnabled() {
		photoStore = storage.NewS3Client(storage.S3Options{
			Endpoint:      cfg.S3Endpoint,
			AccessKey:     cfg.S3AccessKey,
			SecretKey:     cfg.S3SecretKey,
			Bucket:        cfg.S3Bucket,
			Region:        cfg.S3Region,
			UseSSL:        cfg.S3UseSSL,
			PublicBaseURL: cfg.S3PublicBaseURL,
		})
	} else {
		log.Println("S3_BUCKET not set, photo uploads disabled")
	}

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	listingRepo := repository.NewListingRepository(mongoDB.Database)
	convoRepo := repository.NewConversationRepository(mongoDB.Database)
	messageRepo := repository.NewMessageRepository(mongoDB.Database)

	// Service layer
	authService := service.NewAuthService(userRepo, jwtManager)
	listingService := service.NewListingService(listingRepo, userRepo)
	messageService := service.NewMessageService(convoRepo, messageRepo, tx)
	contentService := service.NewContentService(generator)
	uploadService := service.NewUploadService(photoStore)

	// Handler layer
	authHandler := handler.NewAuthHandler(authService, handler.CookieOptions{
		MaxAge: jwtManager.Expiry(),
		Secure: cfg.IsProduction(),
	})
	listingHandler := handler.NewListingHandler(listingService)
	messageHandler := handler.NewMessageHandler(messageService)
	aiHandler := handler.NewAIHandler(contentService)
	uploadHandler := handler.NewUploadHandler(uploadService)

	r := router.Setup(&router.Config{
		AuthHandler:       authHandler,
		ListingHandler:    listingHandler,
		MessageHandler:    messageHandler,
		AIHandler:         aiHandler,
		UploadHandler:     uploadHandler,
		TokenManager:      jwtManager,
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
	})

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Println("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	cancel()
	log.Println("Server shutdown complete")
}

// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "carmarket/swagger" // Import generated swagger docs

	"carmarket/internal/handler"
	"carmarket/internal/middleware"
	"carmarket/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler    *handler.AuthHandler
	ListingHandler *handler.ListingHandler
	MessageHandler *handler.MessageHandler
	AIHandler      *handler.AIHandler
	UploadHandler  *handler.UploadHandler
	TokenManager   auth.TokenManager

	// CORSAllowedOrigin is the single browser origin allowed to send credentials.
	CORSAllowedOrigin string
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORS(cfg.CORSAllowedOrigin))

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// Auth routes (public)
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/signup", cfg.AuthHandler.Signup)
			authRoutes.POST("/login", cfg.AuthHandler.Login)
			authRoutes.POST("/logout", cfg.AuthHandler.Logout)
		}

		protected := api.Group("")
		protected.Use(middleware.Auth(cfg.TokenManager))
		{
			protected.GET("/protected", cfg.AuthHandler.Protected)

			listings := protected.Group("/listings")
			{
				listings.POST("", cfg.ListingHandler.CreateListing)
				listings.GET("", cfg.ListingHandler.ListListings)
				listings.PATCH("", cfg.ListingHandler.UpdateListing)
				listings.DELETE("", cfg.ListingHandler.DeleteListing)
			}

			messages := protected.Group("/messages")
			{
				messages.GET("", cfg.MessageHandler.ListConversations)
				messages.POST("", cfg.MessageHandler.SendMessage)
			}

			ai := protected.Group("/ai")
			{
				ai.POST("/listing-details", cfg.AIHandler.ListingDetails)
				ai.POST("/condition", cfg.AIHandler.AssessCondition)
				ai.POST("/price-suggestion", cfg.AIHandler.SuggestPrice)
				ai.POST("/search-filters", cfg.AIHandler.SearchFilters)
			}

			protected.POST("/uploads/photos", cfg.UploadHandler.CreatePhotoUpload)
		}
	}

	return r
}

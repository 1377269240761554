package routes

import (
	"log"

	"link-manager-backend/internal/api/handlers"
	"link-manager-backend/internal/api/middleware"
	"link-manager-backend/internal/auth"
	"link-manager-backend/internal/config"
	"link-manager-backend/internal/repository"
	"link-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	linkRepo := repository.NewLinkRepository(db)

	// Initialize enrichment collaborators and services
	paymentService := service.NewPaymentService(cfg)
	webhookService := service.NewWebhookService(cfg)
	enricher := service.NewLinkEnricher(paymentService, webhookService)
	linkService := service.NewLinkService(linkRepo, enricher, validator)

	// Initialize auth configuration and services
	authConfig, err := auth.LoadAuthConfig("config/auth.yaml")
	if err != nil {
		log.Printf("Warning: Failed to load auth config: %v", err)
		authConfig = nil
	}
	if authConfig != nil && authConfig.JWTSecret == "" {
		authConfig.JWTSecret = cfg.JWTSecret
	}

	var authMiddleware *auth.AuthMiddleware
	if authConfig != nil {
		authService, err := auth.NewAuthService(authConfig)
		if err != nil {
			log.Printf("Warning: Failed to initialize auth service: %v", err)
		} else {
			authMiddleware = auth.NewAuthMiddleware(authService)
		}
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	linkHandler := handlers.NewLinkHandler(linkService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")

	// Apply auth middleware to require authentication for all API endpoints
	if authMiddleware != nil {
		v1.Use(authMiddleware.RequireAuth())
	}

	{
		// Link routes
		links := v1.Group("/links")
		{
			links.GET("", linkHandler.ListLinks)
			links.POST("", linkHandler.CreateLink)
			links.GET("/:id", linkHandler.GetLink)
			links.PUT("/:id", linkHandler.UpdateLink)
			links.PUT("/:id/enabled", linkHandler.SetEnabled)
		}
	}

	return router
}

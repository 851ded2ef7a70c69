package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/shelf/internal/auth"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Apply security headers to all responses
	router.Use(auth.SecurityHeadersMiddleware())
	if cfg.StrictTransportSecurity {
		router.Use(auth.StrictTransportSecurityMiddleware())
	}

	// Health endpoints
	var pinger Pinger
	if cfg.Database != nil {
		pinger = cfg.Database
	}
	health := NewHealthController(pinger, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/ping", health.Ping)

	api := router.Group("/api")

	// Auth endpoints
	if cfg.AuthController != nil {
		cfg.AuthController.RegisterRoutes(api.Group("/auth"))
	}

	// Books API endpoints (public)
	if cfg.Books != nil {
		NewBooksController(cfg.Books).RegisterRoutes(api.Group("/books"))
	}

	// Quotations API endpoints (bearer token required)
	if cfg.Quotations != nil && cfg.BearerMiddleware != nil {
		quotations := api.Group("/quotations", cfg.BearerMiddleware.RequireBearer())
		NewQuotationsController(cfg.Quotations).RegisterRoutes(quotations)
	}

	return router
}

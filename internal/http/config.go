package http

import (
	"github.com/mrlokans/shelf/internal/auth"
	"github.com/mrlokans/shelf/internal/database"
)

// RouterConfig holds all dependencies needed to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Database *database.Database
	Version  string

	// Domain services
	Books      BookService
	Quotations QuotationService

	// Authentication
	AuthController   *auth.Controller
	BearerMiddleware *auth.BearerMiddleware

	// Enable HSTS when served over TLS
	StrictTransportSecurity bool
}

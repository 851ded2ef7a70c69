package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/shelf/internal/auth"
	"github.com/mrlokans/shelf/internal/database"
	"github.com/mrlokans/shelf/internal/database/books"
	"github.com/mrlokans/shelf/internal/database/quotations"
	"github.com/mrlokans/shelf/internal/database/users"
	"github.com/mrlokans/shelf/internal/http"
	"github.com/mrlokans/shelf/internal/services"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ services.BookRepository = (*books.Repository)(nil)
var _ services.QuotationRepository = (*quotations.Repository)(nil)
var _ auth.UserRepository = (*users.Repository)(nil)

// =============================================================================
// Service Layer
// =============================================================================

var _ http.BookService = (*services.BookService)(nil)
var _ http.QuotationService = (*services.QuotationService)(nil)

// =============================================================================
// Health
// =============================================================================

var _ http.Pinger = (*database.Database)(nil)

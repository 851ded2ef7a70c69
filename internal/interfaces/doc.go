// Package interfaces documents the core abstractions used throughout the application.
//
// # Layers
//
// Each layer depends on an interface declared by its consumer:
//
//   - BookRepository, QuotationRepository: persistence used by the services (internal/services/interfaces.go)
//   - UserRepository: persistence used by registration and login (internal/auth/service.go)
//   - BookService, QuotationService: what the HTTP controllers call (internal/http/books.go, internal/http/quotations.go)
//   - Pinger: store liveness for /health (internal/http/health.go)
//
// The gorm-backed implementations live under internal/database. checks.go
// asserts at compile time that they satisfy these interfaces.
//
// # Adding a New Resource
//
//  1. Add the entity to internal/entities and to database.Migrate
//  2. Add a repository package under internal/database
//  3. Add DTOs and a service in internal/services
//  4. Add a controller in internal/http and mount it in NewRouter
//  5. Add a compile-time check to checks.go
package interfaces

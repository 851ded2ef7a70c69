// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup (sqlite or postgres), migrations
//	├── seed.go          # Sample books and quotations for empty databases
//	├── books/           # Book CRUD operations
//	├── quotations/      # Quotation CRUD operations
//	└── users/           # Registered accounts
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	db, err := database.NewDatabase(cfg.Database)
//
//	booksRepo := books.NewRepository(db.DB)
//	usersRepo := users.NewRepository(db.DB)
//
//	book, err := booksRepo.GetByID(123)
//	user, err := usersRepo.GetByEmail("reader@example.com")
//
// Lookups by id return ErrNotFound when no row matches; every other error
// comes straight from the store.
//
// # Interface Implementations
//
//   - books.Repository: implements services.BookRepository
//   - quotations.Repository: implements services.QuotationRepository
//   - users.Repository: implements auth.UserRepository
//
// # Adding a New Domain
//
//  1. Create a new sub-package: internal/database/<domain>/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Register the entity in Migrate
//  5. Add compile-time interface check in internal/interfaces/checks.go
package database

// Package books provides database operations for the book catalogue.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.GetByID(123)
package books

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mrlokans/shelf/internal/database"
	"github.com/mrlokans/shelf/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAll retrieves every book ordered by ID.
func (r *Repository) GetAll() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Order("id ASC").Find(&books).Error
	return books, err
}

// GetByID retrieves a book by ID. Returns database.ErrNotFound when absent.
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.First(&book, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, database.ErrNotFound
		}
		return nil, err
	}
	return &book, nil
}

// Create inserts a book and returns it with the generated ID.
func (r *Repository) Create(book *entities.Book) (*entities.Book, error) {
	book.ID = 0
	if err := r.db.Create(book).Error; err != nil {
		return nil, err
	}
	return book, nil
}

// Update overwrites title and author of an existing book.
// The read and the write are not guarded against concurrent writers: last write wins.
func (r *Repository) Update(book *entities.Book) (*entities.Book, error) {
	existing, err := r.GetByID(book.ID)
	if err != nil {
		return nil, err
	}

	existing.Title = book.Title
	existing.Author = book.Author

	if err := r.db.Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a book. Returns false when no book had the given ID.
func (r *Repository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&entities.Book{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

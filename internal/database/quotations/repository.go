// Package quotations provides database operations for quotations.
//
// # Usage
//
//	repo := quotations.NewRepository(db)
//	quotation, err := repo.GetByID(123)
package quotations

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mrlokans/shelf/internal/database"
	"github.com/mrlokans/shelf/internal/entities"
)

// Repository handles all quotation database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new quotations repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAll retrieves every quotation ordered by ID.
func (r *Repository) GetAll() ([]entities.Quotation, error) {
	var quotations []entities.Quotation
	err := r.db.Order("id ASC").Find(&quotations).Error
	return quotations, err
}

// GetByID retrieves a quotation by ID. Returns database.ErrNotFound when absent.
func (r *Repository) GetByID(id uint) (*entities.Quotation, error) {
	var quotation entities.Quotation
	err := r.db.First(&quotation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, database.ErrNotFound
		}
		return nil, err
	}
	return &quotation, nil
}

// Create inserts a quotation and returns it with the generated ID.
func (r *Repository) Create(quotation *entities.Quotation) (*entities.Quotation, error) {
	quotation.ID = 0
	if err := r.db.Create(quotation).Error; err != nil {
		return nil, err
	}
	return quotation, nil
}

// Update overwrites text and author of an existing quotation.
// The read and the write are not guarded against concurrent writers: last write wins.
func (r *Repository) Update(quotation *entities.Quotation) (*entities.Quotation, error) {
	existing, err := r.GetByID(quotation.ID)
	if err != nil {
		return nil, err
	}

	existing.QuotationText = quotation.QuotationText
	existing.Author = quotation.Author

	if err := r.db.Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a quotation. Returns false when no quotation had the given ID.
func (r *Repository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&entities.Quotation{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

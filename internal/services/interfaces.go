package services

import "github.com/mrlokans/shelf/internal/entities"

// BookRepository is the persistence contract BookService depends on.
// Lookups and updates of a missing id return database.ErrNotFound.
type BookRepository interface {
	GetAll() ([]entities.Book, error)
	GetByID(id uint) (*entities.Book, error)
	Create(book *entities.Book) (*entities.Book, error)
	Update(book *entities.Book) (*entities.Book, error)
	Delete(id uint) (bool, error)
}

// QuotationRepository is the persistence contract QuotationService depends on.
type QuotationRepository interface {
	GetAll() ([]entities.Quotation, error)
	GetByID(id uint) (*entities.Quotation, error)
	Create(quotation *entities.Quotation) (*entities.Quotation, error)
	Update(quotation *entities.Quotation) (*entities.Quotation, error)
	Delete(id uint) (bool, error)
}

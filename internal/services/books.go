package services

import (
	"github.com/mrlokans/shelf/internal/entities"
)

// BookService maps between stored books and their API shape.
type BookService struct {
	repo BookRepository
}

func NewBookService(repo BookRepository) *BookService {
	return &BookService{repo: repo}
}

func (s *BookService) GetAll() ([]BookDTO, error) {
	books, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	result := make([]BookDTO, 0, len(books))
	for i := range books {
		result = append(result, toBookDTO(&books[i]))
	}
	return result, nil
}

func (s *BookService) GetByID(id uint) (*BookDTO, error) {
	book, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	dto := toBookDTO(book)
	return &dto, nil
}

func (s *BookService) Create(input CreateBookDTO) (*BookDTO, error) {
	created, err := s.repo.Create(&entities.Book{
		Title:  input.Title,
		Author: input.Author,
	})
	if err != nil {
		return nil, err
	}
	dto := toBookDTO(created)
	return &dto, nil
}

// Update returns database.ErrNotFound when no book has the given id.
func (s *BookService) Update(id uint, input CreateBookDTO) (*BookDTO, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	existing.Title = input.Title
	existing.Author = input.Author

	updated, err := s.repo.Update(existing)
	if err != nil {
		return nil, err
	}
	dto := toBookDTO(updated)
	return &dto, nil
}

func (s *BookService) Delete(id uint) (bool, error) {
	return s.repo.Delete(id)
}

func toBookDTO(book *entities.Book) BookDTO {
	return BookDTO{
		ID:     book.ID,
		Title:  book.Title,
		Author: book.Author,
	}
}

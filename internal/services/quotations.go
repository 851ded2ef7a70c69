package services

import (
	"github.com/mrlokans/shelf/internal/entities"
)

// QuotationService maps between stored quotations and their API shape.
type QuotationService struct {
	repo QuotationRepository
}

func NewQuotationService(repo QuotationRepository) *QuotationService {
	return &QuotationService{repo: repo}
}

func (s *QuotationService) GetAll() ([]QuotationDTO, error) {
	quotations, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	result := make([]QuotationDTO, 0, len(quotations))
	for i := range quotations {
		result = append(result, toQuotationDTO(&quotations[i]))
	}
	return result, nil
}

func (s *QuotationService) GetByID(id uint) (*QuotationDTO, error) {
	quotation, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	dto := toQuotationDTO(quotation)
	return &dto, nil
}

func (s *QuotationService) Create(input CreateQuotationDTO) (*QuotationDTO, error) {
	created, err := s.repo.Create(&entities.Quotation{
		QuotationText: input.Quotation,
		Author:        input.Author,
	})
	if err != nil {
		return nil, err
	}
	dto := toQuotationDTO(created)
	return &dto, nil
}

// Update returns database.ErrNotFound when no quotation has the given id.
func (s *QuotationService) Update(id uint, input CreateQuotationDTO) (*QuotationDTO, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	existing.QuotationText = input.Quotation
	existing.Author = input.Author

	updated, err := s.repo.Update(existing)
	if err != nil {
		return nil, err
	}
	dto := toQuotationDTO(updated)
	return &dto, nil
}

func (s *QuotationService) Delete(id uint) (bool, error) {
	return s.repo.Delete(id)
}

func toQuotationDTO(quotation *entities.Quotation) QuotationDTO {
	return QuotationDTO{
		ID:        quotation.ID,
		Quotation: quotation.QuotationText,
		Author:    quotation.Author,
	}
}

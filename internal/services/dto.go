package services

// BookDTO is the API representation of a book.
type BookDTO struct {
	ID     uint   `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// CreateBookDTO is accepted by both create and update.
type CreateBookDTO struct {
	Title  string `json:"title" binding:"required,max=200"`
	Author string `json:"author" binding:"required,max=100"`
}

// QuotationDTO is the API representation of a quotation.
type QuotationDTO struct {
	ID        uint   `json:"id"`
	Quotation string `json:"quotation"`
	Author    string `json:"author"`
}

// CreateQuotationDTO is accepted by both create and update.
type CreateQuotationDTO struct {
	Quotation string `json:"quotation" binding:"required,max=1000"`
	Author    string `json:"author" binding:"required,max=100"`
}

package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/mrlokans/shelf/internal/entities"
)

var defaultBooks = []entities.Book{
	{Title: "Clean Code: A Handbook of Agile Software Craftsmanship", Author: "Robert C. Martin"},
	{Title: "The Pragmatic Programmer: Your Journey to Mastery", Author: "Andrew Hunt and David Thomas"},
	{Title: "Design Patterns: Elements of Reusable Object-Oriented Software", Author: "Erich Gamma, Richard Helm, Ralph Johnson, John Vlissides"},
	{Title: "Refactoring: Improving the Design of Existing Code", Author: "Martin Fowler"},
	{Title: "Domain-Driven Design: Tackling Complexity in the Heart of Software", Author: "Eric Evans"},
}

var defaultQuotations = []entities.Quotation{
	{QuotationText: "Any fool can write code that a computer can understand. Good programmers write code that humans can understand.", Author: "Martin Fowler"},
	{QuotationText: "First, solve the problem. Then, write the code.", Author: "John Johnson"},
	{QuotationText: "Code is like humor. When you have to explain it, it's bad.", Author: "Cory House"},
	{QuotationText: "Clean code always looks like it was written by someone who cares.", Author: "Robert C. Martin"},
	{QuotationText: "The best error message is the one that never shows up.", Author: "Thomas Fuchs"},
}

// Seed inserts the sample books and quotations in a single transaction.
// Nothing is written if either table already has rows.
// Returns true when data was inserted.
func (d *Database) Seed() (bool, error) {
	var books, quotations int64
	if err := d.DB.Model(&entities.Book{}).Count(&books).Error; err != nil {
		return false, fmt.Errorf("failed to count books: %w", err)
	}
	if err := d.DB.Model(&entities.Quotation{}).Count(&quotations).Error; err != nil {
		return false, fmt.Errorf("failed to count quotations: %w", err)
	}
	if books > 0 || quotations > 0 {
		return false, nil
	}

	// Copy so repeated seeding never reuses ids assigned to the package-level slices.
	seedBooks := append([]entities.Book(nil), defaultBooks...)
	seedQuotations := append([]entities.Quotation(nil), defaultQuotations...)

	err := d.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&seedBooks).Error; err != nil {
			return fmt.Errorf("failed to seed books: %w", err)
		}
		if err := tx.Create(&seedQuotations).Error; err != nil {
			return fmt.Errorf("failed to seed quotations: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	log.Printf("Seeded %d books and %d quotations", len(seedBooks), len(seedQuotations))
	return true, nil
}

package entities

// Book is a catalogue entry. Rows are hard-deleted.
type Book struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Title  string `gorm:"size:200;not null" json:"title"`
	Author string `gorm:"size:100;not null" json:"author"`
}

// Quotation is a quote attributed to an author. Rows are hard-deleted.
type Quotation struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	QuotationText string `gorm:"size:1000;not null" json:"quotation_text"`
	Author        string `gorm:"size:100;not null" json:"author"`
}

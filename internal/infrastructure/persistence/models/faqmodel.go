package models

import "time"

// FAQModel is the persistence model for help articles. Answer holds markdown.
type FAQModel struct {
	ID        uint   `gorm:"primarykey"`
	Question  string `gorm:"not null;size:500"`
	Answer    string `gorm:"not null;type:text"`
	Category  string `gorm:"size:100;index:idx_faqs_category"`
	Position  int    `gorm:"not null;default:0"`
	Active    bool   `gorm:"not null;default:true;index:idx_faqs_active"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (FAQModel) TableName() string {
	return "faqs"
}

package models

import "time"

// TicketModel is the persistence model for support tickets.
type TicketModel struct {
	ID             uint   `gorm:"primarykey"`
	Number         string `gorm:"not null;size:20;uniqueIndex:idx_tickets_number"`
	Name           string `gorm:"not null;size:100"`
	Email          string `gorm:"not null;size:255;index:idx_tickets_email"`
	Phone          string `gorm:"size:30"`
	OrderNumber    string `gorm:"size:20"`
	Subject        string `gorm:"not null;size:50"`
	Message        string `gorm:"not null;type:text"`
	AttachmentPath string `gorm:"size:500"`
	Status         string `gorm:"not null;size:20;default:open;index:idx_tickets_status"`
	Rating         int    `gorm:"default:0"`
	Feedback       string `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	ClosedAt       *time.Time
}

func (TicketModel) TableName() string {
	return "support_tickets"
}

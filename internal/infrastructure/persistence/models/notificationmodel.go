package models

import (
	"time"

	"gorm.io/datatypes"
)

// NotificationModel is the persistence model for queued outbound emails. The
// payload is the template data as JSON.
type NotificationModel struct {
	ID        uint           `gorm:"primarykey"`
	Kind      string         `gorm:"not null;size:50;index:idx_notifications_kind"`
	Recipient string         `gorm:"not null;size:255"`
	Payload   datatypes.JSON `gorm:"type:json"`
	Status    string         `gorm:"not null;size:20;default:pending;index:idx_notifications_status"`
	Attempts  int            `gorm:"not null;default:0"`
	LastError string         `gorm:"size:1000"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (NotificationModel) TableName() string {
	return "notifications"
}

package models

import "time"

// OrderModel is the persistence model for placed orders. Shipping details are
// denormalized onto the row because they are captured once and never change.
type OrderModel struct {
	ID            uint   `gorm:"primarykey"`
	Number        string `gorm:"not null;size:20;uniqueIndex:idx_orders_number"`
	UserID        uint   `gorm:"not null;index:idx_orders_user"`
	ProductID     uint   `gorm:"not null"`
	Quantity      int    `gorm:"not null"`
	UnitPrice     int64  `gorm:"not null"`
	ShippingFee   int64  `gorm:"not null"`
	Total         int64  `gorm:"not null"`
	FirstName     string `gorm:"not null;size:100"`
	LastName      string `gorm:"not null;size:100"`
	Email         string `gorm:"not null;size:255"`
	Phone         string `gorm:"not null;size:30"`
	Address       string `gorm:"not null;size:500"`
	City          string `gorm:"not null;size:100"`
	Area          string `gorm:"size:100"`
	PostalCode    string `gorm:"size:20"`
	Country       string `gorm:"size:100"`
	Notes         string `gorm:"size:1000"`
	PaymentMethod string `gorm:"not null;size:30"`
	CreatedAt     time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}

// OrderSequenceModel backs the order number allocator. A single row holds the
// last value handed out; it is incremented atomically inside the checkout
// transaction.
type OrderSequenceModel struct {
	ID    uint   `gorm:"primarykey"`
	Name  string `gorm:"not null;size:50;uniqueIndex:idx_order_sequences_name"`
	Value uint64 `gorm:"not null;default:0"`
}

func (OrderSequenceModel) TableName() string {
	return "order_sequences"
}

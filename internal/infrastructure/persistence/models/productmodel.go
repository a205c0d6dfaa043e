package models

import "time"

// ProductModel is the persistence model for catalog products. Price is in
// whole taka.
type ProductModel struct {
	ID               uint   `gorm:"primarykey"`
	Name             string `gorm:"not null;size:255;index:idx_products_name"`
	Brand            string `gorm:"size:100"`
	Category         string `gorm:"size:100;index:idx_products_category"`
	ShortDescription string `gorm:"size:500"`
	Price            int64  `gorm:"not null"`
	Active           bool   `gorm:"not null;default:true;index:idx_products_active"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (ProductModel) TableName() string {
	return "products"
}

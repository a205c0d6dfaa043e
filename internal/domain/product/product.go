package product

import (
	"fmt"
	"time"
)

// Product is a catalog item. The storefront workflows treat products as
// read-only; maintenance happens through migrations and seeds.
type Product struct {
	id               uint
	name             string
	brand            string
	category         string
	shortDescription string
	price            int64
	active           bool
	createdAt        time.Time
	updatedAt        time.Time
}

func NewProduct(name, brand, category, shortDescription string, price int64) (*Product, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}

	now := time.Now()
	return &Product{
		name:             name,
		brand:            brand,
		category:         category,
		shortDescription: shortDescription,
		price:            price,
		active:           true,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

func ReconstructProduct(
	id uint,
	name string,
	brand string,
	category string,
	shortDescription string,
	price int64,
	active bool,
	createdAt, updatedAt time.Time,
) (*Product, error) {
	if id == 0 {
		return nil, fmt.Errorf("product ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	return &Product{
		id:               id,
		name:             name,
		brand:            brand,
		category:         category,
		shortDescription: shortDescription,
		price:            price,
		active:           active,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (p *Product) ID() uint {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Brand() string {
	return p.brand
}

func (p *Product) Category() string {
	return p.category
}

func (p *Product) ShortDescription() string {
	return p.shortDescription
}

func (p *Product) Price() int64 {
	return p.price
}

func (p *Product) IsActive() bool {
	return p.active
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Product) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("product ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("product ID cannot be zero")
	}
	p.id = id
	return nil
}

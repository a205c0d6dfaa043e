package cart

import (
	"fmt"
	"time"
)

// CartItem is a (user, product) pair with a quantity. There is at most one
// item per pair; repeat adds increment the quantity.
type CartItem struct {
	id        uint
	userID    uint
	productID uint
	quantity  int
	createdAt time.Time
	updatedAt time.Time
}

func NewCartItem(userID, productID uint) (*CartItem, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if productID == 0 {
		return nil, fmt.Errorf("product ID is required")
	}

	now := time.Now()
	return &CartItem{
		userID:    userID,
		productID: productID,
		quantity:  1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructCartItem(
	id uint,
	userID uint,
	productID uint,
	quantity int,
	createdAt, updatedAt time.Time,
) (*CartItem, error) {
	if id == 0 {
		return nil, fmt.Errorf("cart item ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if productID == 0 {
		return nil, fmt.Errorf("product ID is required")
	}
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}

	return &CartItem{
		id:        id,
		userID:    userID,
		productID: productID,
		quantity:  quantity,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (i *CartItem) ID() uint {
	return i.id
}

func (i *CartItem) UserID() uint {
	return i.userID
}

func (i *CartItem) ProductID() uint {
	return i.productID
}

func (i *CartItem) Quantity() int {
	return i.quantity
}

func (i *CartItem) CreatedAt() time.Time {
	return i.createdAt
}

func (i *CartItem) UpdatedAt() time.Time {
	return i.updatedAt
}

// IncrementQuantity adds one to the quantity. Used on repeat adds of the
// same product.
func (i *CartItem) IncrementQuantity() {
	i.quantity++
	i.updatedAt = time.Now()
}

// LineTotal computes quantity times the given unit price.
func (i *CartItem) LineTotal(unitPrice int64) int64 {
	return int64(i.quantity) * unitPrice
}

func (i *CartItem) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("cart item ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("cart item ID cannot be zero")
	}
	i.id = id
	return nil
}

package order

import (
	"fmt"
	"time"

	vo "rannaghore/internal/domain/order/valueobjects"
)

// ShippingDetails carries the contact and delivery fields captured at
// checkout. They are persisted with the order and never mutated afterwards.
type ShippingDetails struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Address    string
	City       string
	Area       string
	PostalCode string
	Country    string
	Notes      string
}

func (d ShippingDetails) CustomerName() string {
	return d.FirstName + " " + d.LastName
}

// Order is created once per checkout submission and is immutable afterwards.
type Order struct {
	id            uint
	number        string
	userID        uint
	productID     uint
	quantity      int
	unitPrice     int64
	shippingFee   int64
	total         int64
	shipping      ShippingDetails
	paymentMethod vo.PaymentMethod
	createdAt     time.Time
}

func NewOrder(
	number string,
	userID uint,
	productID uint,
	quantity int,
	unitPrice int64,
	shippingFee int64,
	shipping ShippingDetails,
	paymentMethod vo.PaymentMethod,
) (*Order, error) {
	if len(number) == 0 {
		return nil, fmt.Errorf("order number is required")
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
	if unitPrice < 0 {
		return nil, fmt.Errorf("unit price cannot be negative")
	}
	if !paymentMethod.IsValid() {
		return nil, fmt.Errorf("invalid payment method")
	}

	return &Order{
		number:        number,
		userID:        userID,
		productID:     productID,
		quantity:      quantity,
		unitPrice:     unitPrice,
		shippingFee:   shippingFee,
		total:         unitPrice + shippingFee,
		shipping:      shipping,
		paymentMethod: paymentMethod,
		createdAt:     time.Now(),
	}, nil
}

func ReconstructOrder(
	id uint,
	number string,
	userID uint,
	productID uint,
	quantity int,
	unitPrice int64,
	shippingFee int64,
	total int64,
	shipping ShippingDetails,
	paymentMethod vo.PaymentMethod,
	createdAt time.Time,
) (*Order, error) {
	if id == 0 {
		return nil, fmt.Errorf("order ID cannot be zero")
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("order number is required")
	}

	return &Order{
		id:            id,
		number:        number,
		userID:        userID,
		productID:     productID,
		quantity:      quantity,
		unitPrice:     unitPrice,
		shippingFee:   shippingFee,
		total:         total,
		shipping:      shipping,
		paymentMethod: paymentMethod,
		createdAt:     createdAt,
	}, nil
}

func (o *Order) ID() uint {
	return o.id
}

func (o *Order) Number() string {
	return o.number
}

func (o *Order) UserID() uint {
	return o.userID
}

func (o *Order) ProductID() uint {
	return o.productID
}

func (o *Order) Quantity() int {
	return o.quantity
}

func (o *Order) UnitPrice() int64 {
	return o.unitPrice
}

func (o *Order) ShippingFee() int64 {
	return o.shippingFee
}

// Total is the unit price plus the flat shipping fee.
func (o *Order) Total() int64 {
	return o.total
}

func (o *Order) Shipping() ShippingDetails {
	return o.shipping
}

func (o *Order) PaymentMethod() vo.PaymentMethod {
	return o.paymentMethod
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("order ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("order ID cannot be zero")
	}
	o.id = id
	return nil
}

package order

import "rannaghore/internal/application/order/usecases"

type PlaceOrderRequest struct {
	ProductID     uint   `json:"product_id" binding:"required"`
	Quantity      int    `json:"quantity"`
	FirstName     string `json:"first_name" binding:"required,max=100"`
	LastName      string `json:"last_name" binding:"required,max=100"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required,max=30"`
	Address       string `json:"address" binding:"required,max=500"`
	City          string `json:"city" binding:"required,max=100"`
	Area          string `json:"area" binding:"required,max=100"`
	PostalCode    string `json:"postal_code" binding:"max=20"`
	Country       string `json:"country" binding:"required,max=100"`
	Notes         string `json:"notes" binding:"max=1000"`
	PaymentMethod string `json:"payment_method" binding:"required"`
}

func (r *PlaceOrderRequest) ToCommand(userID uint) usecases.PlaceOrderCommand {
	return usecases.PlaceOrderCommand{
		UserID:        userID,
		ProductID:     r.ProductID,
		Quantity:      r.Quantity,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
		City:          r.City,
		Area:          r.Area,
		PostalCode:    r.PostalCode,
		Country:       r.Country,
		Notes:         r.Notes,
		PaymentMethod: r.PaymentMethod,
	}
}

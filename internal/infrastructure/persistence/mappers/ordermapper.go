package mappers

import (
	"fmt"

	"rannaghore/internal/domain/order"
	vo "rannaghore/internal/domain/order/valueobjects"
	"rannaghore/internal/infrastructure/persistence/models"
)

type OrderMapper interface {
	ToModel(entity *order.Order) *models.OrderModel
	ToDomain(model *models.OrderModel) (*order.Order, error)
}

type orderMapper struct{}

func NewOrderMapper() OrderMapper {
	return &orderMapper{}
}

func (m *orderMapper) ToModel(entity *order.Order) *models.OrderModel {
	if entity == nil {
		return nil
	}
	shipping := entity.Shipping()
	return &models.OrderModel{
		ID:            entity.ID(),
		Number:        entity.Number(),
		UserID:        entity.UserID(),
		ProductID:     entity.ProductID(),
		Quantity:      entity.Quantity(),
		UnitPrice:     entity.UnitPrice(),
		ShippingFee:   entity.ShippingFee(),
		Total:         entity.Total(),
		FirstName:     shipping.FirstName,
		LastName:      shipping.LastName,
		Email:         shipping.Email,
		Phone:         shipping.Phone,
		Address:       shipping.Address,
		City:          shipping.City,
		Area:          shipping.Area,
		PostalCode:    shipping.PostalCode,
		Country:       shipping.Country,
		Notes:         shipping.Notes,
		PaymentMethod: entity.PaymentMethod().String(),
		CreatedAt:     entity.CreatedAt(),
	}
}

func (m *orderMapper) ToDomain(model *models.OrderModel) (*order.Order, error) {
	if model == nil {
		return nil, fmt.Errorf("order model is nil")
	}
	return order.ReconstructOrder(
		model.ID,
		model.Number,
		model.UserID,
		model.ProductID,
		model.Quantity,
		model.UnitPrice,
		model.ShippingFee,
		model.Total,
		order.ShippingDetails{
			FirstName:  model.FirstName,
			LastName:   model.LastName,
			Email:      model.Email,
			Phone:      model.Phone,
			Address:    model.Address,
			City:       model.City,
			Area:       model.Area,
			PostalCode: model.PostalCode,
			Country:    model.Country,
			Notes:      model.Notes,
		},
		vo.PaymentMethod(model.PaymentMethod),
		model.CreatedAt,
	)
}

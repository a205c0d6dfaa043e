package mappers

import (
	"fmt"

	"rannaghore/internal/domain/cart"
	"rannaghore/internal/infrastructure/persistence/models"
)

type CartItemMapper interface {
	ToModel(entity *cart.CartItem) *models.CartItemModel
	ToDomain(model *models.CartItemModel) (*cart.CartItem, error)
	ToDomainList(models []*models.CartItemModel) ([]*cart.CartItem, error)
}

type cartItemMapper struct{}

func NewCartItemMapper() CartItemMapper {
	return &cartItemMapper{}
}

func (m *cartItemMapper) ToModel(entity *cart.CartItem) *models.CartItemModel {
	if entity == nil {
		return nil
	}
	return &models.CartItemModel{
		ID:        entity.ID(),
		UserID:    entity.UserID(),
		ProductID: entity.ProductID(),
		Quantity:  entity.Quantity(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *cartItemMapper) ToDomain(model *models.CartItemModel) (*cart.CartItem, error) {
	if model == nil {
		return nil, fmt.Errorf("cart item model is nil")
	}
	return cart.ReconstructCartItem(
		model.ID,
		model.UserID,
		model.ProductID,
		model.Quantity,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *cartItemMapper) ToDomainList(modelList []*models.CartItemModel) ([]*cart.CartItem, error) {
	entities := make([]*cart.CartItem, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

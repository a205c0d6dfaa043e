package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rannaghore/internal/domain/order"
	"rannaghore/internal/infrastructure/persistence/mappers"
	"rannaghore/internal/infrastructure/persistence/models"
	"rannaghore/internal/shared/db"
	"rannaghore/internal/shared/errors"
)

// OrderRepository implements order.OrderRepository with GORM.
type OrderRepository struct {
	db     *gorm.DB
	mapper mappers.OrderMapper
}

func NewOrderRepository(database *gorm.DB) order.OrderRepository {
	return &OrderRepository{
		db:     database,
		mapper: mappers.NewOrderMapper(),
	}
}

func (r *OrderRepository) Save(ctx context.Context, o *order.Order) error {
	model := r.mapper.ToModel(o)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	if o.ID() == 0 {
		return o.SetID(model.ID)
	}
	return nil
}

func (r *OrderRepository) GetByIDForUser(ctx context.Context, orderID, userID uint) (*order.Order, error) {
	var model models.OrderModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError(fmt.Sprintf("order %d not found", orderID))
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

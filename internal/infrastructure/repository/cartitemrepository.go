package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rannaghore/internal/domain/cart"
	"rannaghore/internal/infrastructure/persistence/mappers"
	"rannaghore/internal/infrastructure/persistence/models"
	"rannaghore/internal/shared/db"
	"rannaghore/internal/shared/errors"
)

// CartItemRepository implements cart.CartItemRepository with GORM.
type CartItemRepository struct {
	db     *gorm.DB
	mapper mappers.CartItemMapper
}

func NewCartItemRepository(database *gorm.DB) cart.CartItemRepository {
	return &CartItemRepository{
		db:     database,
		mapper: mappers.NewCartItemMapper(),
	}
}

func (r *CartItemRepository) Save(ctx context.Context, item *cart.CartItem) error {
	model := r.mapper.ToModel(item)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save cart item: %w", err)
	}
	if item.ID() == 0 {
		return item.SetID(model.ID)
	}
	return nil
}

func (r *CartItemRepository) Update(ctx context.Context, item *cart.CartItem) error {
	model := r.mapper.ToModel(item)
	result := db.GetTxFromContext(ctx, r.db).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update cart item: %w", result.Error)
	}
	return nil
}

func (r *CartItemRepository) DeleteForUser(ctx context.Context, itemID, userID uint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.CartItemModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete cart item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("cart item %d not found", itemID))
	}
	return nil
}

func (r *CartItemRepository) GetByUserAndProduct(ctx context.Context, userID, productID uint) (*cart.CartItem, error) {
	var model models.CartItemModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("cart item not found")
		}
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *CartItemRepository) ListByUser(ctx context.Context, userID uint) ([]*cart.CartItem, error) {
	var modelList []*models.CartItemModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	return r.mapper.ToDomainList(modelList)
}

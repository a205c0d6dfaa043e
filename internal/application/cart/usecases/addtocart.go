package usecases

import (
	"context"
	"fmt"

	"rannaghore/internal/domain/cart"
	"rannaghore/internal/domain/product"
	"rannaghore/internal/shared/errors"
	"rannaghore/internal/shared/logger"
)

type AddToCartCommand struct {
	UserID    uint
	ProductID uint
}

type AddToCartResult struct {
	ItemID    uint `json:"item_id"`
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type AddToCartUseCase struct {
	cartRepo    cart.CartItemRepository
	productRepo product.ProductRepository
	logger      logger.Interface
}

func NewAddToCartUseCase(
	cartRepo cart.CartItemRepository,
	productRepo product.ProductRepository,
	logger logger.Interface,
) *AddToCartUseCase {
	return &AddToCartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Execute adds a product to the user's cart. Adding a product that is already
// in the cart increments its quantity instead of creating a second line.
func (uc *AddToCartUseCase) Execute(ctx context.Context, cmd AddToCartCommand) (*AddToCartResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid add to cart command", "error", err)
		return nil, err
	}

	p, err := uc.productRepo.GetByID(ctx, cmd.ProductID)
	if err != nil || !p.IsActive() {
		uc.logger.Warnw("product not available for cart", "product_id", cmd.ProductID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("product %d not found", cmd.ProductID))
	}

	existing, err := uc.cartRepo.GetByUserAndProduct(ctx, cmd.UserID, cmd.ProductID)
	if err == nil && existing != nil {
		existing.IncrementQuantity()
		if err := uc.cartRepo.Update(ctx, existing); err != nil {
			uc.logger.Errorw("failed to update cart item", "item_id", existing.ID(), "error", err)
			return nil, errors.NewInternalError("failed to update cart item")
		}
		return &AddToCartResult{
			ItemID:    existing.ID(),
			ProductID: cmd.ProductID,
			Quantity:  existing.Quantity(),
		}, nil
	}

	item, err := cart.NewCartItem(cmd.UserID, cmd.ProductID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.cartRepo.Save(ctx, item); err != nil {
		uc.logger.Errorw("failed to save cart item", "user_id", cmd.UserID, "product_id", cmd.ProductID, "error", err)
		return nil, errors.NewInternalError("failed to add to cart")
	}

	uc.logger.Infow("product added to cart", "user_id", cmd.UserID, "product_id", cmd.ProductID)

	return &AddToCartResult{
		ItemID:    item.ID(),
		ProductID: cmd.ProductID,
		Quantity:  item.Quantity(),
	}, nil
}

func (uc *AddToCartUseCase) validateCommand(cmd AddToCartCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if cmd.ProductID == 0 {
		return errors.NewValidationError("product ID is required")
	}
	return nil
}

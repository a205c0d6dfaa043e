package usecases

import (
	"context"
	"fmt"

	"rannaghore/internal/domain/cart"
	"rannaghore/internal/shared/errors"
	"rannaghore/internal/shared/logger"
)

type RemoveFromCartCommand struct {
	UserID uint
	ItemID uint
}

type RemoveFromCartResult struct {
	ItemID uint `json:"item_id"`
}

type RemoveFromCartUseCase struct {
	cartRepo cart.CartItemRepository
	logger   logger.Interface
}

func NewRemoveFromCartUseCase(cartRepo cart.CartItemRepository, logger logger.Interface) *RemoveFromCartUseCase {
	return &RemoveFromCartUseCase{
		cartRepo: cartRepo,
		logger:   logger,
	}
}

// Execute removes a cart line. The delete is scoped to the requesting user,
// so an item ID belonging to someone else reports not found rather than
// touching their cart.
func (uc *RemoveFromCartUseCase) Execute(ctx context.Context, cmd RemoveFromCartCommand) (*RemoveFromCartResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.ItemID == 0 {
		return nil, errors.NewValidationError("item ID is required")
	}

	if err := uc.cartRepo.DeleteForUser(ctx, cmd.ItemID, cmd.UserID); err != nil {
		uc.logger.Warnw("failed to remove cart item", "item_id", cmd.ItemID, "user_id", cmd.UserID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("cart item %d not found", cmd.ItemID))
	}

	uc.logger.Infow("cart item removed", "item_id", cmd.ItemID, "user_id", cmd.UserID)

	return &RemoveFromCartResult{ItemID: cmd.ItemID}, nil
}

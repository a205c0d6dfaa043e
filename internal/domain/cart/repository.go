package cart

import "context"

type CartItemRepository interface {
	Save(ctx context.Context, item *CartItem) error
	Update(ctx context.Context, item *CartItem) error
	// DeleteForUser removes the item only when it belongs to the given
	// user. Missing or foreign items report not found.
	DeleteForUser(ctx context.Context, itemID, userID uint) error
	GetByUserAndProduct(ctx context.Context, userID, productID uint) (*CartItem, error)
	ListByUser(ctx context.Context, userID uint) ([]*CartItem, error)
}

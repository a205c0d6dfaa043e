package order

import "context"

type OrderRepository interface {
	Save(ctx context.Context, o *Order) error
	// GetByIDForUser fetches an order only when it belongs to the given
	// user; other users' orders report not found.
	GetByIDForUser(ctx context.Context, orderID, userID uint) (*Order, error)
}

// NumberAllocator hands out display order numbers ("RP-0001") from an
// atomically incremented sequence, so concurrent checkouts never share a
// number.
type NumberAllocator interface {
	Next(ctx context.Context) (string, error)
}

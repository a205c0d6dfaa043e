package usecases

import "context"

// TransactionManager runs a function inside a database transaction. The
// repositories pick the transaction up from the context.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type GetCheckoutExecutor interface {
	Execute(ctx context.Context, query GetCheckoutQuery) (*GetCheckoutResult, error)
}

type PlaceOrderExecutor interface {
	Execute(ctx context.Context, cmd PlaceOrderCommand) (*PlaceOrderResult, error)
}

type GetConfirmationExecutor interface {
	Execute(ctx context.Context, query GetConfirmationQuery) (*GetConfirmationResult, error)
}

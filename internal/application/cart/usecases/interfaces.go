package usecases

import "context"

type ViewCartExecutor interface {
	Execute(ctx context.Context, query ViewCartQuery) (*ViewCartResult, error)
}

type AddToCartExecutor interface {
	Execute(ctx context.Context, cmd AddToCartCommand) (*AddToCartResult, error)
}

type RemoveFromCartExecutor interface {
	Execute(ctx context.Context, cmd RemoveFromCartCommand) (*RemoveFromCartResult, error)
}

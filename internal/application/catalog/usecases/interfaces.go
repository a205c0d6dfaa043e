package usecases

import "context"

type ListProductsExecutor interface {
	Execute(ctx context.Context, query ListProductsQuery) (*ListProductsResult, error)
}

type GetProductExecutor interface {
	Execute(ctx context.Context, query GetProductQuery) (*GetProductResult, error)
}

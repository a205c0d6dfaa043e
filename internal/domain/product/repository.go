package product

import "context"

type ProductRepository interface {
	GetByID(ctx context.Context, id uint) (*Product, error)
	ListActive(ctx context.Context) ([]*Product, error)
	// Search matches the query case-insensitively against name, brand,
	// category, and short description. An empty query lists everything.
	Search(ctx context.Context, query string) ([]*Product, error)
	DistinctCategories(ctx context.Context) ([]string, error)
}

package usecases

import (
	"context"
	"strings"

	"rannaghore/internal/domain/product"
	"rannaghore/internal/shared/errors"
	"rannaghore/internal/shared/logger"
	"rannaghore/internal/shared/utils"
)

type ListProductsQuery struct {
	Search string
}

type ProductSummary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	Brand            string `json:"brand"`
	Category         string `json:"category"`
	ShortDescription string `json:"short_description"`
	Price            int64  `json:"price"`
	PriceDisplay     string `json:"price_display"`
}

type ListProductsResult struct {
	Products     []ProductSummary `json:"products"`
	ProductCount int              `json:"product_count"`
	Categories   []string         `json:"categories"`
	Search       string           `json:"search,omitempty"`
}

type ListProductsUseCase struct {
	productRepo product.ProductRepository
	logger      logger.Interface
}

func NewListProductsUseCase(productRepo product.ProductRepository, logger logger.Interface) *ListProductsUseCase {
	return &ListProductsUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Execute lists active products. A non-empty search term filters by name,
// brand, category, and description, case-insensitively; a blank term lists
// everything.
func (uc *ListProductsUseCase) Execute(ctx context.Context, query ListProductsQuery) (*ListProductsResult, error) {
	search := strings.TrimSpace(query.Search)

	var (
		products []*product.Product
		err      error
	)
	if search == "" {
		products, err = uc.productRepo.ListActive(ctx)
	} else {
		products, err = uc.productRepo.Search(ctx, search)
	}
	if err != nil {
		uc.logger.Errorw("failed to list products", "search", search, "error", err)
		return nil, errors.NewInternalError("failed to list products")
	}

	categories, err := uc.productRepo.DistinctCategories(ctx)
	if err != nil {
		uc.logger.Warnw("failed to load product categories", "error", err)
		categories = nil
	}

	summaries := make([]ProductSummary, 0, len(products))
	for _, p := range products {
		summaries = append(summaries, newProductSummary(p))
	}

	return &ListProductsResult{
		Products:     summaries,
		ProductCount: len(summaries),
		Categories:   categories,
		Search:       search,
	}, nil
}

func newProductSummary(p *product.Product) ProductSummary {
	return ProductSummary{
		ID:               p.ID(),
		Name:             p.Name(),
		Brand:            p.Brand(),
		Category:         p.Category(),
		ShortDescription: p.ShortDescription(),
		Price:            p.Price(),
		PriceDisplay:     utils.FormatPrice(p.Price()),
	}
}

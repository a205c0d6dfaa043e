package usecases

import (
	"context"
	"fmt"

	"rannaghore/internal/domain/product"
	"rannaghore/internal/shared/errors"
	"rannaghore/internal/shared/logger"
)

type GetProductQuery struct {
	ProductID uint
}

type GetProductResult struct {
	Product ProductSummary `json:"product"`
}

type GetProductUseCase struct {
	productRepo product.ProductRepository
	logger      logger.Interface
}

func NewGetProductUseCase(productRepo product.ProductRepository, logger logger.Interface) *GetProductUseCase {
	return &GetProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *GetProductUseCase) Execute(ctx context.Context, query GetProductQuery) (*GetProductResult, error) {
	if query.ProductID == 0 {
		return nil, errors.NewValidationError("product ID is required")
	}

	p, err := uc.productRepo.GetByID(ctx, query.ProductID)
	if err != nil {
		uc.logger.Errorw("failed to get product", "product_id", query.ProductID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("product %d not found", query.ProductID))
	}
	if !p.IsActive() {
		return nil, errors.NewNotFoundError(fmt.Sprintf("product %d not found", query.ProductID))
	}

	return &GetProductResult{Product: newProductSummary(p)}, nil
}

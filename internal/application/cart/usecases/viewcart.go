package usecases

import (
	"context"

	"rannaghore/internal/domain/cart"
	"rannaghore/internal/domain/product"
	"rannaghore/internal/shared/errors"
	"rannaghore/internal/shared/logger"
	"rannaghore/internal/shared/utils"
)

type ViewCartQuery struct {
	UserID uint
}

type CartLine struct {
	ItemID           uint   `json:"item_id"`
	ProductID        uint   `json:"product_id"`
	ProductName      string `json:"product_name"`
	Brand            string `json:"brand"`
	UnitPrice        int64  `json:"unit_price"`
	Quantity         int    `json:"quantity"`
	LineTotal        int64  `json:"line_total"`
	LineTotalDisplay string `json:"line_total_display"`
}

type ViewCartResult struct {
	Lines              []CartLine `json:"lines"`
	UniqueProductCount int        `json:"unique_product_count"`
	Subtotal           int64      `json:"subtotal"`
	SubtotalDisplay    string     `json:"subtotal_display"`
}

type ViewCartUseCase struct {
	cartRepo    cart.CartItemRepository
	productRepo product.ProductRepository
	logger      logger.Interface
}

func NewViewCartUseCase(
	cartRepo cart.CartItemRepository,
	productRepo product.ProductRepository,
	logger logger.Interface,
) *ViewCartUseCase {
	return &ViewCartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *ViewCartUseCase) Execute(ctx context.Context, query ViewCartQuery) (*ViewCartResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	items, err := uc.cartRepo.ListByUser(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list cart items", "user_id", query.UserID, "error", err)
		return nil, errors.NewInternalError("failed to load cart")
	}

	lines := make([]CartLine, 0, len(items))
	var subtotal int64
	for _, item := range items {
		p, err := uc.productRepo.GetByID(ctx, item.ProductID())
		if err != nil {
			// Product removed from the catalog after it was carted; skip the
			// line rather than failing the whole page.
			uc.logger.Warnw("cart references missing product", "item_id", item.ID(), "product_id", item.ProductID())
			continue
		}

		lineTotal := item.LineTotal(p.Price())
		subtotal += lineTotal
		lines = append(lines, CartLine{
			ItemID:           item.ID(),
			ProductID:        p.ID(),
			ProductName:      p.Name(),
			Brand:            p.Brand(),
			UnitPrice:        p.Price(),
			Quantity:         item.Quantity(),
			LineTotal:        lineTotal,
			LineTotalDisplay: utils.FormatPrice(lineTotal),
		})
	}

	return &ViewCartResult{
		Lines: lines,
		// One cart item per distinct product, even when a line is hidden
		// because its product left the catalog.
		UniqueProductCount: len(items),
		Subtotal:           subtotal,
		SubtotalDisplay:    utils.FormatPrice(subtotal),
	}, nil
}

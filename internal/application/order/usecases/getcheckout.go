package usecases

import (
	"context"
	"fmt"

	"rannaghore/internal/domain/product"
	"rannaghore/internal/shared/config"
	"rannaghore/internal/shared/errors"
	"rannaghore/internal/shared/logger"
	"rannaghore/internal/shared/utils"
)

type GetCheckoutQuery struct {
	ProductID uint
	Quantity  int
}

// GetCheckoutResult is everything the buy-now page needs. Total is the bare
// product price; the flat delivery charge is shown alongside it.
type GetCheckoutResult struct {
	ProductID          uint   `json:"product_id"`
	ProductName        string `json:"product_name"`
	Brand              string `json:"brand"`
	UnitPrice          int64  `json:"unit_price"`
	UnitPriceDisplay   string `json:"unit_price_display"`
	Quantity           int    `json:"quantity"`
	ShippingFee        int64  `json:"shipping_fee"`
	ShippingFeeDisplay string `json:"shipping_fee_display"`
	Total              int64  `json:"total"`
	TotalDisplay       string `json:"total_display"`
}

type GetCheckoutUseCase struct {
	productRepo product.ProductRepository
	shopConfig  config.ShopConfig
	logger      logger.Interface
}

func NewGetCheckoutUseCase(productRepo product.ProductRepository, shopConfig config.ShopConfig, logger logger.Interface) *GetCheckoutUseCase {
	return &GetCheckoutUseCase{
		productRepo: productRepo,
		shopConfig:  shopConfig,
		logger:      logger,
	}
}

func (uc *GetCheckoutUseCase) Execute(ctx context.Context, query GetCheckoutQuery) (*GetCheckoutResult, error) {
	if query.ProductID == 0 {
		return nil, errors.NewValidationError("product ID is required")
	}
	quantity := query.Quantity
	if quantity < 1 {
		quantity = 1
	}

	p, err := uc.productRepo.GetByID(ctx, query.ProductID)
	if err != nil || !p.IsActive() {
		uc.logger.Warnw("product not available for checkout", "product_id", query.ProductID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("product %d not found", query.ProductID))
	}

	// The buy-now page shows the bare product price; the delivery charge is
	// listed separately and only added when the order is placed.
	total := p.Price()

	return &GetCheckoutResult{
		ProductID:          p.ID(),
		ProductName:        p.Name(),
		Brand:              p.Brand(),
		UnitPrice:          p.Price(),
		UnitPriceDisplay:   utils.FormatPrice(p.Price()),
		Quantity:           quantity,
		ShippingFee:        uc.shopConfig.ShippingFee,
		ShippingFeeDisplay: utils.FormatPrice(uc.shopConfig.ShippingFee),
		Total:              total,
		TotalDisplay:       utils.FormatPrice(total),
	}, nil
}

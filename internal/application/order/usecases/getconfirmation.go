package usecases

import (
	"context"
	"fmt"
	"time"

	"rannaghore/internal/domain/order"
	"rannaghore/internal/domain/product"
	"rannaghore/internal/shared/errors"
	"rannaghore/internal/shared/logger"
	"rannaghore/internal/shared/utils"
)

type GetConfirmationQuery struct {
	OrderID uint
	UserID  uint
}

type GetConfirmationResult struct {
	OrderID            uint   `json:"order_id"`
	OrderNumber        string `json:"order_number"`
	ProductName        string `json:"product_name"`
	Quantity           int    `json:"quantity"`
	UnitPrice          int64  `json:"unit_price"`
	UnitPriceDisplay   string `json:"unit_price_display"`
	ShippingFee        int64  `json:"shipping_fee"`
	ShippingFeeDisplay string `json:"shipping_fee_display"`
	Total              int64  `json:"total"`
	TotalDisplay       string `json:"total_display"`
	CustomerName       string `json:"customer_name"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Address            string `json:"address"`
	City               string `json:"city"`
	PaymentMethod      string `json:"payment_method"`
	PlacedAt           string `json:"placed_at"`
}

type GetConfirmationUseCase struct {
	orderRepo   order.OrderRepository
	productRepo product.ProductRepository
	logger      logger.Interface
}

func NewGetConfirmationUseCase(
	orderRepo order.OrderRepository,
	productRepo product.ProductRepository,
	logger logger.Interface,
) *GetConfirmationUseCase {
	return &GetConfirmationUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Execute loads the confirmation page for an order. The lookup is scoped to
// the requesting user, so other users' order IDs report not found.
func (uc *GetConfirmationUseCase) Execute(ctx context.Context, query GetConfirmationQuery) (*GetConfirmationResult, error) {
	if query.OrderID == 0 {
		return nil, errors.NewValidationError("order ID is required")
	}
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	o, err := uc.orderRepo.GetByIDForUser(ctx, query.OrderID, query.UserID)
	if err != nil {
		uc.logger.Warnw("order not found for confirmation", "order_id", query.OrderID, "user_id", query.UserID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("order %d not found", query.OrderID))
	}

	productName := ""
	if p, err := uc.productRepo.GetByID(ctx, o.ProductID()); err == nil {
		productName = p.Name()
	}

	shipping := o.Shipping()
	return &GetConfirmationResult{
		OrderID:            o.ID(),
		OrderNumber:        o.Number(),
		ProductName:        productName,
		Quantity:           o.Quantity(),
		UnitPrice:          o.UnitPrice(),
		UnitPriceDisplay:   utils.FormatPrice(o.UnitPrice()),
		ShippingFee:        o.ShippingFee(),
		ShippingFeeDisplay: utils.FormatPrice(o.ShippingFee()),
		Total:              o.Total(),
		TotalDisplay:       utils.FormatPrice(o.Total()),
		CustomerName:       shipping.CustomerName(),
		Email:              shipping.Email,
		Phone:              shipping.Phone,
		Address:            shipping.Address,
		City:               shipping.City,
		PaymentMethod:      o.PaymentMethod().String(),
		PlacedAt:           o.CreatedAt().Format(time.RFC3339),
	}, nil
}

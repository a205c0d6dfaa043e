package usecases

import (
	"context"
	"fmt"
	"net/mail"
	"strconv"
	"strings"

	appnotification "rannaghore/internal/application/notification"
	"rannaghore/internal/domain/notification"
	"rannaghore/internal/domain/order"
	vo "rannaghore/internal/domain/order/valueobjects"
	"rannaghore/internal/domain/product"
	"rannaghore/internal/shared/config"
	"rannaghore/internal/shared/errors"
	"rannaghore/internal/shared/logger"
	"rannaghore/internal/shared/utils"
)

type PlaceOrderCommand struct {
	UserID        uint
	ProductID     uint
	Quantity      int
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	Address       string
	City          string
	Area          string
	PostalCode    string
	Country       string
	Notes         string
	PaymentMethod string
}

type PlaceOrderResult struct {
	OrderID      uint   `json:"order_id"`
	OrderNumber  string `json:"order_number"`
	Total        int64  `json:"total"`
	TotalDisplay string `json:"total_display"`
	Message      string `json:"message"`
}

type PlaceOrderUseCase struct {
	orderRepo       order.OrderRepository
	numberAllocator order.NumberAllocator
	productRepo     product.ProductRepository
	txManager       TransactionManager
	dispatcher      appnotification.Dispatcher
	shopConfig      config.ShopConfig
	logger          logger.Interface
}

func NewPlaceOrderUseCase(
	orderRepo order.OrderRepository,
	numberAllocator order.NumberAllocator,
	productRepo product.ProductRepository,
	txManager TransactionManager,
	dispatcher appnotification.Dispatcher,
	shopConfig config.ShopConfig,
	logger logger.Interface,
) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		orderRepo:       orderRepo,
		numberAllocator: numberAllocator,
		productRepo:     productRepo,
		txManager:       txManager,
		dispatcher:      dispatcher,
		shopConfig:      shopConfig,
		logger:          logger,
	}
}

// Execute records a checkout. The order number is allocated from the shared
// sequence inside the same transaction that saves the order, and the
// confirmation email is queued after commit so a failed checkout never mails
// anyone.
func (uc *PlaceOrderUseCase) Execute(ctx context.Context, cmd PlaceOrderCommand) (*PlaceOrderResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid place order command", "error", err)
		return nil, err
	}

	p, err := uc.productRepo.GetByID(ctx, cmd.ProductID)
	if err != nil || !p.IsActive() {
		uc.logger.Warnw("product not available for order", "product_id", cmd.ProductID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("product %d not found", cmd.ProductID))
	}

	paymentMethod, err := vo.NewPaymentMethod(cmd.PaymentMethod)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	shipping := order.ShippingDetails{
		FirstName:  strings.TrimSpace(cmd.FirstName),
		LastName:   strings.TrimSpace(cmd.LastName),
		Email:      strings.TrimSpace(cmd.Email),
		Phone:      strings.TrimSpace(cmd.Phone),
		Address:    strings.TrimSpace(cmd.Address),
		City:       strings.TrimSpace(cmd.City),
		Area:       strings.TrimSpace(cmd.Area),
		PostalCode: strings.TrimSpace(cmd.PostalCode),
		Country:    strings.TrimSpace(cmd.Country),
		Notes:      strings.TrimSpace(cmd.Notes),
	}

	var placed *order.Order
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		number, err := uc.numberAllocator.Next(txCtx)
		if err != nil {
			return fmt.Errorf("failed to allocate order number: %w", err)
		}

		o, err := order.NewOrder(number, cmd.UserID, cmd.ProductID, cmd.Quantity, p.Price(), uc.shopConfig.ShippingFee, shipping, paymentMethod)
		if err != nil {
			return err
		}

		if err := uc.orderRepo.Save(txCtx, o); err != nil {
			return fmt.Errorf("failed to save order: %w", err)
		}

		placed = o
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to place order", "user_id", cmd.UserID, "product_id", cmd.ProductID, "error", err)
		return nil, errors.NewInternalError("failed to place order")
	}

	uc.dispatcher.Dispatch(ctx, notification.KindOrderConfirmation, shipping.Email, map[string]string{
		"ref":           placed.Number(),
		"order_number":  placed.Number(),
		"customer_name": shipping.CustomerName(),
		"product_name":  p.Name(),
		"total":         strconv.FormatInt(placed.Total(), 10),
	})

	uc.logger.Infow("order placed", "order_number", placed.Number(), "user_id", cmd.UserID, "total", placed.Total())

	return &PlaceOrderResult{
		OrderID:      placed.ID(),
		OrderNumber:  placed.Number(),
		Total:        placed.Total(),
		TotalDisplay: utils.FormatPrice(placed.Total()),
		Message:      fmt.Sprintf("Order placed successfully! Your order number is %s. You will receive a confirmation email shortly.", placed.Number()),
	}, nil
}

func (uc *PlaceOrderUseCase) validateCommand(cmd PlaceOrderCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if cmd.ProductID == 0 {
		return errors.NewValidationError("product ID is required")
	}
	if cmd.Quantity < 1 {
		return errors.NewValidationError("quantity must be at least 1")
	}
	if strings.TrimSpace(cmd.FirstName) == "" {
		return errors.NewValidationError("first name is required")
	}
	if strings.TrimSpace(cmd.LastName) == "" {
		return errors.NewValidationError("last name is required")
	}
	email := strings.TrimSpace(cmd.Email)
	if email == "" {
		return errors.NewValidationError("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errors.NewValidationError("invalid email address")
	}
	if strings.TrimSpace(cmd.Phone) == "" {
		return errors.NewValidationError("phone is required")
	}
	if strings.TrimSpace(cmd.Address) == "" {
		return errors.NewValidationError("address is required")
	}
	if strings.TrimSpace(cmd.City) == "" {
		return errors.NewValidationError("city is required")
	}
	if strings.TrimSpace(cmd.Area) == "" {
		return errors.NewValidationError("area is required")
	}
	if strings.TrimSpace(cmd.Country) == "" {
		return errors.NewValidationError("country is required")
	}
	return nil
}

package order

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rannaghore/internal/application/order/usecases"
	"rannaghore/internal/interfaces/http/middleware"
	"rannaghore/internal/shared/logger"
	"rannaghore/internal/shared/utils"
)

type OrderHandler struct {
	getCheckoutUC     usecases.GetCheckoutExecutor
	placeOrderUC      usecases.PlaceOrderExecutor
	getConfirmationUC usecases.GetConfirmationExecutor
	logger            logger.Interface
}

func NewOrderHandler(
	getCheckoutUC usecases.GetCheckoutExecutor,
	placeOrderUC usecases.PlaceOrderExecutor,
	getConfirmationUC usecases.GetConfirmationExecutor,
) *OrderHandler {
	return &OrderHandler{
		getCheckoutUC:     getCheckoutUC,
		placeOrderUC:      placeOrderUC,
		getConfirmationUC: getConfirmationUC,
		logger:            logger.NewLogger(),
	}
}

// GetCheckout handles GET /checkout/:productID. It is the buy-now page: the
// product, the delivery charge, and the amount due.
func (h *OrderHandler) GetCheckout(c *gin.Context) {
	productID, err := utils.ParseUintParam(c, "productID", "product")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	quantity, _ := strconv.Atoi(c.DefaultQuery("quantity", "1"))

	result, err := h.getCheckoutUC.Execute(c.Request.Context(), usecases.GetCheckoutQuery{
		ProductID: productID,
		Quantity:  quantity,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// PlaceOrder handles POST /orders
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for place order", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.placeOrderUC.Execute(c.Request.Context(), req.ToCommand(middleware.UserID(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, result.Message)
}

// GetConfirmation handles GET /orders/:id/confirmation
func (h *OrderHandler) GetConfirmation(c *gin.Context) {
	orderID, err := utils.ParseUintParam(c, "id", "order")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getConfirmationUC.Execute(c.Request.Context(), usecases.GetConfirmationQuery{
		OrderID: orderID,
		UserID:  middleware.UserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

package cart

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rannaghore/internal/application/cart/usecases"
	"rannaghore/internal/interfaces/http/middleware"
	"rannaghore/internal/shared/logger"
	"rannaghore/internal/shared/utils"
)

type CartHandler struct {
	viewCartUC       usecases.ViewCartExecutor
	addToCartUC      usecases.AddToCartExecutor
	removeFromCartUC usecases.RemoveFromCartExecutor
	logger           logger.Interface
}

func NewCartHandler(
	viewCartUC usecases.ViewCartExecutor,
	addToCartUC usecases.AddToCartExecutor,
	removeFromCartUC usecases.RemoveFromCartExecutor,
) *CartHandler {
	return &CartHandler{
		viewCartUC:       viewCartUC,
		addToCartUC:      addToCartUC,
		removeFromCartUC: removeFromCartUC,
		logger:           logger.NewLogger(),
	}
}

// ViewCart handles GET /cart
func (h *CartHandler) ViewCart(c *gin.Context) {
	result, err := h.viewCartUC.Execute(c.Request.Context(), usecases.ViewCartQuery{
		UserID: middleware.UserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add to cart", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addToCartUC.Execute(c.Request.Context(), usecases.AddToCartCommand{
		UserID:    middleware.UserID(c),
		ProductID: req.ProductID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Item added to cart", result)
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	itemID, err := utils.ParseUintParam(c, "id", "cart item")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.removeFromCartUC.Execute(c.Request.Context(), usecases.RemoveFromCartCommand{
		UserID: middleware.UserID(c),
		ItemID: itemID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Item removed from cart", result)
}

package catalog

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"rannaghore/internal/application/catalog/usecases"
	"rannaghore/internal/shared/logger"
	"rannaghore/internal/shared/utils"
)

type CatalogHandler struct {
	listProductsUC usecases.ListProductsExecutor
	getProductUC   usecases.GetProductExecutor
	logger         logger.Interface
}

func NewCatalogHandler(
	listProductsUC usecases.ListProductsExecutor,
	getProductUC usecases.GetProductExecutor,
) *CatalogHandler {
	return &CatalogHandler{
		listProductsUC: listProductsUC,
		getProductUC:   getProductUC,
		logger:         logger.NewLogger(),
	}
}

// ListProducts handles GET /products. An optional ?search= term filters the
// catalog; a blank term returns everything.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	query := usecases.ListProductsQuery{
		Search: strings.TrimSpace(c.Query("search")),
	}

	result, err := h.listProductsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetProduct handles GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	productID, err := utils.ParseUintParam(c, "id", "product")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getProductUC.Execute(c.Request.Context(), usecases.GetProductQuery{ProductID: productID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

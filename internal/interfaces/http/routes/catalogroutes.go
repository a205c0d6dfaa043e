package routes

import (
	"github.com/gin-gonic/gin"

	cataloghandlers "rannaghore/internal/interfaces/http/handlers/catalog"
)

type CatalogRouteConfig struct {
	CatalogHandler *cataloghandlers.CatalogHandler
}

// SetupCatalogRoutes registers the public storefront catalog.
func SetupCatalogRoutes(engine *gin.Engine, config *CatalogRouteConfig) {
	products := engine.Group("/products")
	{
		products.GET("", config.CatalogHandler.ListProducts)
		products.GET("/:id", config.CatalogHandler.GetProduct)
	}
}

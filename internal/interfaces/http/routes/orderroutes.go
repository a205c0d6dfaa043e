package routes

import (
	"github.com/gin-gonic/gin"

	orderhandlers "rannaghore/internal/interfaces/http/handlers/order"
	"rannaghore/internal/interfaces/http/middleware"
)

type OrderRouteConfig struct {
	OrderHandler   *orderhandlers.OrderHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupOrderRoutes(engine *gin.Engine, config *OrderRouteConfig) {
	checkout := engine.Group("/checkout")
	checkout.Use(config.AuthMiddleware.RequireAuth())
	{
		checkout.GET("/:productID", config.OrderHandler.GetCheckout)
	}

	orders := engine.Group("/orders")
	orders.Use(config.AuthMiddleware.RequireAuth())
	{
		orders.POST("", config.OrderHandler.PlaceOrder)
		orders.GET("/:id/confirmation", config.OrderHandler.GetConfirmation)
	}
}

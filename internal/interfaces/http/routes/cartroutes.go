package routes

import (
	"github.com/gin-gonic/gin"

	carthandlers "rannaghore/internal/interfaces/http/handlers/cart"
	"rannaghore/internal/interfaces/http/middleware"
)

type CartRouteConfig struct {
	CartHandler    *carthandlers.CartHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupCartRoutes(engine *gin.Engine, config *CartRouteConfig) {
	cart := engine.Group("/cart")
	cart.Use(config.AuthMiddleware.RequireAuth())
	{
		cart.GET("", config.CartHandler.ViewCart)
		cart.POST("/items", config.CartHandler.AddToCart)
		cart.DELETE("/items/:id", config.CartHandler.RemoveFromCart)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"

	"stracing_back_end/internal/handlers"
)

// Deps su handleri i middleware-i koje rute koriste.
type Deps struct {
	Orders    *handlers.OrderHandler
	Cart      *handlers.CartHandler
	Session   gin.HandlerFunc
	RateLimit gin.HandlerFunc
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	api := r.Group("/api")
	api.Use(deps.Session)

	// Checkout
	api.POST("/orders", deps.RateLimit, deps.Orders.CreateOrder)

	// Korpa
	api.GET("/cart", deps.Cart.GetCart)
	api.POST("/cart/items", deps.Cart.AddItem)
	api.PATCH("/cart/items/:productId", deps.Cart.UpdateQuantity)
	api.DELETE("/cart/items/:productId", deps.Cart.RemoveItem)
	api.DELETE("/cart", deps.Cart.ClearCart)

	// Pomoćni endpointi
	api.GET("/delivery-options", handlers.GetDeliveryOptions)
	api.GET("/config", handlers.GetConfig)
	api.GET("/health", handlers.Health)
}

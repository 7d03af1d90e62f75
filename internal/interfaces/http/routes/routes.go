// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
)

// SetupRoutes wires all storefront routes onto the API group
func SetupRoutes(rg *gin.RouterGroup, cat *catalog.Catalog, carts *cart.Manager, finalizer *order.Finalizer, cfg *config.Config, logger *logrus.Logger) {
	catalogHandler := handlers.NewCatalogHandler(cat)
	cartHandler := handlers.NewCartHandler(carts, cat, cfg, logger)
	checkoutHandler := handlers.NewCheckoutHandler(carts, finalizer, logger)
	orderHandler := handlers.NewOrderHandler(finalizer)

	products := rg.Group("/products")
	{
		products.GET("", catalogHandler.GetProducts)
		products.GET("/:id", catalogHandler.GetProduct)
	}

	rg.GET("/delivery-options", catalogHandler.GetDeliveryOptions)

	cartRoutes := rg.Group("/cart")
	{
		cartRoutes.GET("", cartHandler.GetCart)
		cartRoutes.GET("/count", cartHandler.GetCartCount)
		cartRoutes.POST("/items", cartHandler.AddToCart)
		cartRoutes.PUT("/items/:id/quantity", cartHandler.UpdateQuantity)
		cartRoutes.PUT("/items/:id/delivery-option", cartHandler.UpdateDeliveryOption)
		cartRoutes.DELETE("/items/:id", cartHandler.RemoveFromCart)
	}

	rg.POST("/checkout/place-order", checkoutHandler.PlaceOrder)

	orders := rg.Group("/orders")
	{
		orders.GET("", orderHandler.GetOrders)
		orders.GET("/:id", orderHandler.GetOrder)
	}
}

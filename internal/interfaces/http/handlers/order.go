// internal/interfaces/http/handlers/order.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/infrastructure/storage"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// OrderHandler serves the session's order history
type OrderHandler struct {
	finalizer *order.Finalizer
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(finalizer *order.Finalizer) *OrderHandler {
	return &OrderHandler{
		finalizer: finalizer,
	}
}

// GetOrders handles GET /orders - most recent first
func (h *OrderHandler) GetOrders(c *gin.Context) {
	history, err := h.finalizer.History(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve orders",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data":    history,
	})
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	placed, err := h.finalizer.Find(c.Request.Context(), middleware.GetSessionID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve order",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    placed,
	})
}

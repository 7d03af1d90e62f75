// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// CheckoutHandler handles order placement
type CheckoutHandler struct {
	carts     *cart.Manager
	finalizer *order.Finalizer
	logger    *logrus.Logger
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(carts *cart.Manager, finalizer *order.Finalizer, logger *logrus.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		carts:     carts,
		finalizer: finalizer,
		logger:    logger,
	}
}

// PlaceOrder handles POST /checkout/place-order. On success the cart
// has been cleared and the order durably recorded; on any persistence
// failure the cart is left as it was so the shopper can retry.
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	store, err := h.carts.ForSession(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load cart",
		})
		return
	}

	placed, err := h.finalizer.PlaceOrder(c.Request.Context(), sessionID, store)
	if err != nil {
		if errors.Is(err, order.ErrEmptyOrder) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cart has no items to order",
			})
			return
		}

		h.logger.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("order placement failed")

		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to place order",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    placed,
	})
}

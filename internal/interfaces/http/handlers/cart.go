// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/pricing"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// CartHandler handles cart endpoints. After every mutation it
// recomputes the price breakdown and returns the full cart view, so
// the rendered summary can never drift from the stored lines.
type CartHandler struct {
	carts   *cart.Manager
	catalog *catalog.Catalog
	config  *config.Config
	logger  *logrus.Logger
	now     func() time.Time
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts *cart.Manager, cat *catalog.Catalog, cfg *config.Config, logger *logrus.Logger) *CartHandler {
	return &CartHandler{
		carts:   carts,
		catalog: cat,
		config:  cfg,
		logger:  logger,
		now:     time.Now,
	}
}

// AddToCartRequest represents add to cart request
type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// UpdateQuantityRequest represents a quantity change request. The
// quantity is deliberately unvalidated here: rejecting non-positive
// values is the store's contract, not the transport's.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateDeliveryOptionRequest represents a delivery option change request
type UpdateDeliveryOptionRequest struct {
	DeliveryOptionID string `json:"delivery_option_id" binding:"required"`
}

// CartItemView is a cart line joined with its product and the chosen
// delivery option's projected date.
type CartItemView struct {
	Product          catalog.Product `json:"product"`
	Quantity         int             `json:"quantity"`
	DeliveryOptionID string          `json:"delivery_option_id"`
	DeliveryDate     string          `json:"delivery_date,omitempty"`
}

// CartView represents the rendered cart: resolvable items plus the
// derived price breakdown.
type CartView struct {
	Items     []CartItemView    `json:"items"`
	Breakdown pricing.Breakdown `json:"breakdown"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	store, ok := h.sessionStore(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    h.cartView(store),
	})
}

// GetCartCount handles GET /cart/count - the cart quantity badge
func (h *CartHandler) GetCartCount(c *gin.Context) {
	store, ok := h.sessionStore(c)
	if !ok {
		return
	}

	count := 0
	for _, line := range store.Lines() {
		count += line.Quantity
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data": gin.H{
			"count": count,
		},
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	store, ok := h.sessionStore(c)
	if !ok {
		return
	}

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	// Resolving the product is the caller's responsibility; the store
	// itself performs no catalog validation.
	if _, exists := h.catalog.Product(req.ProductID); !exists {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	err := store.AddItem(c.Request.Context(), req.ProductID)
	h.respondWithCart(c, store, err, "Item added to cart successfully")
}

// UpdateQuantity handles PUT /cart/items/:id/quantity
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	store, ok := h.sessionStore(c)
	if !ok {
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	changed, err := store.SetQuantity(c.Request.Context(), c.Param("id"), req.Quantity)
	if !changed && err == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Quantity must be positive and the item must be in the cart",
		})
		return
	}

	h.respondWithCart(c, store, err, "Cart item updated successfully")
}

// UpdateDeliveryOption handles PUT /cart/items/:id/delivery-option
func (h *CartHandler) UpdateDeliveryOption(c *gin.Context) {
	store, ok := h.sessionStore(c)
	if !ok {
		return
	}

	var req UpdateDeliveryOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	// Keeping the option id resolvable is this layer's invariant.
	if _, exists := h.catalog.DeliveryOption(req.DeliveryOptionID); !exists {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Delivery option not found",
		})
		return
	}

	changed, err := store.SetDeliveryOption(c.Request.Context(), c.Param("id"), req.DeliveryOptionID)
	if !changed && err == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Item not found in cart",
		})
		return
	}

	h.respondWithCart(c, store, err, "Delivery option updated successfully")
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	store, ok := h.sessionStore(c)
	if !ok {
		return
	}

	err := store.RemoveItem(c.Request.Context(), c.Param("id"))
	h.respondWithCart(c, store, err, "Item removed from cart successfully")
}

// sessionStore resolves the cart store owning the request's session.
func (h *CartHandler) sessionStore(c *gin.Context) (*cart.Store, bool) {
	store, err := h.carts.ForSession(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load cart",
		})
		return nil, false
	}
	return store, true
}

// respondWithCart returns the updated cart view. A persistence failure
// does not invalidate the in-memory cart, so the mutation still
// succeeds; the condition is reported as a warning alongside the data.
func (h *CartHandler) respondWithCart(c *gin.Context, store *cart.Store, err error, message string) {
	response := gin.H{
		"message": message,
		"data":    h.cartView(store),
	}

	if err != nil {
		if !errors.Is(err, cart.ErrPersistence) {
			h.logger.WithField("error", err.Error()).Error("cart mutation failed")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to update cart",
			})
			return
		}
		response["warning"] = "cart changes may not survive a restart"
	}

	c.JSON(http.StatusOK, response)
}

// cartView joins the current lines against the catalogs and derives
// the price breakdown. Stale lines are dropped from the item view just
// as the pricing engine drops them from the totals.
func (h *CartHandler) cartView(store *cart.Store) CartView {
	lines := store.Lines()

	items := make([]CartItemView, 0, len(lines))
	for _, line := range lines {
		product, ok := h.catalog.Product(line.ProductID)
		if !ok {
			continue
		}
		option, ok := h.catalog.DeliveryOption(line.DeliveryOptionID)
		if !ok {
			continue
		}

		items = append(items, CartItemView{
			Product:          product,
			Quantity:         line.Quantity,
			DeliveryOptionID: line.DeliveryOptionID,
			DeliveryDate:     deliveryDateString(h.now(), option.DeliveryDays),
		})
	}

	return CartView{
		Items:     items,
		Breakdown: pricing.Compute(lines, h.catalog, h.config.Pricing.TaxRate),
	}
}

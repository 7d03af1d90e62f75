// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// CatalogHandler serves the read-only product and delivery-option
// catalogs.
type CatalogHandler struct {
	catalog *catalog.Catalog
	now     func() time.Time
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{
		catalog: cat,
		now:     time.Now,
	}
}

// DeliveryOptionView is a delivery option decorated with the
// presentation strings the storefront renders: the projected delivery
// date and a price label ("FREE" for zero-cost shipping).
type DeliveryOptionView struct {
	catalog.DeliveryOption
	DateString  string `json:"date_string"`
	PriceString string `json:"price_string"`
}

// GetProducts handles GET /products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    h.catalog.Products(),
	})
}

// GetProduct handles GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, ok := h.catalog.Product(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}

// GetDeliveryOptions handles GET /delivery-options
func (h *CatalogHandler) GetDeliveryOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Delivery options retrieved successfully",
		"data":    h.deliveryOptionViews(),
	})
}

// deliveryOptionViews projects every delivery option with its computed
// delivery date. Date math is presentation only; the pricing engine
// never sees it.
func (h *CatalogHandler) deliveryOptionViews() []DeliveryOptionView {
	options := h.catalog.DeliveryOptions()
	views := make([]DeliveryOptionView, len(options))
	for i, opt := range options {
		views[i] = DeliveryOptionView{
			DeliveryOption: opt,
			DateString:     deliveryDateString(h.now(), opt.DeliveryDays),
			PriceString:    shippingPriceString(opt),
		}
	}
	return views
}

// deliveryDateString formats now + deliveryDays the way the storefront
// displays it, e.g. "Monday, January 2".
func deliveryDateString(now time.Time, deliveryDays int) string {
	return now.AddDate(0, 0, deliveryDays).Format("Monday, January 2")
}

// shippingPriceString renders a shipping price label, with zero-cost
// options shown as FREE.
func shippingPriceString(opt catalog.DeliveryOption) string {
	if opt.IsFree() {
		return "FREE"
	}
	return formatCents(opt.PriceCents)
}

// formatCents renders integer cents as a dollar string.
func formatCents(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

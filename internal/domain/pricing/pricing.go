// internal/domain/pricing/pricing.go
package pricing

import (
	"math"

	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// Breakdown represents the derived monetary summary for a cart. It is
// recomputed from the current lines and catalogs after every mutation
// and never persisted.
type Breakdown struct {
	ItemTotalCents     int64 `json:"item_total_cents"`
	ShippingTotalCents int64 `json:"shipping_total_cents"`
	BeforeTaxCents     int64 `json:"before_tax_cents"`
	TaxCents           int64 `json:"tax_cents"`
	TotalCents         int64 `json:"total_cents"`
	TotalQuantity      int   `json:"total_quantity"`
}

// Compute derives the price breakdown for the given cart lines. Lines
// whose product or delivery option cannot be resolved are stale
// references and excluded from every total: the cart is persisted
// independently of the catalog's lifetime, so a missing id is not an
// error. Shipping is priced once per line, not per unit. All amounts
// are integer cents; rounding happens exactly once, on the tax amount,
// half away from zero.
func Compute(lines []cart.Line, cat *catalog.Catalog, taxRate float64) Breakdown {
	var b Breakdown

	for _, line := range lines {
		product, ok := cat.Product(line.ProductID)
		if !ok {
			continue
		}
		option, ok := cat.DeliveryOption(line.DeliveryOptionID)
		if !ok {
			continue
		}

		b.ItemTotalCents += product.PriceCents * int64(line.Quantity)
		b.ShippingTotalCents += option.PriceCents
		b.TotalQuantity += line.Quantity
	}

	b.BeforeTaxCents = b.ItemTotalCents + b.ShippingTotalCents
	b.TaxCents = int64(math.Round(float64(b.BeforeTaxCents) * taxRate))
	b.TotalCents = b.BeforeTaxCents + b.TaxCents

	return b
}

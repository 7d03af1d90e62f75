// internal/domain/catalog/entity.go
package catalog

// Product represents an item available in the storefront. Products are
// reference data: loaded once at startup and never mutated afterwards.
type Product struct {
	ID         string `gorm:"primaryKey;size:64" json:"id"`
	Name       string `gorm:"not null;size:255" json:"name"`
	Image      string `gorm:"size:500" json:"image"`
	PriceCents int64  `gorm:"not null" json:"price_cents"`
	Rating     Rating `gorm:"embedded;embeddedPrefix:rating_" json:"rating"`
	SortOrder  int    `gorm:"default:0" json:"-"`
}

// Rating represents a product's star rating summary.
// Stars is 0-5 in 0.5 steps.
type Rating struct {
	Stars float64 `gorm:"not null" json:"stars"`
	Count int     `gorm:"not null;default:0" json:"count"`
}

// DeliveryOption represents a shipping choice for a cart line.
// Like products, delivery options are static reference data.
type DeliveryOption struct {
	ID           string `gorm:"primaryKey;size:64" json:"id"`
	DeliveryDays int    `gorm:"not null" json:"delivery_days"`
	PriceCents   int64  `gorm:"not null" json:"price_cents"`
	SortOrder    int    `gorm:"default:0" json:"-"`
}

// IsFree reports whether the option ships at no cost.
func (d DeliveryOption) IsFree() bool {
	return d.PriceCents == 0
}

// TableName overrides
func (Product) TableName() string        { return "products" }
func (DeliveryOption) TableName() string { return "delivery_options" }

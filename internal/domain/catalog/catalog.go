// internal/domain/catalog/catalog.go
package catalog

import (
	"fmt"

	"gorm.io/gorm"
)

// Catalog provides read-only, id-keyed lookup of products and delivery
// options. Lookups are backed by maps so resolution stays O(1) as the
// catalog grows; declared order is kept for stable rendering and for
// the default-delivery-option rule.
type Catalog struct {
	products        []Product
	deliveryOptions []DeliveryOption
	productsByID    map[string]Product
	optionsByID     map[string]DeliveryOption
}

// New builds a catalog from the given reference collections.
func New(products []Product, options []DeliveryOption) (*Catalog, error) {
	if len(options) == 0 {
		return nil, fmt.Errorf("catalog requires at least one delivery option")
	}

	c := &Catalog{
		products:        products,
		deliveryOptions: options,
		productsByID:    make(map[string]Product, len(products)),
		optionsByID:     make(map[string]DeliveryOption, len(options)),
	}

	for _, p := range products {
		if _, exists := c.productsByID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		c.productsByID[p.ID] = p
	}

	for _, opt := range options {
		if _, exists := c.optionsByID[opt.ID]; exists {
			return nil, fmt.Errorf("duplicate delivery option id %q", opt.ID)
		}
		c.optionsByID[opt.ID] = opt
	}

	return c, nil
}

// NewFromSeed builds a catalog from the built-in seed data.
func NewFromSeed() (*Catalog, error) {
	return New(SeedProducts(), SeedDeliveryOptions())
}

// NewFromDB loads both reference collections from the database once
// and builds an immutable catalog from them.
func NewFromDB(db *gorm.DB) (*Catalog, error) {
	var products []Product
	if err := db.Order("sort_order ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	var options []DeliveryOption
	if err := db.Order("sort_order ASC").Find(&options).Error; err != nil {
		return nil, fmt.Errorf("failed to load delivery options: %w", err)
	}

	return New(products, options)
}

// Product resolves a product by id.
func (c *Catalog) Product(id string) (Product, bool) {
	p, ok := c.productsByID[id]
	return p, ok
}

// DeliveryOption resolves a delivery option by id.
func (c *Catalog) DeliveryOption(id string) (DeliveryOption, bool) {
	opt, ok := c.optionsByID[id]
	return opt, ok
}

// DefaultDeliveryOption returns the option assigned to newly created
// cart lines: the first entry in declared catalog order.
func (c *Catalog) DefaultDeliveryOption() DeliveryOption {
	return c.deliveryOptions[0]
}

// Products returns all products in declared order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// DeliveryOptions returns all delivery options in declared order.
func (c *Catalog) DeliveryOptions() []DeliveryOption {
	out := make([]DeliveryOption, len(c.deliveryOptions))
	copy(out, c.deliveryOptions)
	return out
}

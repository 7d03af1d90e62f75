// internal/domain/order/entity.go
package order

import "time"

// Order is the immutable record of a completed checkout. It snapshots
// everything it needs at placement time, so later catalog or cart
// changes never affect it. Orders are append-only: created exactly
// once, never mutated or deleted.
type Order struct {
	ID         string      `json:"id"`
	PlacedAt   time.Time   `json:"placed_at"`
	TotalCents int64       `json:"total_cents"`
	Items      []OrderItem `json:"items"`
}

// OrderItem is a cart line resolved against the catalogs at placement
// time, decoupled from future catalog changes.
type OrderItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Image        string `json:"image"`
	PriceCents   int64  `json:"price_cents"`
	Quantity     int    `json:"quantity"`
	DeliveryDays int    `json:"delivery_days"`
}

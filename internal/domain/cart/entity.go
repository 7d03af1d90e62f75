// internal/domain/cart/entity.go
package cart

// Line represents one product's presence in the cart: the quantity
// requested and the delivery option chosen for it. ProductID is unique
// across the lines of a store; adding an existing product increments
// its quantity instead of appending a duplicate line.
type Line struct {
	ProductID        string `json:"product_id"`
	Quantity         int    `json:"quantity"`
	DeliveryOptionID string `json:"delivery_option_id"`
}

// internal/domain/order/finalizer.go
package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/pricing"
	"github.com/your-org/storefront-backend/internal/infrastructure/storage"
)

// ErrEmptyOrder is returned when checkout is attempted with no
// resolvable cart lines.
var ErrEmptyOrder = errors.New("order: no resolvable cart lines")

// Finalizer turns the current cart into an immutable order record on
// checkout and appends it to the session's order history.
type Finalizer struct {
	storage storage.Store
	catalog *catalog.Catalog
	taxRate float64
	now     func() time.Time
	newID   func() string
}

// NewFinalizer creates an order finalizer.
func NewFinalizer(st storage.Store, cat *catalog.Catalog, taxRate float64) *Finalizer {
	return &Finalizer{
		storage: st,
		catalog: cat,
		taxRate: taxRate,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   func() string { return uuid.New().String() },
	}
}

// PlaceOrder snapshots the cart store into an order, prepends it to
// the session's order history, and clears the cart.
//
// Lines with stale references are skipped with the same exclusion
// policy the pricing engine applies, so the recorded total and the
// displayed total never diverge. The history write happens strictly
// before the cart is cleared: a crash between the two leaves the order
// recorded and the cart still reconstructible, never a lost purchase.
// Any persistence failure aborts the whole operation with the cart
// untouched; retrying is the caller's decision.
func (f *Finalizer) PlaceOrder(ctx context.Context, sessionID string, store *cart.Store) (*Order, error) {
	lines := store.Lines()

	items := make([]OrderItem, 0, len(lines))
	for _, line := range lines {
		product, ok := f.catalog.Product(line.ProductID)
		if !ok {
			continue
		}
		option, ok := f.catalog.DeliveryOption(line.DeliveryOptionID)
		if !ok {
			continue
		}

		items = append(items, OrderItem{
			ID:           product.ID,
			Name:         product.Name,
			Image:        product.Image,
			PriceCents:   product.PriceCents,
			Quantity:     line.Quantity,
			DeliveryDays: option.DeliveryDays,
		})
	}

	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	breakdown := pricing.Compute(lines, f.catalog, f.taxRate)

	order := &Order{
		ID:         f.newID(),
		PlacedAt:   f.now(),
		TotalCents: breakdown.TotalCents,
		Items:      items,
	}

	history, err := f.History(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Most-recent-first
	history = append([]Order{*order}, history...)

	if err := f.persistHistory(ctx, sessionID, history); err != nil {
		return nil, err
	}

	if err := store.Clear(ctx); err != nil {
		return nil, fmt.Errorf("order %s recorded but cart not cleared: %w", order.ID, err)
	}

	return order, nil
}

// History returns the session's placed orders, most recent first.
func (f *Finalizer) History(ctx context.Context, sessionID string) ([]Order, error) {
	data, err := f.storage.Get(ctx, historyKey(sessionID))
	if errors.Is(err, storage.ErrNotFound) {
		return []Order{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load order history: %w", err)
	}

	var history []Order
	if err := json.Unmarshal([]byte(data), &history); err != nil {
		return nil, fmt.Errorf("failed to decode order history: %w", err)
	}

	return history, nil
}

// Find returns a single order from the session's history by id.
func (f *Finalizer) Find(ctx context.Context, sessionID, orderID string) (*Order, error) {
	history, err := f.History(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	for i := range history {
		if history[i].ID == orderID {
			return &history[i], nil
		}
	}

	return nil, storage.ErrNotFound
}

func (f *Finalizer) persistHistory(ctx context.Context, sessionID string, history []Order) error {
	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to serialize order history: %w", err)
	}

	if err := f.storage.Set(ctx, historyKey(sessionID), string(data)); err != nil {
		return fmt.Errorf("failed to persist order history: %w", err)
	}

	return nil
}

func historyKey(sessionID string) string {
	return fmt.Sprintf("placedOrders:%s", sessionID)
}

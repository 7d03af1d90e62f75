// internal/domain/cart/store.go
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/your-org/storefront-backend/internal/infrastructure/storage"
)

// ErrPersistence wraps storage write failures. For ordinary mutations
// the in-memory state stays authoritative and the error is a warning;
// callers that need durability (order placement) treat it as fatal.
var ErrPersistence = errors.New("cart: failed to persist")

// Store owns the ordered line list of a single cart. All mutation goes
// through its methods; every mutating operation writes the full
// serialized line list through to storage before returning, so a
// reload reconstructs identical state. A mutex serializes mutations,
// preserving the one-intent-at-a-time ordering the storefront assumes.
type Store struct {
	mu              sync.Mutex
	storage         storage.Store
	key             string
	defaultOptionID string
	logger          *logrus.Logger
	lines           []Line
}

// NewStore creates a cart store persisting under the given storage key
// and hydrates it from any previously persisted line list.
func NewStore(ctx context.Context, st storage.Store, key, defaultOptionID string, logger *logrus.Logger) (*Store, error) {
	s := &Store{
		storage:         st,
		key:             key,
		defaultOptionID: defaultOptionID,
		logger:          logger,
	}

	if err := s.hydrate(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

// AddItem adds one unit of the product to the cart. If a line for the
// product already exists its quantity is incremented; otherwise a new
// line is appended with quantity 1 and the default delivery option.
// The store performs no catalog validation; resolving the product id
// is the caller's responsibility.
func (s *Store) AddItem(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(productID); i >= 0 {
		s.lines[i].Quantity++
	} else {
		s.lines = append(s.lines, Line{
			ProductID:        productID,
			Quantity:         1,
			DeliveryOptionID: s.defaultOptionID,
		})
	}

	return s.persist(ctx)
}

// RemoveItem deletes the line for the product. Removing a product that
// is not in the cart is a no-op.
func (s *Store) RemoveItem(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productID)
	if i < 0 {
		return nil
	}

	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	return s.persist(ctx)
}

// SetQuantity sets the quantity on the matching line. The mutation is
// rejected, leaving the store unchanged, when the quantity is not
// positive or the line does not exist; the returned bool reports
// whether the cart changed.
func (s *Store) SetQuantity(ctx context.Context, productID string, quantity int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return false, nil
	}

	i := s.indexOf(productID)
	if i < 0 {
		return false, nil
	}

	s.lines[i].Quantity = quantity
	return true, s.persist(ctx)
}

// SetDeliveryOption sets the delivery option on the matching line. The
// option id is not validated against the catalog; keeping it
// resolvable is the caller's invariant. Returns false when no line
// matches the product.
func (s *Store) SetDeliveryOption(ctx context.Context, productID, deliveryOptionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productID)
	if i < 0 {
		return false, nil
	}

	s.lines[i].DeliveryOptionID = deliveryOptionID
	return true, s.persist(ctx)
}

// Lines returns the current cart lines in insertion order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Clear empties the cart. The empty line list is persisted first; if
// the write fails the in-memory lines are left untouched so the caller
// can retry without losing the cart.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	empty, err := json.Marshal([]Line{})
	if err != nil {
		return fmt.Errorf("failed to serialize empty cart: %w", err)
	}

	if err := s.storage.Set(ctx, s.key, string(empty)); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	s.lines = nil
	return nil
}

// indexOf returns the position of the line for productID, or -1.
// Callers must hold s.mu.
func (s *Store) indexOf(productID string) int {
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// persist writes the whole line list through to storage. On failure
// the in-memory state remains the source of truth for the session: the
// error is logged at warn level and returned wrapped in ErrPersistence
// so the caller can surface it. Callers must hold s.mu.
func (s *Store) persist(ctx context.Context) error {
	data, err := json.Marshal(s.lines)
	if err != nil {
		return fmt.Errorf("failed to serialize cart: %w", err)
	}

	if err := s.storage.Set(ctx, s.key, string(data)); err != nil {
		s.logger.WithFields(logrus.Fields{
			"key":   s.key,
			"error": err.Error(),
		}).Warn("cart state kept in memory, persistence failed")
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return nil
}

// hydrate loads the persisted line list, treating a missing key as an
// empty cart.
func (s *Store) hydrate(ctx context.Context) error {
	data, err := s.storage.Get(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}

	var lines []Line
	if err := json.Unmarshal([]byte(data), &lines); err != nil {
		return fmt.Errorf("failed to decode cart: %w", err)
	}

	s.lines = lines
	return nil
}

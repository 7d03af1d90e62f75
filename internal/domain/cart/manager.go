// internal/domain/cart/manager.go
package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/your-org/storefront-backend/internal/infrastructure/storage"
)

// Manager hands out one cart store per session. Stores are cached so a
// session always sees the same owning object, keeping mutations
// serialized through its mutex.
type Manager struct {
	mu              sync.Mutex
	storage         storage.Store
	defaultOptionID string
	logger          *logrus.Logger
	stores          map[string]*Store
}

// NewManager creates a cart manager backed by the given storage.
func NewManager(st storage.Store, defaultOptionID string, logger *logrus.Logger) *Manager {
	return &Manager{
		storage:         st,
		defaultOptionID: defaultOptionID,
		logger:          logger,
		stores:          make(map[string]*Store),
	}
}

// ForSession returns the cart store owning the session's lines,
// hydrating it from storage on first use.
func (m *Manager) ForSession(ctx context.Context, sessionID string) (*Store, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session id required for cart")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if store, ok := m.stores[sessionID]; ok {
		return store, nil
	}

	store, err := NewStore(ctx, m.storage, Key(sessionID), m.defaultOptionID, m.logger)
	if err != nil {
		return nil, err
	}

	m.stores[sessionID] = store
	return store, nil
}

// Key returns the storage key holding a session's serialized cart.
func Key(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}

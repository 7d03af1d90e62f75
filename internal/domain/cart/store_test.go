package cart

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-backend/internal/infrastructure/storage"
)

const defaultOption = "1"

// flakyStore wraps a real store and refuses writes on demand.
type flakyStore struct {
	storage.Store
	failWrites bool
}

func (s *flakyStore) Set(ctx context.Context, key, value string) error {
	if s.failWrites {
		return errors.New("write refused")
	}
	return s.Store.Set(ctx, key, value)
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestStore(t *testing.T, st storage.Store) *Store {
	t.Helper()
	store, err := NewStore(context.Background(), st, "cart:test", defaultOption, testLogger())
	require.NoError(t, err)
	return store
}

func TestAddItemCreatesLineWithDefaults(t *testing.T) {
	store := newTestStore(t, storage.NewMemoryStore())

	require.NoError(t, store.AddItem(context.Background(), "socks"))

	lines := store.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "socks", lines[0].ProductID)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, defaultOption, lines[0].DeliveryOptionID)
}

func TestAddItemIncrementsExistingLine(t *testing.T) {
	store := newTestStore(t, storage.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, store.AddItem(ctx, "socks"))
	require.NoError(t, store.AddItem(ctx, "basketball"))
	require.NoError(t, store.AddItem(ctx, "socks"))

	lines := store.Lines()
	require.Len(t, lines, 2, "adding an existing product must not duplicate its line")
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 1, lines[1].Quantity)
}

func TestLinesKeepInsertionOrder(t *testing.T) {
	store := newTestStore(t, storage.NewMemoryStore())
	ctx := context.Background()

	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, store.AddItem(ctx, id))
	}

	lines := store.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "c", lines[0].ProductID)
	assert.Equal(t, "a", lines[1].ProductID)
	assert.Equal(t, "b", lines[2].ProductID)
}

func TestProductIDsStayUniqueUnderMixedMutations(t *testing.T) {
	store := newTestStore(t, storage.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, store.AddItem(ctx, "a"))
	require.NoError(t, store.AddItem(ctx, "b"))
	require.NoError(t, store.RemoveItem(ctx, "a"))
	require.NoError(t, store.AddItem(ctx, "a"))
	require.NoError(t, store.AddItem(ctx, "a"))
	_, err := store.SetQuantity(ctx, "b", 5)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, line := range store.Lines() {
		assert.False(t, seen[line.ProductID], "duplicate line for %s", line.ProductID)
		seen[line.ProductID] = true
	}
}

func TestRemoveItemIsNoOpWhenAbsent(t *testing.T) {
	store := newTestStore(t, storage.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, store.AddItem(ctx, "socks"))
	require.NoError(t, store.RemoveItem(ctx, "missing"))

	assert.Len(t, store.Lines(), 1)
}

func TestSetQuantityRejectsInvalidInput(t *testing.T) {
	store := newTestStore(t, storage.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, store.AddItem(ctx, "socks"))
	before := store.Lines()

	for _, quantity := range []int{0, -1, -100} {
		changed, err := store.SetQuantity(ctx, "socks", quantity)
		require.NoError(t, err)
		assert.False(t, changed, "quantity %d must be rejected", quantity)
	}

	changed, err := store.SetQuantity(ctx, "missing", 3)
	require.NoError(t, err)
	assert.False(t, changed, "missing line must be rejected")

	assert.Equal(t, before, store.Lines(), "rejected mutations must leave the store unchanged")
}

func TestSetQuantityUpdatesLine(t *testing.T) {
	store := newTestStore(t, storage.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, store.AddItem(ctx, "socks"))

	changed, err := store.SetQuantity(ctx, "socks", 7)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 7, store.Lines()[0].Quantity)
}

func TestSetDeliveryOption(t *testing.T) {
	store := newTestStore(t, storage.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, store.AddItem(ctx, "socks"))

	changed, err := store.SetDeliveryOption(ctx, "socks", "3")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "3", store.Lines()[0].DeliveryOptionID)

	changed, err = store.SetDeliveryOption(ctx, "missing", "3")
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestReloadReconstructsIdenticalState(t *testing.T) {
	st := storage.NewMemoryStore()
	ctx := context.Background()

	store := newTestStore(t, st)
	require.NoError(t, store.AddItem(ctx, "socks"))
	require.NoError(t, store.AddItem(ctx, "socks"))
	require.NoError(t, store.AddItem(ctx, "basketball"))
	_, err := store.SetDeliveryOption(ctx, "basketball", "2")
	require.NoError(t, err)

	reloaded := newTestStore(t, st)
	assert.Equal(t, store.Lines(), reloaded.Lines())
}

func TestPersistenceFailureKeepsMemoryAuthoritative(t *testing.T) {
	flaky := &flakyStore{Store: storage.NewMemoryStore()}
	store := newTestStore(t, flaky)
	ctx := context.Background()

	flaky.failWrites = true

	err := store.AddItem(ctx, "socks")
	require.ErrorIs(t, err, ErrPersistence)

	// The session keeps working off in-memory state.
	require.Len(t, store.Lines(), 1)

	changed, err := store.SetQuantity(ctx, "socks", 4)
	assert.True(t, changed)
	require.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, 4, store.Lines()[0].Quantity)
}

func TestClearLeavesLinesOnPersistenceFailure(t *testing.T) {
	flaky := &flakyStore{Store: storage.NewMemoryStore()}
	store := newTestStore(t, flaky)
	ctx := context.Background()

	require.NoError(t, store.AddItem(ctx, "socks"))

	flaky.failWrites = true
	err := store.Clear(ctx)
	require.ErrorIs(t, err, ErrPersistence)
	assert.Len(t, store.Lines(), 1, "failed clear must not drop the cart")

	flaky.failWrites = false
	require.NoError(t, store.Clear(ctx))
	assert.Empty(t, store.Lines())
}

func TestManagerReturnsSameStorePerSession(t *testing.T) {
	manager := NewManager(storage.NewMemoryStore(), defaultOption, testLogger())
	ctx := context.Background()

	first, err := manager.ForSession(ctx, "session-a")
	require.NoError(t, err)
	second, err := manager.ForSession(ctx, "session-a")
	require.NoError(t, err)
	assert.Same(t, first, second)

	other, err := manager.ForSession(ctx, "session-b")
	require.NoError(t, err)
	require.NoError(t, other.AddItem(ctx, "socks"))
	assert.Empty(t, first.Lines(), "sessions own independent carts")

	_, err = manager.ForSession(ctx, "")
	assert.Error(t, err)
}

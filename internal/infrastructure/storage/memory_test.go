package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	_, err := st.Get(ctx, "cart:missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, st.Set(ctx, "cart:s1", `[{"product_id":"a"}]`))
	value, err := st.Get(ctx, "cart:s1")
	require.NoError(t, err)
	assert.Equal(t, `[{"product_id":"a"}]`, value)

	// Whole-value replace
	require.NoError(t, st.Set(ctx, "cart:s1", "[]"))
	value, err = st.Get(ctx, "cart:s1")
	require.NoError(t, err)
	assert.Equal(t, "[]", value)

	require.NoError(t, st.Delete(ctx, "cart:s1"))
	_, err = st.Get(ctx, "cart:s1")
	assert.ErrorIs(t, err, ErrNotFound)
}

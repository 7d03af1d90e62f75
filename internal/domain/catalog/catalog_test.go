package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupByID(t *testing.T) {
	cat, err := New(
		[]Product{
			{ID: "a", Name: "Product A", PriceCents: 1000},
			{ID: "b", Name: "Product B", PriceCents: 2500},
		},
		[]DeliveryOption{
			{ID: "free", DeliveryDays: 7, PriceCents: 0},
			{ID: "express", DeliveryDays: 1, PriceCents: 999},
		},
	)
	require.NoError(t, err)

	product, ok := cat.Product("b")
	require.True(t, ok)
	assert.Equal(t, int64(2500), product.PriceCents)

	_, ok = cat.Product("missing")
	assert.False(t, ok)

	option, ok := cat.DeliveryOption("express")
	require.True(t, ok)
	assert.Equal(t, 1, option.DeliveryDays)

	_, ok = cat.DeliveryOption("missing")
	assert.False(t, ok)
}

func TestDefaultDeliveryOptionIsFirstDeclared(t *testing.T) {
	// The default is declared order, not the cheapest option.
	cat, err := New(nil, []DeliveryOption{
		{ID: "express", DeliveryDays: 1, PriceCents: 999},
		{ID: "free", DeliveryDays: 7, PriceCents: 0},
	})
	require.NoError(t, err)

	assert.Equal(t, "express", cat.DefaultDeliveryOption().ID)
}

func TestNewRejectsInvalidCatalogs(t *testing.T) {
	_, err := New(nil, nil)
	assert.Error(t, err, "at least one delivery option is required")

	_, err = New(
		[]Product{{ID: "a"}, {ID: "a"}},
		[]DeliveryOption{{ID: "free"}},
	)
	assert.Error(t, err, "duplicate product ids are rejected")

	_, err = New(nil, []DeliveryOption{{ID: "free"}, {ID: "free"}})
	assert.Error(t, err, "duplicate option ids are rejected")
}

func TestListingsPreserveDeclaredOrder(t *testing.T) {
	products := []Product{{ID: "z"}, {ID: "a"}, {ID: "m"}}
	cat, err := New(products, SeedDeliveryOptions())
	require.NoError(t, err)

	listed := cat.Products()
	require.Len(t, listed, 3)
	assert.Equal(t, "z", listed[0].ID)
	assert.Equal(t, "a", listed[1].ID)
	assert.Equal(t, "m", listed[2].ID)
}

func TestSeedCatalog(t *testing.T) {
	cat, err := NewFromSeed()
	require.NoError(t, err)

	assert.NotEmpty(t, cat.Products())
	require.NotEmpty(t, cat.DeliveryOptions())
	assert.Equal(t, "1", cat.DefaultDeliveryOption().ID)
	assert.True(t, cat.DefaultDeliveryOption().IsFree())

	for _, p := range cat.Products() {
		assert.GreaterOrEqual(t, p.PriceCents, int64(0))
		assert.GreaterOrEqual(t, p.Rating.Stars, 0.0)
		assert.LessOrEqual(t, p.Rating.Stars, 5.0)
	}
}

package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleProducts(t *testing.T) {
	samples := SampleProducts()
	require.Len(t, samples, 3)

	for _, p := range samples {
		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.Category)
		assert.Equal(t, "Nova", p.Brand)
		assert.GreaterOrEqual(t, p.Price, 0.0)
		assert.GreaterOrEqual(t, p.Rating, 0.0)
		assert.LessOrEqual(t, p.Rating, 5.0)
		assert.GreaterOrEqual(t, p.StockQty, 0)
		assert.True(t, p.Id.IsZero(), "sample identities are store-assigned")
	}

	// Searching the seeded catalog for "cotton" must hit the tee via its tags.
	assert.Contains(t, samples[0].Tags, "cotton")
}

func TestSeedProductsUnconfiguredStore(t *testing.T) {
	r := newRouter(nil)
	w := doJSON(t, r, http.MethodGet, "/api/seed", "")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Database not configured", decodeBody(t, w)["error"])
}

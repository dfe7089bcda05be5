package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func TestCreateProductToModelDefaults(t *testing.T) {
	d := CreateProductDTO{
		Title:    "X",
		Price:    f64(10),
		Category: "C",
	}

	p := d.ToModel()

	assert.Equal(t, "X", p.Title)
	assert.Nil(t, p.Description)
	assert.Equal(t, 10.0, p.Price)
	assert.Equal(t, "C", p.Category)
	assert.Equal(t, "Nova", p.Brand)
	assert.Equal(t, []string{}, p.Images)
	assert.Equal(t, []string{"XS", "S", "M", "L", "XL"}, p.Sizes)
	assert.Equal(t, []string{}, p.Colors)
	assert.True(t, p.InStock)
	assert.Equal(t, 50, p.StockQty)
	assert.Equal(t, 4.5, p.Rating)
	assert.Equal(t, []string{}, p.Tags)
}

func TestCreateProductToModelKeepsExplicitZeroes(t *testing.T) {
	desc := "plain"
	brand := ""
	inStock := false
	qty := 0
	rating := 0.0
	sizes := []string{}
	tags := []string{"sale"}

	d := CreateProductDTO{
		Title:       "X",
		Description: &desc,
		Price:       f64(0),
		Category:    "C",
		Brand:       &brand,
		Sizes:       &sizes,
		InStock:     &inStock,
		StockQty:    &qty,
		Rating:      &rating,
		Tags:        &tags,
	}

	p := d.ToModel()

	require.NotNil(t, p.Description)
	assert.Equal(t, "plain", *p.Description)
	assert.Equal(t, 0.0, p.Price)
	assert.Equal(t, "", p.Brand, "explicit empty brand must not be replaced by the default")
	assert.Equal(t, []string{}, p.Sizes, "explicit empty sizes must not get the default set")
	assert.False(t, p.InStock)
	assert.Equal(t, 0, p.StockQty)
	assert.Equal(t, 0.0, p.Rating)
	assert.Equal(t, []string{"sale"}, p.Tags)
}

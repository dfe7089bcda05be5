package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/novaclothing/novabackend/database"
	"github.com/novaclothing/novabackend/models"
)

// SeedProducts inserts the fixed sample catalog once: it does nothing when
// the product collection already has documents. The count-then-insert
// sequence is not atomic, so two concurrent first calls can both seed;
// that race is accepted for what is a one-time setup endpoint.
func SeedProducts(store *database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if !store.Available() {
			respondStoreUnavailable(c)
			return
		}

		count, err := store.Count(ctx, database.ProductCollection)
		if err != nil {
			respondStoreError(c, err)
			return
		}
		if count > 0 {
			c.JSON(http.StatusOK, gin.H{"seeded": false, "message": "Products already exist"})
			return
		}

		samples := SampleProducts()
		for _, p := range samples {
			if _, err := database.Insert(ctx, store, database.ProductCollection, p); err != nil {
				respondStoreError(c, err)
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"seeded": true, "count": len(samples)})
	}
}

// SampleProducts is the fixed Nova starter catalog.
func SampleProducts() []models.Product {
	return []models.Product{
		{
			Title:       "Nova Essential Tee",
			Description: strptr("Ultra-soft cotton tee with a tailored fit."),
			Price:       24.99,
			Category:    "T-Shirts",
			Brand:       "Nova",
			Images: []string{
				"https://images.unsplash.com/photo-1541099649105-f69ad21f3246?q=80&w=1200&auto=format&fit=crop",
			},
			Sizes:    []string{"S", "M", "L", "XL"},
			Colors:   []string{"Black", "White", "Navy"},
			InStock:  true,
			StockQty: 150,
			Rating:   4.6,
			Tags:     []string{"tee", "cotton", "basic"},
		},
		{
			Title:       "Nova Performance Hoodie",
			Description: strptr("Lightweight hoodie for everyday comfort."),
			Price:       49.99,
			Category:    "Hoodies",
			Brand:       "Nova",
			Images: []string{
				"https://images.unsplash.com/photo-1520975693415-1f3f1a1c9b70?q=80&w=1200&auto=format&fit=crop",
			},
			Sizes:    []string{"S", "M", "L", "XL"},
			Colors:   []string{"Charcoal", "Olive"},
			InStock:  true,
			StockQty: 90,
			Rating:   4.7,
			Tags:     []string{"hoodie", "performance"},
		},
		{
			Title:       "Nova Classic Cap",
			Description: strptr("Adjustable cap with embroidered Nova logo."),
			Price:       19.99,
			Category:    "Accessories",
			Brand:       "Nova",
			Images: []string{
				"https://images.unsplash.com/photo-1548883354-7622d2c61d1d?q=80&w=1200&auto=format&fit=crop",
			},
			Sizes:    []string{"One Size"},
			Colors:   []string{"Black", "Khaki"},
			InStock:  true,
			StockQty: 120,
			Rating:   4.4,
			Tags:     []string{"cap", "hat"},
		},
	}
}

func strptr(s string) *string { return &s }

package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validOrderBody = `{
	"items": [
		{"product_id": "abc", "title": "Nova Essential Tee", "price": 24.99, "quantity": 2}
	],
	"customer": {
		"name": "Ada",
		"email": "ada@example.com",
		"address_line1": "1 Main St",
		"city": "Springfield",
		"state": "IL",
		"postal_code": "62704"
	},
	"subtotal": 49.98,
	"total": 49.98
}`

func TestCreateOrderRejectsInvalidPayloads(t *testing.T) {
	r := newRouter(nil)

	tests := []struct {
		name string
		body string
	}{
		{"empty items", `{"items": [], "customer": {"name": "A", "email": "a@b.co", "address_line1": "1", "city": "S", "state": "IL", "postal_code": "1"}, "subtotal": 0, "total": 0}`},
		{"item without quantity", `{"items": [{"product_id": "abc", "title": "T", "price": 1}], "customer": {"name": "A", "email": "a@b.co", "address_line1": "1", "city": "S", "state": "IL", "postal_code": "1"}, "subtotal": 0, "total": 0}`},
		{"missing customer email", `{"items": [{"product_id": "abc", "title": "T", "price": 1, "quantity": 1}], "customer": {"name": "A", "address_line1": "1", "city": "S", "state": "IL", "postal_code": "1"}, "subtotal": 0, "total": 0}`},
		{"missing subtotal", `{"items": [{"product_id": "abc", "title": "T", "price": 1, "quantity": 1}], "customer": {"name": "A", "email": "a@b.co", "address_line1": "1", "city": "S", "state": "IL", "postal_code": "1"}, "total": 0}`},
		{"unknown status", `{"items": [{"product_id": "abc", "title": "T", "price": 1, "quantity": 1}], "customer": {"name": "A", "email": "a@b.co", "address_line1": "1", "city": "S", "state": "IL", "postal_code": "1"}, "subtotal": 0, "total": 0, "status": "refunded"}`},
		{"negative shipping", `{"items": [{"product_id": "abc", "title": "T", "price": 1, "quantity": 1}], "customer": {"name": "A", "email": "a@b.co", "address_line1": "1", "city": "S", "state": "IL", "postal_code": "1"}, "subtotal": 0, "shipping": -1, "total": 0}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/orders", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func TestCreateOrderUnconfiguredStore(t *testing.T) {
	r := newRouter(nil)
	w := doJSON(t, r, http.MethodPost, "/api/orders", validOrderBody)

	require.Equal(t, http.StatusInternalServerError, w.Code, w.Body.String())
	assert.Equal(t, "Database not configured", decodeBody(t, w)["error"])
}

package dto

import "github.com/novaclothing/novabackend/models"

// CreateProductDTO is the product-creation request body. Fields that carry
// a default are pointers so that "omitted" and "explicitly zero" can be
// told apart: defaults apply only to omitted fields.
type CreateProductDTO struct {
	Title       string    `json:"title" binding:"required"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price" binding:"required,gte=0"`
	Category    string    `json:"category" binding:"required"`
	Brand       *string   `json:"brand"`
	Images      *[]string `json:"images"`
	Sizes       *[]string `json:"sizes"`
	Colors      *[]string `json:"colors"`
	InStock     *bool     `json:"in_stock"`
	StockQty    *int      `json:"stock_qty" binding:"omitempty,gte=0"`
	Rating      *float64  `json:"rating" binding:"omitempty,gte=0,lte=5"`
	Tags        *[]string `json:"tags"`
}

// ToModel builds the document to persist, filling catalog defaults for
// every omitted field.
func (d CreateProductDTO) ToModel() models.Product {
	p := models.Product{
		Title:       d.Title,
		Description: d.Description,
		Price:       *d.Price,
		Category:    d.Category,
		Brand:       "Nova",
		Images:      []string{},
		Sizes:       []string{"XS", "S", "M", "L", "XL"},
		Colors:      []string{},
		InStock:     true,
		StockQty:    50,
		Rating:      4.5,
		Tags:        []string{},
	}
	if d.Brand != nil {
		p.Brand = *d.Brand
	}
	if d.Images != nil {
		p.Images = *d.Images
	}
	if d.Sizes != nil {
		p.Sizes = *d.Sizes
	}
	if d.Colors != nil {
		p.Colors = *d.Colors
	}
	if d.InStock != nil {
		p.InStock = *d.InStock
	}
	if d.StockQty != nil {
		p.StockQty = *d.StockQty
	}
	if d.Rating != nil {
		p.Rating = *d.Rating
	}
	if d.Tags != nil {
		p.Tags = *d.Tags
	}
	return p
}

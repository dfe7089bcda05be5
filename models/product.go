package models

import "go.mongodb.org/mongo-driver/v2/bson"

// Product is a catalog item as stored in the "product" collection.
// Products are write-once: there is no update or delete endpoint.
type Product struct {
	Id          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string        `bson:"title" json:"title"`
	Description *string       `bson:"description" json:"description"`
	Price       float64       `bson:"price" json:"price"`
	Category    string        `bson:"category" json:"category"`
	Brand       string        `bson:"brand" json:"brand"`
	Images      []string      `bson:"images" json:"images"`
	Sizes       []string      `bson:"sizes" json:"sizes"`
	Colors      []string      `bson:"colors" json:"colors"`
	InStock     bool          `bson:"in_stock" json:"in_stock"`
	StockQty    int           `bson:"stock_qty" json:"stock_qty"`
	Rating      float64       `bson:"rating" json:"rating"`
	Tags        []string      `bson:"tags" json:"tags"`
}

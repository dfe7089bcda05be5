package models

import "go.mongodb.org/mongo-driver/v2/bson"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderItem is a line item embedded in an Order. Title and price are
// snapshots taken at order time; product_id is an opaque reference and
// is not checked against the product collection.
type OrderItem struct {
	ProductID string  `bson:"product_id" json:"product_id"`
	Title     string  `bson:"title" json:"title"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Size      string  `bson:"size,omitempty" json:"size,omitempty"`
	Color     string  `bson:"color,omitempty" json:"color,omitempty"`
	Image     string  `bson:"image,omitempty" json:"image,omitempty"`
}

// Customer is the shipping/contact record embedded in an Order.
type Customer struct {
	Name         string `bson:"name" json:"name"`
	Email        string `bson:"email" json:"email"`
	Phone        string `bson:"phone,omitempty" json:"phone,omitempty"`
	AddressLine1 string `bson:"address_line1" json:"address_line1"`
	AddressLine2 string `bson:"address_line2,omitempty" json:"address_line2,omitempty"`
	City         string `bson:"city" json:"city"`
	State        string `bson:"state" json:"state"`
	PostalCode   string `bson:"postal_code" json:"postal_code"`
	Country      string `bson:"country" json:"country"`
}

// Order is a purchase record in the "order" collection. Orders are
// created once and never mutated by this service.
type Order struct {
	Id       bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Items    []OrderItem   `bson:"items" json:"items"`
	Customer Customer      `bson:"customer" json:"customer"`
	Subtotal float64       `bson:"subtotal" json:"subtotal"`
	Shipping float64       `bson:"shipping" json:"shipping"`
	Total    float64       `bson:"total" json:"total"`
	Status   OrderStatus   `bson:"status" json:"status"`
	Notes    string        `bson:"notes,omitempty" json:"notes,omitempty"`
}

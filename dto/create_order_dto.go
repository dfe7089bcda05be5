package dto

import "github.com/novaclothing/novabackend/models"

type OrderItemDTO struct {
	ProductID string   `json:"product_id" binding:"required"`
	Title     string   `json:"title" binding:"required"`
	Price     *float64 `json:"price" binding:"required"`
	Quantity  int      `json:"quantity" binding:"required,gte=1"`
	Size      string   `json:"size"`
	Color     string   `json:"color"`
	Image     string   `json:"image"`
}

type CustomerDTO struct {
	Name         string  `json:"name" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	Phone        string  `json:"phone"`
	AddressLine1 string  `json:"address_line1" binding:"required"`
	AddressLine2 string  `json:"address_line2"`
	City         string  `json:"city" binding:"required"`
	State        string  `json:"state" binding:"required"`
	PostalCode   string  `json:"postal_code" binding:"required"`
	Country      *string `json:"country"`
}

// CreateOrderDTO is the order-creation request body. Status must be one of
// the order lifecycle values; no transition rules are enforced beyond that.
// Total is accepted as sent and is not reconciled against subtotal+shipping.
type CreateOrderDTO struct {
	Items    []OrderItemDTO `json:"items" binding:"required,min=1,dive"`
	Customer CustomerDTO    `json:"customer" binding:"required"`
	Subtotal *float64       `json:"subtotal" binding:"required,gte=0"`
	Shipping *float64       `json:"shipping" binding:"omitempty,gte=0"`
	Total    *float64       `json:"total" binding:"required,gte=0"`
	Status   *string        `json:"status" binding:"omitempty,oneof=pending paid shipped delivered cancelled"`
	Notes    string         `json:"notes"`
}

func (d CreateOrderDTO) ToModel() models.Order {
	items := make([]models.OrderItem, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, models.OrderItem{
			ProductID: it.ProductID,
			Title:     it.Title,
			Price:     *it.Price,
			Quantity:  it.Quantity,
			Size:      it.Size,
			Color:     it.Color,
			Image:     it.Image,
		})
	}

	customer := models.Customer{
		Name:         d.Customer.Name,
		Email:        d.Customer.Email,
		Phone:        d.Customer.Phone,
		AddressLine1: d.Customer.AddressLine1,
		AddressLine2: d.Customer.AddressLine2,
		City:         d.Customer.City,
		State:        d.Customer.State,
		PostalCode:   d.Customer.PostalCode,
		Country:      "US",
	}
	if d.Customer.Country != nil {
		customer.Country = *d.Customer.Country
	}

	o := models.Order{
		Items:    items,
		Customer: customer,
		Subtotal: *d.Subtotal,
		Total:    *d.Total,
		Status:   models.OrderStatusPending,
		Notes:    d.Notes,
	}
	if d.Shipping != nil {
		o.Shipping = *d.Shipping
	}
	if d.Status != nil {
		o.Status = models.OrderStatus(*d.Status)
	}
	return o
}

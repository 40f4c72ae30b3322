package model

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCanceled  OrderStatus = "CANCELED"
)

// Order owns one customer, one payment and a set of products.
type Order struct {
	ID            int64       `json:"id"`
	CreatedDate   time.Time   `json:"created_date"`
	DeliveredDate *time.Time  `json:"delivered_date,omitempty"`
	Status        OrderStatus `json:"status"`
	Customer      Customer    `json:"customer"`
	Payment       Payment     `json:"payment"`
	Products      []Product   `json:"products"`
}

type CreateOrderRequest struct {
	CreatedDate   time.Time   `json:"created_date"`
	DeliveredDate *time.Time  `json:"delivered_date,omitempty"`
	Status        OrderStatus `json:"status" validate:"omitempty,oneof=PENDING PREPARING SHIPPED DELIVERED CANCELED"`
	CustomerID    int64       `json:"customer_id" validate:"gt=0"`
	PaymentID     int64       `json:"payment_id" validate:"gt=0"`
	ProductIDs    []int64     `json:"product_ids" validate:"dive,gt=0"`
}

type UpdateOrderRequest struct {
	CreatedDate   time.Time   `json:"created_date"`
	DeliveredDate *time.Time  `json:"delivered_date,omitempty"`
	Status        OrderStatus `json:"status" validate:"omitempty,oneof=PENDING PREPARING SHIPPED DELIVERED CANCELED"`
	CustomerID    int64       `json:"customer_id" validate:"gt=0"`
	PaymentID     int64       `json:"payment_id" validate:"gt=0"`
	ProductIDs    []int64     `json:"product_ids" validate:"dive,gt=0"`
}

// OrderResponse flattens the order's references into ids.
type OrderResponse struct {
	ID            int64       `json:"id"`
	CreatedDate   time.Time   `json:"created_date"`
	DeliveredDate *time.Time  `json:"delivered_date,omitempty"`
	Status        OrderStatus `json:"status"`
	CustomerID    int64       `json:"customer_id"`
	PaymentID     int64       `json:"payment_id"`
	ProductIDs    []int64     `json:"product_ids"`
}

func NewOrderResponse(o *Order) OrderResponse {
	ids := make([]int64, 0, len(o.Products))
	for _, p := range o.Products {
		ids = append(ids, p.ID)
	}
	return OrderResponse{
		ID:            o.ID,
		CreatedDate:   o.CreatedDate,
		DeliveredDate: o.DeliveredDate,
		Status:        o.Status,
		CustomerID:    o.Customer.ID,
		PaymentID:     o.Payment.ID,
		ProductIDs:    ids,
	}
}

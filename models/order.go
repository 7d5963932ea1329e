package models

import "time"

// OrderStatus represents all possible states of an order. Transitions are
// enforced by the backend-of-record; the statemachine package mirrors the
// legal progression so views can fail fast.
type OrderStatus string

const (
	StatusPlaced    OrderStatus = "PLACED"
	StatusPreparing OrderStatus = "PREPARING"
	StatusReady     OrderStatus = "READY"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

type Order struct {
	ID              string         `json:"id"`
	CustomerID      string         `json:"customerId"`
	ProviderID      string         `json:"providerId"`
	Status          OrderStatus    `json:"status"`
	DeliveryAddress string         `json:"deliveryAddress"`
	TotalAmount     float64        `json:"totalAmount"`
	Items           []OrderItem    `json:"items"`
	Customer        *OrderCustomer `json:"customer,omitempty"`
	Provider        *NameRef       `json:"provider,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

type OrderItem struct {
	ID       string     `json:"id,omitempty"`
	MealID   string     `json:"mealId"`
	Quantity int        `json:"quantity"`
	Price    float64    `json:"price,omitempty"` // snapshot price at time of order
	Meal     *OrderMeal `json:"meal,omitempty"`
}

// OrderMeal is the joined meal summary on an order item
type OrderMeal struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// OrderCustomer is the joined customer summary on an order
type OrderCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CreateOrderPayload struct {
	DeliveryAddress string            `json:"deliveryAddress" binding:"required"`
	Items           []CreateOrderItem `json:"items" binding:"required,min=1,dive"`
}

type CreateOrderItem struct {
	MealID   string `json:"mealId" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// OrderStatusPayload is the PATCH body for a status transition request
type OrderStatusPayload struct {
	Status OrderStatus `json:"status"`
}

package models

import "time"

// OrderDB represents an order row in the database. Every order belongs to
// exactly one user via CreatedBy; all queries filter on that column.
type OrderDB struct {
	ID           int64     `json:"id" db:"id"`
	CustomerName string    `json:"customer_name" db:"customer_name"`
	Phone        string    `json:"phone" db:"phone"`
	Prescription string    `json:"prescription" db:"prescription"`
	FrameType    string    `json:"frame_type" db:"frame_type"`
	LensType     string    `json:"lens_type" db:"lens_type"`
	TotalAmount  float64   `json:"total_amount" db:"total_amount"`
	Status       string    `json:"status" db:"status"`
	CreatedBy    int64     `json:"created_by" db:"created_by"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// CreateOrderRequest represents the JSON body for creating an order.
// All fields are required.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	// Customer full name
	// required: true
	// example: Ivan Petrov
	CustomerName string `json:"customer_name"`

	// Contact phone
	// required: true
	// example: +7-900-000-00-00
	Phone string `json:"phone"`

	// Prescription text
	// required: true
	Prescription string `json:"prescription"`

	// Frame type
	// required: true
	// example: full-rim
	FrameType string `json:"frame_type"`

	// Lens type
	// required: true
	// example: single-vision
	LensType string `json:"lens_type"`

	// Order total
	// required: true
	// example: 149.90
	TotalAmount float64 `json:"total_amount"`

	// Order status
	// required: true
	// example: pending
	Status string `json:"status"`
}

// UpdateOrderRequest represents the JSON body for a partial order update.
// Absent fields are left unchanged.
// swagger:model UpdateOrderRequest
type UpdateOrderRequest struct {
	CustomerName *string  `json:"customer_name,omitempty"`
	Phone        *string  `json:"phone,omitempty"`
	Prescription *string  `json:"prescription,omitempty"`
	FrameType    *string  `json:"frame_type,omitempty"`
	LensType     *string  `json:"lens_type,omitempty"`
	TotalAmount  *float64 `json:"total_amount,omitempty"`
	Status       *string  `json:"status,omitempty"`
}

// OrderResponse represents an order returned to the client.
// swagger:model OrderResponse
type OrderResponse struct {
	ID           int64     `json:"id"`
	CustomerName string    `json:"customer_name"`
	Phone        string    `json:"phone"`
	Prescription string    `json:"prescription"`
	FrameType    string    `json:"frame_type"`
	LensType     string    `json:"lens_type"`
	TotalAmount  float64   `json:"total_amount"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ListOrdersResponse represents one page of orders plus the full count.
// swagger:model ListOrdersResponse
type ListOrdersResponse struct {
	Items []OrderResponse `json:"items"`
	Total int64           `json:"total"`
}

// OrderResponseFromDB maps a database row to its client representation.
func OrderResponseFromDB(o *OrderDB) OrderResponse {
	return OrderResponse{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		Phone:        o.Phone,
		Prescription: o.Prescription,
		FrameType:    o.FrameType,
		LensType:     o.LensType,
		TotalAmount:  o.TotalAmount,
		Status:       o.Status,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

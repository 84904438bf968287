package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/small-lei/ya-admin/internal/logger"
	"github.com/small-lei/ya-admin/internal/middlewares"
	"github.com/small-lei/ya-admin/internal/models"
)

// OrderCreator defines the interface that the service must implement.
type OrderCreator interface {
	Create(ctx context.Context, ownerID int64, req models.CreateOrderRequest) (*models.OrderResponse, error)
}

// OrderErrorResponse represents an error response for order endpoints
// swagger:model OrderErrorResponse
type OrderErrorResponse struct {
	// Error message
	// default: Order not found
	Error string `json:"error"`
}

// NewCreateOrderHandler returns an HTTP handler for creating an order.
// @Summary Create order
// @Description Creates an order owned by the authenticated user
// @Tags orders
// @Accept json
// @Produce json
// @Param createOrderRequest body models.CreateOrderRequest true "Order to create"
// @Success 201 {object} models.OrderResponse "Created order"
// @Failure 400 {object} handlers.OrderErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.OrderErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.OrderErrorResponse "Internal server error"
// @Router /api/orders/ [post]
// @Security BearerAuth
func NewCreateOrderHandler(svc OrderCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(OrderErrorResponse{
				Error: "invalid or missing token",
			})
			return
		}

		var req models.CreateOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(OrderErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if msg, ok := validateCreateOrder(req); !ok {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(OrderErrorResponse{
				Error: msg,
			})
			return
		}

		order, err := svc.Create(r.Context(), ownerID, req)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(OrderErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(order)
	}
}

// validateCreateOrder checks that every required field is present.
func validateCreateOrder(req models.CreateOrderRequest) (string, bool) {
	switch {
	case req.CustomerName == "":
		return "customer_name is required", false
	case req.Phone == "":
		return "phone is required", false
	case req.Prescription == "":
		return "prescription is required", false
	case req.FrameType == "":
		return "frame_type is required", false
	case req.LensType == "":
		return "lens_type is required", false
	case req.Status == "":
		return "status is required", false
	}
	return "", true
}

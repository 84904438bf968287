package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/small-lei/ya-admin/internal/logger"
	"github.com/small-lei/ya-admin/internal/middlewares"
	"github.com/small-lei/ya-admin/internal/models"
	"github.com/small-lei/ya-admin/internal/services"
)

// OrderUpdater defines the interface that the service must implement.
type OrderUpdater interface {
	Update(ctx context.Context, id, ownerID int64, req models.UpdateOrderRequest) (*models.OrderResponse, error)
}

// NewUpdateOrderHandler returns an HTTP handler for partially updating an
// order. Only the fields present in the body change; updated_at always
// advances.
// @Summary Update order
// @Description Applies a partial update to one of the authenticated user's orders
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param updateOrderRequest body models.UpdateOrderRequest true "Fields to update"
// @Success 200 {object} models.OrderResponse "Updated order"
// @Failure 400 {object} handlers.OrderErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.OrderErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.OrderErrorResponse "Order not found"
// @Failure 500 {object} handlers.OrderErrorResponse "Internal server error"
// @Router /api/orders/{id} [put]
// @Security BearerAuth
func NewUpdateOrderHandler(svc OrderUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(OrderErrorResponse{
				Error: "invalid or missing token",
			})
			return
		}

		id, err := orderIDFromURL(r)
		if err != nil {
			writeOrderNotFound(w)
			return
		}

		var req models.UpdateOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(OrderErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		order, err := svc.Update(r.Context(), id, ownerID, req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrOrderNotFound):
				writeOrderNotFound(w)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(OrderErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(order)
	}
}

// orderIDFromURL parses the {id} route parameter.
func orderIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// writeOrderNotFound writes the uniform 404 body. A malformed id, a
// missing row, and a row owned by someone else are all reported the same
// way so existence never leaks.
func writeOrderNotFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(OrderErrorResponse{
		Error: "Order not found",
	})
}

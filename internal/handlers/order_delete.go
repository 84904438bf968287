package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/small-lei/ya-admin/internal/logger"
	"github.com/small-lei/ya-admin/internal/middlewares"
	"github.com/small-lei/ya-admin/internal/services"
)

// OrderDeleter defines the interface that the service must implement.
type OrderDeleter interface {
	Delete(ctx context.Context, id, ownerID int64) error
}

// NewDeleteOrderHandler returns an HTTP handler for deleting an order.
// @Summary Delete order
// @Description Deletes one of the authenticated user's orders
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 204 "Order deleted"
// @Failure 401 {object} handlers.OrderErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.OrderErrorResponse "Order not found"
// @Failure 500 {object} handlers.OrderErrorResponse "Internal server error"
// @Router /api/orders/{id} [delete]
// @Security BearerAuth
func NewDeleteOrderHandler(svc OrderDeleter) http.HandlerFunc {
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

		err = svc.Delete(r.Context(), id, ownerID)
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

		w.WriteHeader(http.StatusNoContent)
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/small-lei/ya-admin/internal/logger"
	"github.com/small-lei/ya-admin/internal/middlewares"
	"github.com/small-lei/ya-admin/internal/models"
)

// OrderLister defines the interface that the service must implement.
type OrderLister interface {
	List(ctx context.Context, ownerID int64, page, pageSize int) (*models.ListOrdersResponse, error)
}

// NewListOrdersHandler returns an HTTP handler for listing the caller's
// orders, newest first.
// @Summary List orders
// @Description Returns one page of the authenticated user's orders plus the total count
// @Tags orders
// @Produce json
// @Param page query int false "Page number (1-indexed)" default(1)
// @Param page_size query int false "Page size" default(10)
// @Success 200 {object} models.ListOrdersResponse "Page of orders"
// @Failure 401 {object} handlers.OrderErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.OrderErrorResponse "Internal server error"
// @Router /api/orders/ [get]
// @Security BearerAuth
func NewListOrdersHandler(svc OrderLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(OrderErrorResponse{
				Error: "invalid or missing token",
			})
			return
		}

		page := queryInt(r, "page", 1)
		pageSize := queryInt(r, "page_size", 10)

		resp, err := svc.List(r.Context(), ownerID, page, pageSize)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(OrderErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

// queryInt parses an integer query parameter, falling back to def on
// absent or unparsable values.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/small-lei/ya-admin/internal/logger"
	"github.com/small-lei/ya-admin/internal/models"
)

// ErrOrderNotFound is returned when no order with the requested id is
// owned by the caller. An order owned by another user produces the same
// error as a nonexistent one.
var ErrOrderNotFound = errors.New("order not found")

// OrderReader defines read-only operations for orders.
type OrderReader interface {
	List(ctx context.Context, ownerID int64, limit, offset int) ([]models.OrderDB, error)
	Count(ctx context.Context, ownerID int64) (int64, error)
}

// OrderWriter defines write operations for orders.
type OrderWriter interface {
	Save(ctx context.Context, ownerID int64, req models.CreateOrderRequest) (*models.OrderDB, error)
	Update(ctx context.Context, id, ownerID int64, req models.UpdateOrderRequest) (*models.OrderDB, error)
	Delete(ctx context.Context, id, ownerID int64) error
}

// OrderService handles order CRUD scoped to the owning user.
type OrderService struct {
	reader OrderReader
	writer OrderWriter
}

// NewOrderService creates a new OrderService instance.
func NewOrderService(reader OrderReader, writer OrderWriter) *OrderService {
	return &OrderService{
		reader: reader,
		writer: writer,
	}
}

// Create stores a new order owned by ownerID.
func (svc *OrderService) Create(ctx context.Context, ownerID int64, req models.CreateOrderRequest) (*models.OrderResponse, error) {
	order, err := svc.writer.Save(ctx, ownerID, req)
	if err != nil {
		logger.Log.Errorw("failed to save order", "err", err)
		return nil, err
	}

	resp := models.OrderResponseFromDB(order)
	return &resp, nil
}

// List returns one page of the caller's orders, newest first, together
// with the total count of all their orders.
func (svc *OrderService) List(ctx context.Context, ownerID int64, page, pageSize int) (*models.ListOrdersResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	total, err := svc.reader.Count(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to count orders", "err", err)
		return nil, err
	}

	orders, err := svc.reader.List(ctx, ownerID, pageSize, offset)
	if err != nil {
		logger.Log.Errorw("failed to list orders", "err", err)
		return nil, err
	}

	items := make([]models.OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, models.OrderResponseFromDB(&orders[i]))
	}

	return &models.ListOrdersResponse{
		Items: items,
		Total: total,
	}, nil
}

// Update applies a partial update to the caller's order.
func (svc *OrderService) Update(ctx context.Context, id, ownerID int64, req models.UpdateOrderRequest) (*models.OrderResponse, error) {
	order, err := svc.writer.Update(ctx, id, ownerID, req)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to update order", "err", err)
		return nil, err
	}

	resp := models.OrderResponseFromDB(order)
	return &resp, nil
}

// Delete removes the caller's order.
func (svc *OrderService) Delete(ctx context.Context, id, ownerID int64) error {
	err := svc.writer.Delete(ctx, id, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrOrderNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to delete order", "err", err)
		return err
	}

	return nil
}

package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/small-lei/ya-admin/internal/logger"
	"github.com/small-lei/ya-admin/internal/models"
)

const orderColumns = `id, customer_name, phone, prescription, frame_type, lens_type, total_amount, status, created_by, created_at, updated_at`

type OrderReadRepository struct {
	db *sqlx.DB
}

func NewOrderReadRepository(db *sqlx.DB) *OrderReadRepository {
	return &OrderReadRepository{db: db}
}

// List returns one page of orders owned by ownerID, newest first.
func (r *OrderReadRepository) List(ctx context.Context, ownerID int64, limit, offset int) ([]models.OrderDB, error) {
	const query = `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE created_by = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	orders := make([]models.OrderDB, 0)
	err := r.db.SelectContext(ctx, &orders, query, ownerID, limit, offset)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID, limit, offset},
		"rows", len(orders),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return orders, nil
}

// Count returns the total number of orders owned by ownerID, independent
// of any page window.
func (r *OrderReadRepository) Count(ctx context.Context, ownerID int64) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM orders
		WHERE created_by = $1
	`

	var total int64
	err := r.db.GetContext(ctx, &total, query, ownerID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID},
		"result", total,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return total, nil
}

type OrderWriteRepository struct {
	db *sqlx.DB
}

func NewOrderWriteRepository(db *sqlx.DB) *OrderWriteRepository {
	return &OrderWriteRepository{db: db}
}

// Save inserts a new order owned by ownerID and returns the stored row
// with its generated id and timestamps.
func (r *OrderWriteRepository) Save(ctx context.Context, ownerID int64, req models.CreateOrderRequest) (*models.OrderDB, error) {
	const query = `
		INSERT INTO orders (customer_name, phone, prescription, frame_type, lens_type, total_amount, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + orderColumns + `
	`
	args := []any{req.CustomerName, req.Phone, req.Prescription, req.FrameType, req.LensType, req.TotalAmount, req.Status, ownerID}

	var order models.OrderDB
	err := r.db.GetContext(ctx, &order, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &order, nil
}

// Update applies the supplied fields to the order with the given id, owned
// by ownerID, and always refreshes updated_at. It returns sql.ErrNoRows
// when no owned row matches; an order owned by someone else is
// indistinguishable from a missing one.
func (r *OrderWriteRepository) Update(ctx context.Context, id, ownerID int64, req models.UpdateOrderRequest) (*models.OrderDB, error) {
	set := make([]string, 0, 8)
	args := make([]any, 0, 10)

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.CustomerName != nil {
		add("customer_name", *req.CustomerName)
	}
	if req.Phone != nil {
		add("phone", *req.Phone)
	}
	if req.Prescription != nil {
		add("prescription", *req.Prescription)
	}
	if req.FrameType != nil {
		add("frame_type", *req.FrameType)
	}
	if req.LensType != nil {
		add("lens_type", *req.LensType)
	}
	if req.TotalAmount != nil {
		add("total_amount", *req.TotalAmount)
	}
	if req.Status != nil {
		add("status", *req.Status)
	}
	set = append(set, "updated_at = NOW()")

	args = append(args, id, ownerID)
	query := fmt.Sprintf(`
		UPDATE orders
		SET %s
		WHERE id = $%d AND created_by = $%d
		RETURNING `+orderColumns,
		strings.Join(set, ", "), len(args)-1, len(args))

	var order models.OrderDB
	err := r.db.GetContext(ctx, &order, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &order, nil
}

// Delete removes the order with the given id owned by ownerID. It returns
// sql.ErrNoRows when no owned row matches.
func (r *OrderWriteRepository) Delete(ctx context.Context, id, ownerID int64) error {
	const query = `
		DELETE FROM orders
		WHERE id = $1 AND created_by = $2
	`
	args := []any{id, ownerID}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"papergenius_backend/platform/apperr"
)

// Repo implements the orders repository.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new orders repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

const orderColumns = `id, user_id, customer_name, contact_number, order_items, total_price, status, additional_info, order_date`

func scanOrder(row pgx.Row) (Order, error) {
	var order Order
	err := row.Scan(
		&order.ID, &order.UserID, &order.CustomerName, &order.ContactNumber,
		&order.OrderItems, &order.TotalPrice, &order.Status, &order.AdditionalInfo, &order.OrderDate,
	)
	return order, err
}

// Checkout inserts the order and deletes the consumed cart entries atomically.
// The delete is owner-scoped so a forged entry id cannot touch another cart.
func (r *Repo) Checkout(ctx context.Context, params CreateOrderParams, entryIDs []int64) (Order, error) {
	insertQuery := `
		INSERT INTO orders (user_id, customer_name, contact_number, order_items, total_price, additional_info)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + orderColumns

	var order Order
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		var scanErr error
		order, scanErr = scanOrder(tx.QueryRow(ctx, insertQuery,
			params.UserID, params.CustomerName, params.ContactNumber,
			params.OrderItems, params.TotalPrice, params.AdditionalInfo,
		))
		if scanErr != nil {
			return scanErr
		}

		_, scanErr = tx.Exec(ctx,
			`DELETE FROM cart_entries WHERE user_id = $1 AND id = ANY($2)`,
			params.UserID, entryIDs,
		)
		return scanErr
	})
	if err != nil {
		return Order{}, fmt.Errorf("checkout: %w", err)
	}

	return order, nil
}

// ListByUser returns the user's orders, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID int64) ([]Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY order_date DESC, id DESC`
	return r.queryOrders(ctx, query, userID)
}

// ListAll returns every order, newest first.
func (r *Repo) ListAll(ctx context.Context) ([]Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY order_date DESC, id DESC`
	return r.queryOrders(ctx, query)
}

// UpdateStatus changes an order's status.
func (r *Repo) UpdateStatus(ctx context.Context, id int64, status string) (Order, error) {
	query := `UPDATE orders SET status = $2 WHERE id = $1 RETURNING ` + orderColumns

	order, err := scanOrder(r.pool.QueryRow(ctx, query, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Order{}, apperr.NotFound("order not found")
		}
		return Order{}, fmt.Errorf("update order status: %w", err)
	}

	return order, nil
}

func (r *Repo) queryOrders(ctx context.Context, query string, args ...any) ([]Order, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, order)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate orders: %w", rows.Err())
	}

	return orders, nil
}

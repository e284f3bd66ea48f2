package repository

import (
	"context"
	"time"
)

// Order is a placed order with a denormalized item summary.
type Order struct {
	ID             int64
	UserID         int64
	CustomerName   string
	ContactNumber  string
	OrderItems     string
	TotalPrice     float64
	Status         string
	AdditionalInfo string
	OrderDate      time.Time
}

// CreateOrderParams carries the fields for a new order.
type CreateOrderParams struct {
	UserID         int64
	CustomerName   string
	ContactNumber  string
	OrderItems     string
	TotalPrice     float64
	AdditionalInfo string
}

// Repository defines order persistence operations.
type Repository interface {
	// Checkout inserts the order and removes the consumed cart entries in a
	// single transaction.
	Checkout(ctx context.Context, params CreateOrderParams, entryIDs []int64) (Order, error)
	ListByUser(ctx context.Context, userID int64) ([]Order, error)
	ListAll(ctx context.Context) ([]Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) (Order, error)
}

package repository

import (
	"context"
	"time"
)

// Item is a purchasable paper in the shop catalog. YearsAvailable maps a year
// key (a catalog label such as "2019 Jan", not a calendar date) to the page
// count of that sitting.
type Item struct {
	ID             int64          `json:"id"`
	Name           string         `json:"name"`
	Img            string         `json:"img"`
	YearsAvailable map[string]int `json:"yearsAvailable"`
	DateAdded      time.Time      `json:"dateAdded"`
}

// CreateItemParams holds fields for creating a catalog item.
type CreateItemParams struct {
	Name           string
	Img            string
	YearsAvailable map[string]int
}

// UpdateItemParams holds fields for updating a catalog item. Nil fields are
// left unchanged.
type UpdateItemParams struct {
	ID             int64
	Name           *string
	Img            *string
	YearsAvailable map[string]int
}

// Repository defines catalog persistence operations.
type Repository interface {
	ListItems(ctx context.Context) ([]Item, error)
	GetItem(ctx context.Context, id int64) (Item, error)
	CreateItem(ctx context.Context, params CreateItemParams) (Item, error)
	UpdateItem(ctx context.Context, params UpdateItemParams) (Item, error)
	DeleteItem(ctx context.Context, id int64) error
}

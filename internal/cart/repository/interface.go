package repository

import (
	"context"
	"time"
)

// Entry is a user-owned snapshot of a catalog selection pending checkout.
// Item fields are denormalized at add-time and do not track later catalog
// edits. OriginalItemID is a weak back-reference with no foreign key.
type Entry struct {
	ID             int64          `json:"id"`
	UserID         int64          `json:"userId"`
	OriginalItemID int64          `json:"originalItemId"`
	Name           string         `json:"name"`
	Img            string         `json:"img"`
	YearsAvailable map[string]int `json:"yearsAvailable"`
	SelectedYears  []string       `json:"selectedYears"`
	DesignType     string         `json:"designType"`
	Price          *float64       `json:"price"`
	DateAdded      time.Time      `json:"dateAdded"`
}

// InsertEntryParams holds fields for creating a cart entry.
type InsertEntryParams struct {
	UserID         int64
	OriginalItemID int64
	Name           string
	Img            string
	YearsAvailable map[string]int
	SelectedYears  []string
	DesignType     string
	Price          *float64
}

// UpdateEntryParams holds the mutable fields of a cart entry edit.
type UpdateEntryParams struct {
	ID            int64
	UserID        int64
	SelectedYears []string
	DesignType    string
	Price         *float64
}

// Repository defines cart persistence operations.
type Repository interface {
	InsertEntry(ctx context.Context, params InsertEntryParams) (Entry, error)
	ListByUser(ctx context.Context, userID int64) ([]Entry, error)
	GetEntry(ctx context.Context, userID, id int64) (Entry, error)
	UpdateEntry(ctx context.Context, params UpdateEntryParams) (Entry, error)
	DeleteEntry(ctx context.Context, userID, id int64) error
	DeleteByUser(ctx context.Context, userID int64) error
	ListByIDs(ctx context.Context, userID int64, ids []int64) ([]Entry, error)
}

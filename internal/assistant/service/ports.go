package service

import "context"

// Item is the catalog view the assistant works with.
type Item struct {
	ID             int64
	Name           string
	Img            string
	YearsAvailable map[string]int
}

// CatalogReader supplies shop inventory for the prompt and directive lookups.
type CatalogReader interface {
	ListItems(ctx context.Context) ([]Item, error)
	GetItem(ctx context.Context, id int64) (Item, error)
}

// CartInsert is a materialized cart entry produced from a directive.
type CartInsert struct {
	UserID         int64
	OriginalItemID int64
	Name           string
	Img            string
	YearsAvailable map[string]int
	SelectedYears  []string
	DesignType     string
	Price          float64
}

// CartWriter persists a cart entry atomically.
type CartWriter interface {
	InsertEntry(ctx context.Context, insert CartInsert) error
}

// Pricer computes the price of a year selection.
type Pricer interface {
	Price(yearsAvailable map[string]int, designType string, selectedYears []string) float64
}

// Generator produces the model reply for a prompt.
type Generator interface {
	Generate(ctx context.Context, systemInstruction, userMessage string) (string, error)
}

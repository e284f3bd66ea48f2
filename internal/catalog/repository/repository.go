package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"papergenius_backend/platform/apperr"
)

const itemNotFoundMessage = "item not found"

// Repo implements the catalog repository.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// ListItems returns all catalog items ordered by creation time.
func (r *Repo) ListItems(ctx context.Context) ([]Item, error) {
	query := `
		SELECT id, name, img, years_available, date_added
		FROM items
		ORDER BY date_added ASC, id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := make([]Item, 0)
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Img, &item.YearsAvailable, &item.DateAdded); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate items: %w", rows.Err())
	}

	return items, nil
}

// GetItem retrieves a catalog item by ID.
func (r *Repo) GetItem(ctx context.Context, id int64) (Item, error) {
	query := `
		SELECT id, name, img, years_available, date_added
		FROM items
		WHERE id = $1`

	var item Item
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.Name, &item.Img, &item.YearsAvailable, &item.DateAdded,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Item{}, apperr.NotFound(itemNotFoundMessage)
		}
		return Item{}, fmt.Errorf("get item by id: %w", err)
	}

	return item, nil
}

// CreateItem creates a catalog item.
func (r *Repo) CreateItem(ctx context.Context, params CreateItemParams) (Item, error) {
	query := `
		INSERT INTO items (name, img, years_available)
		VALUES ($1, $2, $3)
		RETURNING id, name, img, years_available, date_added`

	var item Item
	if err := r.pool.QueryRow(ctx, query, params.Name, params.Img, params.YearsAvailable).Scan(
		&item.ID, &item.Name, &item.Img, &item.YearsAvailable, &item.DateAdded,
	); err != nil {
		return Item{}, fmt.Errorf("create item: %w", err)
	}

	return item, nil
}

// UpdateItem updates a catalog item. Nil params leave the column unchanged.
func (r *Repo) UpdateItem(ctx context.Context, params UpdateItemParams) (Item, error) {
	query := `
		UPDATE items
		SET name = COALESCE($2, name),
			img = COALESCE($3, img),
			years_available = COALESCE($4, years_available)
		WHERE id = $1
		RETURNING id, name, img, years_available, date_added`

	var yearsArg interface{}
	if params.YearsAvailable != nil {
		yearsArg = params.YearsAvailable
	}

	var item Item
	if err := r.pool.QueryRow(ctx, query, params.ID, params.Name, params.Img, yearsArg).Scan(
		&item.ID, &item.Name, &item.Img, &item.YearsAvailable, &item.DateAdded,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Item{}, apperr.NotFound(itemNotFoundMessage)
		}
		return Item{}, fmt.Errorf("update item: %w", err)
	}

	return item, nil
}

// DeleteItem deletes a catalog item.
func (r *Repo) DeleteItem(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound(itemNotFoundMessage)
	}
	return nil
}

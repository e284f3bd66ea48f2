package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"papergenius_backend/platform/apperr"
)

const entryNotFoundMessage = "cart entry not found"

// Repo implements the cart repository.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new cart repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

const entryColumns = `id, user_id, original_item_id, name, img, years_available, selected_years, design_type, price, date_added`

func scanEntry(row pgx.Row) (Entry, error) {
	var entry Entry
	err := row.Scan(
		&entry.ID, &entry.UserID, &entry.OriginalItemID, &entry.Name, &entry.Img,
		&entry.YearsAvailable, &entry.SelectedYears, &entry.DesignType, &entry.Price, &entry.DateAdded,
	)
	return entry, err
}

// InsertEntry creates a cart entry inside its own transaction so either the
// full row is committed or nothing is.
func (r *Repo) InsertEntry(ctx context.Context, params InsertEntryParams) (Entry, error) {
	query := `
		INSERT INTO cart_entries (
			user_id, original_item_id, name, img, years_available, selected_years, design_type, price
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + entryColumns

	var entry Entry
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		var scanErr error
		entry, scanErr = scanEntry(tx.QueryRow(ctx, query,
			params.UserID, params.OriginalItemID, params.Name, params.Img,
			params.YearsAvailable, params.SelectedYears, params.DesignType, params.Price,
		))
		return scanErr
	})
	if err != nil {
		return Entry{}, fmt.Errorf("insert cart entry: %w", err)
	}

	return entry, nil
}

// ListByUser returns all cart entries owned by the user.
func (r *Repo) ListByUser(ctx context.Context, userID int64) ([]Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM cart_entries WHERE user_id = $1 ORDER BY date_added ASC, id ASC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart entries: %w", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cart entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate cart entries: %w", rows.Err())
	}

	return entries, nil
}

// GetEntry retrieves a cart entry scoped to its owner.
func (r *Repo) GetEntry(ctx context.Context, userID, id int64) (Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM cart_entries WHERE id = $1 AND user_id = $2`

	entry, err := scanEntry(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Entry{}, apperr.NotFound(entryNotFoundMessage)
		}
		return Entry{}, fmt.Errorf("get cart entry: %w", err)
	}

	return entry, nil
}

// UpdateEntry updates the selection fields of a cart entry scoped to its owner.
func (r *Repo) UpdateEntry(ctx context.Context, params UpdateEntryParams) (Entry, error) {
	query := `
		UPDATE cart_entries
		SET selected_years = $3, design_type = $4, price = $5
		WHERE id = $1 AND user_id = $2
		RETURNING ` + entryColumns

	entry, err := scanEntry(r.pool.QueryRow(ctx, query,
		params.ID, params.UserID, params.SelectedYears, params.DesignType, params.Price,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Entry{}, apperr.NotFound(entryNotFoundMessage)
		}
		return Entry{}, fmt.Errorf("update cart entry: %w", err)
	}

	return entry, nil
}

// DeleteEntry removes a cart entry scoped to its owner.
func (r *Repo) DeleteEntry(ctx context.Context, userID, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM cart_entries WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete cart entry: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound(entryNotFoundMessage)
	}
	return nil
}

// DeleteByUser removes all cart entries for a user (admin user deletion).
func (r *Repo) DeleteByUser(ctx context.Context, userID int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM cart_entries WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete cart entries by user: %w", err)
	}
	return nil
}

// ListByIDs returns the user's cart entries matching the given ids. Entries
// belonging to other users are silently excluded.
func (r *Repo) ListByIDs(ctx context.Context, userID int64, ids []int64) ([]Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM cart_entries WHERE user_id = $1 AND id = ANY($2) ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("list cart entries by ids: %w", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cart entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate cart entries: %w", rows.Err())
	}

	return entries, nil
}

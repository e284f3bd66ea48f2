// Package service implements cart business logic: range selection, pricing,
// and snapshot materialization of catalog items into cart entries.
package service

import (
	"context"
	"time"

	cartrepo "papergenius_backend/internal/cart/repository"
	"papergenius_backend/internal/cart/transport"
	catalogrepo "papergenius_backend/internal/catalog/repository"
	catalogsvc "papergenius_backend/internal/catalog/service"
	"papergenius_backend/platform/apperr"
	"papergenius_backend/platform/logger"
)

// Service provides cart operations.
type Service struct {
	repo    cartrepo.Repository
	catalog catalogrepo.Repository
	log     *logger.Logger
}

// New creates a new cart service.
func New(repo cartrepo.Repository, catalog catalogrepo.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, catalog: catalog, log: log}
}

// AddEntry materializes a catalog selection into a new cart entry. The item's
// display fields and full availability map are snapshot-copied at add time.
func (s *Service) AddEntry(ctx context.Context, userID int64, req transport.AddEntryRequest) (transport.EntryResponse, error) {
	item, err := s.catalog.GetItem(ctx, req.ItemID)
	if err != nil {
		return transport.EntryResponse{}, err
	}
	if len(item.YearsAvailable) == 0 {
		return transport.EntryResponse{}, apperr.Validation("item is out of stock")
	}

	sortedKeys := catalogsvc.SortedYearKeys(item.YearsAvailable)
	selected, err := SelectRange(sortedKeys, req.StartYear, req.EndYear)
	if err != nil {
		return transport.EntryResponse{}, err
	}

	price := TotalPrice(item.YearsAvailable, req.CoverType, selected)
	entry, err := s.repo.InsertEntry(ctx, cartrepo.InsertEntryParams{
		UserID:         userID,
		OriginalItemID: item.ID,
		Name:           item.Name,
		Img:            item.Img,
		YearsAvailable: item.YearsAvailable,
		SelectedYears:  selected,
		DesignType:     req.CoverType,
		Price:          &price,
	})
	if err != nil {
		s.log.DatabaseError("cart.insert_entry", err)
		return transport.EntryResponse{}, apperr.Internal("could not add to cart")
	}

	return toEntryResponse(entry), nil
}

// ListEntries returns the user's cart.
func (s *Service) ListEntries(ctx context.Context, userID int64) (transport.EntryListResponse, error) {
	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.log.DatabaseError("cart.list_entries", err)
		return transport.EntryListResponse{}, apperr.Internal("could not load cart")
	}

	out := make([]transport.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, toEntryResponse(entry))
	}
	return transport.EntryListResponse{Items: out}, nil
}

// GetEntry returns one cart entry owned by the user.
func (s *Service) GetEntry(ctx context.Context, userID, id int64) (transport.EntryResponse, error) {
	entry, err := s.repo.GetEntry(ctx, userID, id)
	if err != nil {
		return transport.EntryResponse{}, err
	}
	return toEntryResponse(entry), nil
}

// UpdateEntry re-selects the year range and cover of an existing entry and
// recomputes its price against the originating item's current availability.
func (s *Service) UpdateEntry(ctx context.Context, userID, id int64, req transport.UpdateEntryRequest) (transport.EntryResponse, error) {
	entry, err := s.repo.GetEntry(ctx, userID, id)
	if err != nil {
		return transport.EntryResponse{}, err
	}

	item, err := s.catalog.GetItem(ctx, entry.OriginalItemID)
	if err != nil {
		return transport.EntryResponse{}, err
	}

	sortedKeys := catalogsvc.SortedYearKeys(item.YearsAvailable)
	selected, err := SelectRange(sortedKeys, req.StartYear, req.EndYear)
	if err != nil {
		return transport.EntryResponse{}, err
	}

	price := TotalPrice(item.YearsAvailable, req.CoverType, selected)
	updated, err := s.repo.UpdateEntry(ctx, cartrepo.UpdateEntryParams{
		ID:            id,
		UserID:        userID,
		SelectedYears: selected,
		DesignType:    req.CoverType,
		Price:         &price,
	})
	if err != nil {
		return transport.EntryResponse{}, err
	}

	return toEntryResponse(updated), nil
}

// DeleteEntry removes a cart entry owned by the user.
func (s *Service) DeleteEntry(ctx context.Context, userID, id int64) error {
	return s.repo.DeleteEntry(ctx, userID, id)
}

func toEntryResponse(entry cartrepo.Entry) transport.EntryResponse {
	return transport.EntryResponse{
		ID:             entry.ID,
		OriginalItemID: entry.OriginalItemID,
		Name:           entry.Name,
		Img:            entry.Img,
		YearsAvailable: entry.YearsAvailable,
		SelectedYears:  entry.SelectedYears,
		DesignType:     entry.DesignType,
		Price:          entry.Price,
		DateAdded:      entry.DateAdded.Format(time.RFC3339),
	}
}

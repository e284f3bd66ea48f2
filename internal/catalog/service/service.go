// Package service implements catalog business logic.
package service

import (
	"context"
	"io"
	"sort"
	"strings"
	"time"

	"papergenius_backend/internal/catalog/repository"
	"papergenius_backend/internal/catalog/transport"
	"papergenius_backend/platform/apperr"
	"papergenius_backend/platform/logger"
)

// ImageStore uploads item cover images and returns a public URL.
type ImageStore interface {
	UploadImage(ctx context.Context, fileName, contentType string, body io.Reader, size int64) (string, error)
}

// Service provides catalog operations.
type Service struct {
	repo   repository.Repository
	images ImageStore
	log    *logger.Logger
}

// New creates a new catalog service.
func New(repo repository.Repository, images ImageStore, log *logger.Logger) *Service {
	return &Service{repo: repo, images: images, log: log}
}

// ListItems returns all catalog items.
func (s *Service) ListItems(ctx context.Context) (transport.ItemListResponse, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		s.log.DatabaseError("catalog.list_items", err)
		return transport.ItemListResponse{}, apperr.Internal("could not load catalog")
	}

	out := make([]transport.ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toItemResponse(item))
	}
	return transport.ItemListResponse{Items: out}, nil
}

// GetItem returns a single catalog item.
func (s *Service) GetItem(ctx context.Context, id int64) (transport.ItemResponse, error) {
	item, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return transport.ItemResponse{}, err
	}
	return toItemResponse(item), nil
}

// CreateItem creates a catalog item after normalizing its year keys.
func (s *Service) CreateItem(ctx context.Context, req transport.CreateItemRequest) (transport.ItemResponse, error) {
	years, err := cleanYears(req.YearsAvailable)
	if err != nil {
		return transport.ItemResponse{}, err
	}

	item, err := s.repo.CreateItem(ctx, repository.CreateItemParams{
		Name:           strings.TrimSpace(req.Name),
		Img:            strings.TrimSpace(req.Img),
		YearsAvailable: years,
	})
	if err != nil {
		s.log.DatabaseError("catalog.create_item", err)
		return transport.ItemResponse{}, apperr.Internal("could not create item")
	}
	return toItemResponse(item), nil
}

// UpdateItem updates a catalog item.
func (s *Service) UpdateItem(ctx context.Context, id int64, req transport.UpdateItemRequest) (transport.ItemResponse, error) {
	params := repository.UpdateItemParams{ID: id, Name: req.Name, Img: req.Img}
	if req.YearsAvailable != nil {
		years, err := cleanYears(req.YearsAvailable)
		if err != nil {
			return transport.ItemResponse{}, err
		}
		params.YearsAvailable = years
	}

	item, err := s.repo.UpdateItem(ctx, params)
	if err != nil {
		return transport.ItemResponse{}, err
	}
	return toItemResponse(item), nil
}

// DeleteItem removes a catalog item.
func (s *Service) DeleteItem(ctx context.Context, id int64) error {
	return s.repo.DeleteItem(ctx, id)
}

// UploadImage stores an item cover image and returns its URL. Returns an error
// when no image store is configured.
func (s *Service) UploadImage(ctx context.Context, fileName, contentType string, body io.Reader, size int64) (transport.ImageUploadResponse, error) {
	if s.images == nil {
		return transport.ImageUploadResponse{}, apperr.BadRequest("image uploads are not configured")
	}

	url, err := s.images.UploadImage(ctx, fileName, contentType, body, size)
	if err != nil {
		s.log.Error("image upload failed", "error", err)
		return transport.ImageUploadResponse{}, apperr.Internal("could not store image")
	}
	return transport.ImageUploadResponse{URL: url}, nil
}

// cleanYears trims year keys and rejects empty keys or negative page counts,
// mirroring the admin form behavior of skipping blank rows.
func cleanYears(in map[string]int) (map[string]int, error) {
	out := make(map[string]int, len(in))
	for key, pages := range in {
		trimmed := strings.TrimSpace(key)
		if trimmed == "" {
			continue
		}
		if pages < 0 {
			return nil, apperr.Validation("page count must not be negative")
		}
		out[trimmed] = pages
	}
	if len(out) == 0 {
		return nil, apperr.Validation("at least one year entry is required")
	}
	return out, nil
}

func toItemResponse(item repository.Item) transport.ItemResponse {
	return transport.ItemResponse{
		ID:             item.ID,
		Name:           item.Name,
		Img:            item.Img,
		YearsAvailable: item.YearsAvailable,
		SortedYears:    SortedYearKeys(item.YearsAvailable),
		DateAdded:      item.DateAdded.Format(time.RFC3339),
	}
}

// SortedYearKeys returns the item's year keys in lexicographic order. This is
// the canonical ordering used for range selection across the storefront and
// the assistant.
func SortedYearKeys(years map[string]int) []string {
	keys := make([]string, 0, len(years))
	for key := range years {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

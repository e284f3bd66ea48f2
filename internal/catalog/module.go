// Package catalog provides the catalog bounded context module.
package catalog

import (
	"papergenius_backend/internal/catalog/handler"
	"papergenius_backend/internal/catalog/repository"
	"papergenius_backend/internal/catalog/service"
	apphttp "papergenius_backend/internal/http"
	"papergenius_backend/platform/logger"
	"papergenius_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the catalog bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the catalog module. images may be nil when
// object storage is not configured; item creation then requires an image URL.
func NewModule(pool *pgxpool.Pool, images service.ImageStore, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, images, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "catalog"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// Repository returns the repository for direct access if needed.
func (m *Module) Repository() repository.Repository {
	return m.repo
}

// RegisterRoutes mounts catalog routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	// Public storefront endpoints
	ctx.V1.GET("/catalog/items", m.handler.ListItems)
	ctx.V1.GET("/catalog/items/:id", m.handler.GetItem)

	// Admin CRUD endpoints
	adminGroup := ctx.Admin.Group("/catalog")
	adminGroup.POST("/items", m.handler.CreateItem)
	adminGroup.PUT("/items/:id", m.handler.UpdateItem)
	adminGroup.DELETE("/items/:id", m.handler.DeleteItem)
	adminGroup.POST("/images", m.handler.UploadImage)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)

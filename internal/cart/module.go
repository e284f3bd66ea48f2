// Package cart provides the shopping cart bounded context module.
package cart

import (
	"papergenius_backend/internal/cart/handler"
	"papergenius_backend/internal/cart/repository"
	"papergenius_backend/internal/cart/service"
	catalogrepo "papergenius_backend/internal/catalog/repository"
	apphttp "papergenius_backend/internal/http"
	"papergenius_backend/platform/logger"
	"papergenius_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the cart bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the cart module.
func NewModule(pool *pgxpool.Pool, catalog catalogrepo.Repository, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, catalog, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "cart"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// Repository returns the repository for direct access if needed.
func (m *Module) Repository() repository.Repository {
	return m.repo
}

// RegisterRoutes mounts cart routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	cartGroup := ctx.Protected.Group("/cart")
	cartGroup.GET("/entries", m.handler.ListEntries)
	cartGroup.POST("/entries", m.handler.AddEntry)
	cartGroup.PUT("/entries/:id", m.handler.UpdateEntry)
	cartGroup.DELETE("/entries/:id", m.handler.DeleteEntry)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)

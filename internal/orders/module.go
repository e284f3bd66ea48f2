// Package orders provides the orders bounded context module.
package orders

import (
	cartrepo "papergenius_backend/internal/cart/repository"
	apphttp "papergenius_backend/internal/http"
	"papergenius_backend/internal/orders/handler"
	"papergenius_backend/internal/orders/repository"
	"papergenius_backend/internal/orders/service"
	"papergenius_backend/platform/events"
	"papergenius_backend/platform/logger"
	"papergenius_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the orders bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the orders module.
func NewModule(pool *pgxpool.Pool, cart cartrepo.Repository, customers service.CustomerDirectory, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, cart, customers, bus, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "orders"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts order routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	orderGroup := ctx.Protected.Group("/orders")
	orderGroup.POST("/checkout", m.handler.Checkout)
	orderGroup.GET("", m.handler.ListMine)

	adminGroup := ctx.Admin.Group("/orders")
	adminGroup.GET("", m.handler.ListAll)
	adminGroup.PUT("/:id/status", m.handler.UpdateStatus)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)

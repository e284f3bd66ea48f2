// Package auth provides the authentication bounded context module.
package auth

import (
	"papergenius_backend/internal/auth/handler"
	"papergenius_backend/internal/auth/repository"
	"papergenius_backend/internal/auth/service"
	cartrepo "papergenius_backend/internal/cart/repository"
	apphttp "papergenius_backend/internal/http"
	"papergenius_backend/platform/config"
	"papergenius_backend/platform/logger"
	"papergenius_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the auth bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the auth module.
func NewModule(pool *pgxpool.Pool, cart cartrepo.Repository, cfg config.AuthServiceConfig, region string, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, cart, cfg, region, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "auth"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts auth routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	authGroup := ctx.V1.Group("/auth")
	authGroup.Use(ctx.AuthRateLimiter.RateLimit())
	authGroup.POST("/register", m.handler.Register)
	authGroup.POST("/login", m.handler.Login)

	ctx.Protected.GET("/profile", m.handler.GetProfile)
	ctx.Protected.PUT("/profile", m.handler.UpdateProfile)
	ctx.Protected.PUT("/profile/password", m.handler.ChangePassword)

	adminGroup := ctx.Admin.Group("/users")
	adminGroup.GET("", m.handler.ListUsers)
	adminGroup.DELETE("/:id", m.handler.DeleteUser)
	adminGroup.PUT("/:id/password", m.handler.ResetPassword)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)

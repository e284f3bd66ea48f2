// Package assistant provides the chat assistant bounded context module.
package assistant

import (
	"context"

	"papergenius_backend/internal/assistant/handler"
	"papergenius_backend/internal/assistant/service"
	cartrepo "papergenius_backend/internal/cart/repository"
	cartsvc "papergenius_backend/internal/cart/service"
	catalogrepo "papergenius_backend/internal/catalog/repository"
	apphttp "papergenius_backend/internal/http"
	"papergenius_backend/platform/httpkit"
	"papergenius_backend/platform/logger"
)

// Module is the assistant bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the assistant module. gen may be nil when
// no model API key is configured.
func NewModule(catalog catalogrepo.Repository, cart cartrepo.Repository, gen service.Generator, log *logger.Logger) *Module {
	svc := service.New(
		catalogAdapter{repo: catalog},
		cartAdapter{repo: cart},
		pricerFunc(cartsvc.TotalPrice),
		gen,
		log,
	)
	h := handler.New(svc)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "assistant"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts assistant routes on the provided router context.
// The chat endpoint serves guests too, so it takes optional auth instead of
// the protected group.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	chatGroup := ctx.V1.Group("/assistant")
	chatGroup.Use(httpkit.OptionalAuth(ctx.Config))
	chatGroup.POST("/chat", m.handler.Chat)
}

// catalogAdapter narrows the catalog repository to the assistant's port.
type catalogAdapter struct {
	repo catalogrepo.Repository
}

func (a catalogAdapter) ListItems(ctx context.Context) ([]service.Item, error) {
	items, err := a.repo.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]service.Item, 0, len(items))
	for _, item := range items {
		out = append(out, toServiceItem(item))
	}
	return out, nil
}

func (a catalogAdapter) GetItem(ctx context.Context, id int64) (service.Item, error) {
	item, err := a.repo.GetItem(ctx, id)
	if err != nil {
		return service.Item{}, err
	}
	return toServiceItem(item), nil
}

func toServiceItem(item catalogrepo.Item) service.Item {
	return service.Item{
		ID:             item.ID,
		Name:           item.Name,
		Img:            item.Img,
		YearsAvailable: item.YearsAvailable,
	}
}

// cartAdapter narrows the cart repository to the assistant's port.
type cartAdapter struct {
	repo cartrepo.Repository
}

func (a cartAdapter) InsertEntry(ctx context.Context, insert service.CartInsert) error {
	price := insert.Price
	_, err := a.repo.InsertEntry(ctx, cartrepo.InsertEntryParams{
		UserID:         insert.UserID,
		OriginalItemID: insert.OriginalItemID,
		Name:           insert.Name,
		Img:            insert.Img,
		YearsAvailable: insert.YearsAvailable,
		SelectedYears:  insert.SelectedYears,
		DesignType:     insert.DesignType,
		Price:          &price,
	})
	return err
}

// pricerFunc adapts the cart pricing function to the assistant's port.
type pricerFunc func(yearsAvailable map[string]int, designType string, selectedYears []string) float64

func (f pricerFunc) Price(yearsAvailable map[string]int, designType string, selectedYears []string) float64 {
	return f(yearsAvailable, designType, selectedYears)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)

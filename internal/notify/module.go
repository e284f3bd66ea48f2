package notify

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	apphttp "papergenius_backend/internal/http"
	"papergenius_backend/internal/notify/transport"
	ordersvc "papergenius_backend/internal/orders/service"
	"papergenius_backend/platform/events"
	"papergenius_backend/platform/httpkit"
	"papergenius_backend/platform/logger"
	"papergenius_backend/platform/phone"
	"papergenius_backend/platform/validator"
)

// Module wires the contact endpoint and the order notification handlers.
// All delivery is fire-and-forget: enqueue failures are logged and the
// triggering request still succeeds.
type Module struct {
	enqueuer Enqueuer
	val      *validator.Validator
	region   string
	log      *logger.Logger
}

// NewModule creates the notify module. enqueuer may be nil when the task
// queue is not configured; notifications are then dropped with a log line.
func NewModule(enqueuer Enqueuer, val *validator.Validator, region string, log *logger.Logger) *Module {
	return &Module{enqueuer: enqueuer, val: val, region: region, log: log}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "notify"
}

// Subscribe registers the order-placed handler on the event bus.
func (m *Module) Subscribe(bus events.Bus) {
	bus.Subscribe(ordersvc.EventOrderPlaced, events.HandlerFunc(m.handleOrderPlaced))
}

func (m *Module) handleOrderPlaced(ctx context.Context, event events.Event) error {
	placed, ok := event.(ordersvc.OrderPlaced)
	if !ok {
		return nil
	}
	if m.enqueuer == nil {
		m.log.Warn("task queue disabled, order notifications skipped", "order_id", placed.OrderID)
		return nil
	}

	if err := m.enqueuer.EnqueueOrderAlert(ctx, OrderAlertPayload{
		OrderID:        placed.OrderID,
		CustomerName:   placed.CustomerName,
		ContactNumber:  placed.ContactNumber,
		OrderItems:     placed.OrderItems,
		TotalPrice:     placed.TotalPrice,
		AdditionalInfo: placed.AdditionalInfo,
	}); err != nil {
		m.log.Error("enqueue order alert failed", "order_id", placed.OrderID, "error", err)
	}

	if err := m.enqueuer.EnqueueOrderConfirmation(ctx, OrderConfirmationPayload{
		OrderID:       placed.OrderID,
		CustomerName:  placed.CustomerName,
		ContactNumber: placed.ContactNumber,
		OrderItems:    placed.OrderItems,
		TotalPrice:    placed.TotalPrice,
	}); err != nil {
		m.log.Error("enqueue order confirmation failed", "order_id", placed.OrderID, "error", err)
	}

	return nil
}

// Contact forwards a storefront inquiry to the shop admin.
// POST /api/v1/contact
func (m *Module) Contact(c *gin.Context) {
	var req transport.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}
	if err := m.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	if m.enqueuer != nil {
		err := m.enqueuer.EnqueueContactMessage(c.Request.Context(), ContactMessagePayload{
			Name:    req.Name,
			Email:   req.Email,
			Number:  phone.NormalizeE164Region(req.Number, m.region),
			Message: req.Message,
		})
		if err != nil {
			m.log.Error("enqueue contact message failed", "error", err)
		}
	} else {
		m.log.Warn("task queue disabled, contact message dropped")
	}

	httpkit.OK(c, transport.ContactResponse{Status: "received"})
}

// RegisterRoutes mounts notify routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/contact", m.Contact)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)

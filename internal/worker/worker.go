package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"papergenius_backend/internal/notify"
	"papergenius_backend/platform/config"
	"papergenius_backend/platform/logger"
)

// Worker processes notification tasks from the queue. Delivery is
// fire-and-forget: send failures are logged and the task is not retried
// beyond the queue's retry budget.
type Worker struct {
	server   *asynq.Server
	mux      *asynq.ServeMux
	whatsapp *notify.WhatsAppClient
	adminTo  string
	log      *logger.Logger
}

// New creates a worker bound to the configured queue.
func New(cfg config.SchedulerConfig, whatsappCfg config.WhatsAppConfig, whatsapp *notify.WhatsAppClient, log *logger.Logger) (*Worker, error) {
	opt, err := asynq.ParseRedisURI(cfg.GetRedisURL())
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: cfg.GetAsynqConcurrency(),
		Queues:      map[string]int{cfg.GetAsynqQueueName(): 1},
	})

	w := &Worker{
		server:   server,
		mux:      asynq.NewServeMux(),
		whatsapp: whatsapp,
		adminTo:  whatsappCfg.GetAdminWhatsApp(),
		log:      log,
	}

	w.mux.HandleFunc(notify.TaskOrderAlert, w.handleOrderAlert)
	w.mux.HandleFunc(notify.TaskOrderConfirmation, w.handleOrderConfirmation)
	w.mux.HandleFunc(notify.TaskContactMessage, w.handleContactMessage)

	return w, nil
}

// Run blocks processing tasks until Shutdown is called.
func (w *Worker) Run() error {
	return w.server.Run(w.mux)
}

// Shutdown stops the worker gracefully.
func (w *Worker) Shutdown() {
	w.server.Shutdown()
}

func (w *Worker) handleOrderAlert(ctx context.Context, task *asynq.Task) error {
	var payload notify.OrderAlertPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		w.log.Error("bad order alert payload", "error", err)
		return nil
	}
	if w.whatsapp == nil || w.adminTo == "" {
		w.log.Warn("whatsapp disabled, order alert dropped", "order_id", payload.OrderID)
		return nil
	}

	message := notify.AdminOrderAlert(
		payload.OrderID, payload.CustomerName, payload.ContactNumber,
		payload.OrderItems, payload.TotalPrice, payload.AdditionalInfo,
	)
	if err := w.whatsapp.Send(ctx, w.adminTo, message); err != nil {
		w.log.Error("order alert send failed", "order_id", payload.OrderID, "error", err)
	}
	return nil
}

func (w *Worker) handleOrderConfirmation(ctx context.Context, task *asynq.Task) error {
	var payload notify.OrderConfirmationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		w.log.Error("bad order confirmation payload", "error", err)
		return nil
	}
	if w.whatsapp == nil || payload.ContactNumber == "" {
		w.log.Warn("order confirmation dropped", "order_id", payload.OrderID)
		return nil
	}

	message := notify.CustomerOrderConfirmation(
		payload.OrderID, payload.CustomerName, payload.OrderItems, payload.TotalPrice,
	)
	if err := w.whatsapp.Send(ctx, payload.ContactNumber, message); err != nil {
		w.log.Error("order confirmation send failed", "order_id", payload.OrderID, "error", err)
	}
	return nil
}

func (w *Worker) handleContactMessage(ctx context.Context, task *asynq.Task) error {
	var payload notify.ContactMessagePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		w.log.Error("bad contact message payload", "error", err)
		return nil
	}
	if w.whatsapp == nil || w.adminTo == "" {
		w.log.Warn("whatsapp disabled, contact message dropped")
		return nil
	}

	message := notify.ContactInquiry(payload.Name, payload.Email, payload.Number, payload.Message)
	if err := w.whatsapp.Send(ctx, w.adminTo, message); err != nil {
		w.log.Error("contact message send failed", "error", err)
	}
	return nil
}

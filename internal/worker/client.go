// Package worker runs background notification delivery on an asynq queue.
package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"papergenius_backend/internal/notify"
	"papergenius_backend/platform/config"
)

// Client enqueues notification tasks.
type Client struct {
	client *asynq.Client
	queue  string
}

// NewClient connects an asynq client to Redis. Returns nil when Redis is not
// configured so the caller can run without background delivery.
func NewClient(cfg config.SchedulerConfig) (*Client, error) {
	if cfg.GetRedisURL() == "" {
		return nil, nil
	}

	opt, err := asynq.ParseRedisURI(cfg.GetRedisURL())
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	return &Client{
		client: asynq.NewClient(opt),
		queue:  cfg.GetAsynqQueueName(),
	}, nil
}

// Close releases the underlying Redis connections.
func (c *Client) Close() error {
	return c.client.Close()
}

// EnqueueOrderAlert schedules the admin order alert.
func (c *Client) EnqueueOrderAlert(ctx context.Context, payload notify.OrderAlertPayload) error {
	return c.enqueue(ctx, notify.TaskOrderAlert, payload)
}

// EnqueueOrderConfirmation schedules the customer order confirmation.
func (c *Client) EnqueueOrderConfirmation(ctx context.Context, payload notify.OrderConfirmationPayload) error {
	return c.enqueue(ctx, notify.TaskOrderConfirmation, payload)
}

// EnqueueContactMessage schedules a contact inquiry forward.
func (c *Client) EnqueueContactMessage(ctx context.Context, payload notify.ContactMessagePayload) error {
	return c.enqueue(ctx, notify.TaskContactMessage, payload)
}

func (c *Client) enqueue(ctx context.Context, taskType string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", taskType, err)
	}

	task := asynq.NewTask(taskType, data)
	if _, err := c.client.EnqueueContext(ctx, task, asynq.Queue(c.queue), asynq.MaxRetry(3)); err != nil {
		return fmt.Errorf("enqueue %s: %w", taskType, err)
	}
	return nil
}

// Compile-time check that Client implements notify.Enqueuer.
var _ notify.Enqueuer = (*Client)(nil)

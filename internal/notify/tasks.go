package notify

import "context"

// Task type names routed through the asynq queue.
const (
	TaskOrderAlert        = "notify.order_alert"
	TaskOrderConfirmation = "notify.order_confirmation"
	TaskContactMessage    = "notify.contact_message"
)

// OrderAlertPayload notifies the shop admin of a new order.
type OrderAlertPayload struct {
	OrderID        int64   `json:"orderId"`
	CustomerName   string  `json:"customerName"`
	ContactNumber  string  `json:"contactNumber"`
	OrderItems     string  `json:"orderItems"`
	TotalPrice     float64 `json:"totalPrice"`
	AdditionalInfo string  `json:"additionalInfo"`
}

// OrderConfirmationPayload confirms the order to the customer.
type OrderConfirmationPayload struct {
	OrderID       int64   `json:"orderId"`
	CustomerName  string  `json:"customerName"`
	ContactNumber string  `json:"contactNumber"`
	OrderItems    string  `json:"orderItems"`
	TotalPrice    float64 `json:"totalPrice"`
}

// ContactMessagePayload forwards a storefront inquiry to the shop admin.
type ContactMessagePayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Number  string `json:"number"`
	Message string `json:"message"`
}

// Enqueuer schedules notification tasks for background delivery.
type Enqueuer interface {
	EnqueueOrderAlert(ctx context.Context, payload OrderAlertPayload) error
	EnqueueOrderConfirmation(ctx context.Context, payload OrderConfirmationPayload) error
	EnqueueContactMessage(ctx context.Context, payload ContactMessagePayload) error
}

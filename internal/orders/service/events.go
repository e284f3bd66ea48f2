package service

import "papergenius_backend/platform/events"

// EventOrderPlaced is published after a successful checkout.
const EventOrderPlaced = "orders.placed"

// OrderPlaced carries the order details notification handlers need.
type OrderPlaced struct {
	events.BaseEvent
	OrderID        int64
	UserID         int64
	CustomerName   string
	ContactNumber  string
	OrderItems     string
	TotalPrice     float64
	AdditionalInfo string
}

// EventName returns the event type identifier.
func (OrderPlaced) EventName() string { return EventOrderPlaced }

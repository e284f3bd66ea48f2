package transport

// CheckoutRequest places an order for a set of cart entries.
type CheckoutRequest struct {
	EntryIDs       []int64 `json:"entryIds" validate:"required,min=1,dive,min=1"`
	ContactNumber  string  `json:"contactNumber" validate:"omitempty,max=30"`
	AdditionalInfo string  `json:"additionalInfo" validate:"omitempty,max=1000"`
}

// UpdateStatusRequest changes an order's fulfillment status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Confirmed Printing Shipped Completed Cancelled"`
}

type OrderResponse struct {
	ID             int64   `json:"id"`
	UserID         int64   `json:"userId"`
	CustomerName   string  `json:"customerName"`
	ContactNumber  string  `json:"contactNumber"`
	OrderItems     string  `json:"orderItems"`
	TotalPrice     float64 `json:"totalPrice"`
	Status         string  `json:"status"`
	AdditionalInfo string  `json:"additionalInfo"`
	OrderDate      string  `json:"orderDate"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}

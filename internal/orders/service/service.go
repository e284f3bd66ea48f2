// Package service implements order placement and fulfillment logic.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	cartrepo "papergenius_backend/internal/cart/repository"
	"papergenius_backend/internal/orders/repository"
	"papergenius_backend/internal/orders/transport"
	"papergenius_backend/platform/apperr"
	"papergenius_backend/platform/events"
	"papergenius_backend/platform/logger"
)

// Customer is the contact snapshot taken at checkout time.
type Customer struct {
	Name   string
	Number string
}

// CustomerDirectory looks up checkout contact details for a user.
type CustomerDirectory interface {
	GetCustomer(ctx context.Context, userID int64) (Customer, error)
}

// Service provides order operations.
type Service struct {
	repo      repository.Repository
	cart      cartrepo.Repository
	customers CustomerDirectory
	bus       events.Bus
	log       *logger.Logger
}

// New creates a new orders service.
func New(repo repository.Repository, cart cartrepo.Repository, customers CustomerDirectory, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, cart: cart, customers: customers, bus: bus, log: log}
}

// Checkout places an order for the given cart entries. Entries not owned by
// the user are silently excluded; an empty selection is rejected. On success
// the consumed entries are deleted and an OrderPlaced event is published.
func (s *Service) Checkout(ctx context.Context, userID int64, req transport.CheckoutRequest) (transport.OrderResponse, error) {
	entries, err := s.cart.ListByIDs(ctx, userID, req.EntryIDs)
	if err != nil {
		s.log.DatabaseError("orders.load_entries", err)
		return transport.OrderResponse{}, apperr.Internal("could not load cart entries")
	}
	if len(entries) == 0 {
		return transport.OrderResponse{}, apperr.Validation("no cart entries selected")
	}

	customer, err := s.customers.GetCustomer(ctx, userID)
	if err != nil {
		return transport.OrderResponse{}, err
	}

	contactNumber := strings.TrimSpace(req.ContactNumber)
	if contactNumber == "" {
		contactNumber = customer.Number
	}

	consumedIDs := make([]int64, 0, len(entries))
	for _, entry := range entries {
		consumedIDs = append(consumedIDs, entry.ID)
	}

	order, err := s.repo.Checkout(ctx, repository.CreateOrderParams{
		UserID:         userID,
		CustomerName:   customer.Name,
		ContactNumber:  contactNumber,
		OrderItems:     SummarizeEntries(entries),
		TotalPrice:     TotalOf(entries),
		AdditionalInfo: strings.TrimSpace(req.AdditionalInfo),
	}, consumedIDs)
	if err != nil {
		s.log.DatabaseError("orders.checkout", err)
		return transport.OrderResponse{}, apperr.Internal("could not place order")
	}

	s.bus.Publish(ctx, OrderPlaced{
		BaseEvent:      events.NewBaseEvent(),
		OrderID:        order.ID,
		UserID:         order.UserID,
		CustomerName:   order.CustomerName,
		ContactNumber:  order.ContactNumber,
		OrderItems:     order.OrderItems,
		TotalPrice:     order.TotalPrice,
		AdditionalInfo: order.AdditionalInfo,
	})

	return toOrderResponse(order), nil
}

// ListMine returns the user's orders, newest first.
func (s *Service) ListMine(ctx context.Context, userID int64) (transport.OrderListResponse, error) {
	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.log.DatabaseError("orders.list_mine", err)
		return transport.OrderListResponse{}, apperr.Internal("could not load orders")
	}
	return toOrderListResponse(orders), nil
}

// ListAll returns every order for the admin dashboard.
func (s *Service) ListAll(ctx context.Context) (transport.OrderListResponse, error) {
	orders, err := s.repo.ListAll(ctx)
	if err != nil {
		s.log.DatabaseError("orders.list_all", err)
		return transport.OrderListResponse{}, apperr.Internal("could not load orders")
	}
	return toOrderListResponse(orders), nil
}

// UpdateStatus changes an order's fulfillment status.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (transport.OrderResponse, error) {
	order, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return transport.OrderResponse{}, err
	}
	return toOrderResponse(order), nil
}

// SummarizeEntries renders the one-line-per-entry order summary:
// "Name [Design] (first - last)". Single-key selections print one year.
func SummarizeEntries(entries []cartrepo.Entry) string {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		span := ""
		if n := len(entry.SelectedYears); n == 1 {
			span = entry.SelectedYears[0]
		} else if n > 1 {
			span = fmt.Sprintf("%s - %s", entry.SelectedYears[0], entry.SelectedYears[n-1])
		}
		lines = append(lines, fmt.Sprintf("%s [%s] (%s)", entry.Name, entry.DesignType, span))
	}
	return strings.Join(lines, "\n")
}

// TotalOf sums entry prices, skipping entries with no stored price.
func TotalOf(entries []cartrepo.Entry) float64 {
	total := 0.0
	for _, entry := range entries {
		if entry.Price != nil {
			total += *entry.Price
		}
	}
	return total
}

func toOrderResponse(order repository.Order) transport.OrderResponse {
	return transport.OrderResponse{
		ID:             order.ID,
		UserID:         order.UserID,
		CustomerName:   order.CustomerName,
		ContactNumber:  order.ContactNumber,
		OrderItems:     order.OrderItems,
		TotalPrice:     order.TotalPrice,
		Status:         order.Status,
		AdditionalInfo: order.AdditionalInfo,
		OrderDate:      order.OrderDate.Format(time.RFC3339),
	}
}

func toOrderListResponse(orders []repository.Order) transport.OrderListResponse {
	out := make([]transport.OrderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, toOrderResponse(order))
	}
	return transport.OrderListResponse{Orders: out}
}

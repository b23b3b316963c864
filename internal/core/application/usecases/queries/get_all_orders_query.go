package queries

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// GetAllOrdersQuery requests every order on record. It carries no parameters.
type GetAllOrdersQuery struct{}

// NewGetAllOrdersQuery creates a query for the full order list.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{}
}

// GetAllOrdersQueryHandler handles order listing.
type GetAllOrdersQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetAllOrdersQueryHandler creates a handler for order listing.
func NewGetAllOrdersQueryHandler(orders ports.OrderRepository) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{orders: orders}
}

// Handle returns every order record in insertion order. An empty store
// yields an empty slice, not an error.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, _ GetAllOrdersQuery) ([]*order.Order, error) {
	return h.orders.GetAll(ctx)
}

package commands

import (
	"context"

	"ordering/internal/core/application/pipeline"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// CreateOrderCommandHandler handles order placement.
//
// Guard chain: required fields (deliverTo, mobileNumber, dishes), then the
// line-item rule. New orders always start pending; a client-supplied status
// is ignored.
type CreateOrderCommandHandler struct {
	orders ports.OrderRepository
	chain  pipeline.Chain
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(orders ports.OrderRepository) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orders: orders,
		chain: pipeline.Chain{
			pipeline.RequireFields("deliverTo", "mobileNumber", "dishes"),
			orderDishes,
		},
	}
}

// Handle runs the guard chain and, when it passes, allocates an identifier,
// constructs the order from the validated payload, and appends it to the
// store. Returns the new record.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	rc := &pipeline.Context{Body: cmd.Data()}
	if err := h.chain.Run(ctx, rc); err != nil {
		return nil, err
	}

	deliverTo, _ := rc.Data["deliverTo"].(string)
	mobileNumber, _ := rc.Data["mobileNumber"].(string)
	items, err := lineItemsFromData(rc.Data["dishes"])
	if err != nil {
		return nil, err
	}

	created, err := order.NewOrder(kernel.NewID(), deliverTo, mobileNumber, items)
	if err != nil {
		return nil, err
	}

	if err := h.orders.Add(ctx, created); err != nil {
		return nil, err
	}

	return created, nil
}

package commands

import (
	"context"

	"ordering/internal/core/application/pipeline"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// UpdateOrderCommandHandler handles order updates.
//
// Guard chain: existence, required fields, line-item rule, delivered check,
// id consistency, status value. The delivered check sits before the status
// guard so mutating a delivered order is rejected as such even when the new
// status is also unrecognized.
type UpdateOrderCommandHandler struct {
	orders ports.OrderRepository
	chain  pipeline.Chain
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(orders ports.OrderRepository) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		orders: orders,
		chain: pipeline.Chain{
			orderExists(orders),
			pipeline.RequireFields("deliverTo", "mobileNumber", "dishes"),
			orderDishes,
			orderNotDelivered,
			pipeline.ConsistentID(),
			orderStatus,
		},
	}
}

// Handle runs the guard chain and, when it passes, replaces the located
// order's fields from the validated payload and persists it. The record's
// identifier is never taken from the payload. Returns the updated record.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	rc := &pipeline.Context{RouteID: cmd.OrderID(), Body: cmd.Data()}
	if err := h.chain.Run(ctx, rc); err != nil {
		return nil, err
	}

	located := rc.Record.(*order.Order)

	deliverTo, _ := rc.Data["deliverTo"].(string)
	mobileNumber, _ := rc.Data["mobileNumber"].(string)
	status, _ := rc.Data["status"].(string)
	items, err := lineItemsFromData(rc.Data["dishes"])
	if err != nil {
		return nil, err
	}

	if err := located.Update(deliverTo, mobileNumber, order.Status(status), items); err != nil {
		return nil, err
	}

	if err := h.orders.Update(ctx, located); err != nil {
		return nil, err
	}

	return located, nil
}

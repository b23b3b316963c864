package commands

import (
	"context"

	"ordering/internal/core/application/pipeline"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// DeleteOrderCommandHandler handles order deletion.
//
// Guard chain: existence, then the pending-only rule. A non-pending order is
// rejected and the store is left untouched.
type DeleteOrderCommandHandler struct {
	orders ports.OrderRepository
	chain  pipeline.Chain
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(orders ports.OrderRepository) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		orders: orders,
		chain: pipeline.Chain{
			orderExists(orders),
			orderDeletable,
		},
	}
}

// Handle runs the guard chain and, when it passes, removes the order from
// the store.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	rc := &pipeline.Context{RouteID: cmd.OrderID()}
	if err := h.chain.Run(ctx, rc); err != nil {
		return err
	}

	return h.orders.Remove(ctx, rc.Record.(*order.Order))
}

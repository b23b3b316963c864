package commands

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand represents a request to replace an existing order's
// client-settable fields, including a direct status assignment.
type UpdateOrderCommand struct {
	orderID string
	data    map[string]any

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command from the route identifier and the
// request payload's data object.
func NewUpdateOrderCommand(orderID string, data map[string]any) UpdateOrderCommand {
	return UpdateOrderCommand{
		orderID: orderID,
		data:    data,
		guard:   guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the route-supplied order identifier.
func (c UpdateOrderCommand) OrderID() string {
	return c.orderID
}

// Data returns the request payload's data object.
func (c UpdateOrderCommand) Data() map[string]any {
	return c.data
}

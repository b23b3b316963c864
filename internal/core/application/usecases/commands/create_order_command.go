package commands

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to place a new order.
type CreateOrderCommand struct {
	data map[string]any

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command from the request payload's data
// object.
func NewCreateOrderCommand(data map[string]any) CreateOrderCommand {
	return CreateOrderCommand{
		data:  data,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Data returns the request payload's data object.
func (c CreateOrderCommand) Data() map[string]any {
	return c.data
}

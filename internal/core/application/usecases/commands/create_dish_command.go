package commands

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var (
	ErrCreateDishCommandIsNotConstructed = errors.New(
		"CreateDishCommand must be created via NewCreateDishCommand constructor",
	)
)

// CreateDishCommand represents a request to add a new dish to the menu.
// It carries the request payload's data object as received; field validation
// belongs to the handler's guard chain so that missing-field errors are
// reported in the contract's order.
type CreateDishCommand struct {
	data map[string]any

	guard guard.ConstructorGuard
}

// NewCreateDishCommand creates a command from the request payload's data
// object. A nil payload is accepted and treated as an empty object by the
// guard chain.
func NewCreateDishCommand(data map[string]any) CreateDishCommand {
	return CreateDishCommand{
		data:  data,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c CreateDishCommand) Validate() error {
	return c.guard.Validate(ErrCreateDishCommandIsNotConstructed)
}

// Data returns the request payload's data object.
func (c CreateDishCommand) Data() map[string]any {
	return c.data
}

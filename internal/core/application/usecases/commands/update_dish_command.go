package commands

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var (
	ErrUpdateDishCommandIsNotConstructed = errors.New(
		"UpdateDishCommand must be created via NewUpdateDishCommand constructor",
	)
)

// UpdateDishCommand represents a request to replace an existing dish's
// client-settable fields. The route identifier names the record; any id in
// the payload is only checked for consistency, never applied.
type UpdateDishCommand struct {
	dishID string
	data   map[string]any

	guard guard.ConstructorGuard
}

// NewUpdateDishCommand creates a command from the route identifier and the
// request payload's data object.
func NewUpdateDishCommand(dishID string, data map[string]any) UpdateDishCommand {
	return UpdateDishCommand{
		dishID: dishID,
		data:   data,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c UpdateDishCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDishCommandIsNotConstructed)
}

// DishID returns the route-supplied dish identifier.
func (c UpdateDishCommand) DishID() string {
	return c.dishID
}

// Data returns the request payload's data object.
func (c UpdateDishCommand) Data() map[string]any {
	return c.data
}

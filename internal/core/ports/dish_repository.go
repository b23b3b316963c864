package ports

import (
	"context"

	"ordering/internal/core/domain/model/dish"
	"ordering/internal/core/domain/model/kernel"
)

// DishRepository defines the store contract for dish records.
// The in-memory adapter backs it today; the interface keeps guard logic
// untouched if a persistent backend replaces it later.
type DishRepository interface {
	// Add appends a new dish record to the store.
	Add(ctx context.Context, aggregate *dish.Dish) error

	// Update acknowledges changes to an existing dish record.
	// Records are mutated in place by handlers; Update verifies the record
	// is still owned by the store.
	Update(ctx context.Context, aggregate *dish.Dish) error

	// Get retrieves a dish record by its unique identifier.
	// Returns an ObjectNotFoundError naming the unmatched identifier when
	// no record matches.
	Get(ctx context.Context, id kernel.ID) (*dish.Dish, error)

	// GetAll retrieves every dish record in insertion order.
	GetAll(ctx context.Context) ([]*dish.Dish, error)
}

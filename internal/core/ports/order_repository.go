package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the store contract for order records.
// Provides the same lookup and mutation surface as DishRepository plus
// identity-based removal, since orders are the only deletable resource.
type OrderRepository interface {
	// Add appends a new order record to the store.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update acknowledges changes to an existing order record.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order record by its unique identifier.
	// Returns an ObjectNotFoundError naming the unmatched identifier when
	// no record matches.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetAll retrieves every order record in insertion order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Remove deletes the given record from the store by identity.
	Remove(ctx context.Context, aggregate *order.Order) error
}

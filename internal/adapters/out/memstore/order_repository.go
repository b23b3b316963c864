package memstore

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// InMemoryOrderRepository implements ports.OrderRepository over an ordered
// in-memory collection.
type InMemoryOrderRepository struct {
	records *collection[*order.Order]
}

// NewInMemoryOrderRepository creates an empty order store.
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		records: newCollection(func(o *order.Order) kernel.ID { return o.ID() }),
	}
}

// Add appends a new order record to the store.
func (r *InMemoryOrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.records.append(aggregate)
	return nil
}

// Update acknowledges an in-place mutation of an existing record.
func (r *InMemoryOrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if !r.records.contains(aggregate) {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID().String())
	}
	return nil
}

// Get retrieves an order by ID.
func (r *InMemoryOrderRepository) Get(_ context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	found, ok := r.records.find(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", id.String())
	}
	return found, nil
}

// GetAll retrieves every order in insertion order.
func (r *InMemoryOrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	return r.records.all(), nil
}

// Remove deletes the given order record by identity.
func (r *InMemoryOrderRepository) Remove(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if !r.records.remove(aggregate) {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID().String())
	}
	return nil
}

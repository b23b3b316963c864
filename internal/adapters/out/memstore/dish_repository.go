package memstore

import (
	"context"

	"ordering/internal/core/domain/model/dish"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// InMemoryDishRepository implements ports.DishRepository over an ordered
// in-memory collection.
type InMemoryDishRepository struct {
	records *collection[*dish.Dish]
}

// NewInMemoryDishRepository creates an empty dish store.
func NewInMemoryDishRepository() *InMemoryDishRepository {
	return &InMemoryDishRepository{
		records: newCollection(func(d *dish.Dish) kernel.ID { return d.ID() }),
	}
}

// Add appends a new dish record to the store.
func (r *InMemoryDishRepository) Add(_ context.Context, aggregate *dish.Dish) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.records.append(aggregate)
	return nil
}

// Update acknowledges an in-place mutation of an existing record.
func (r *InMemoryDishRepository) Update(_ context.Context, aggregate *dish.Dish) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if !r.records.contains(aggregate) {
		return errs.NewObjectNotFoundError("dishId", aggregate.ID().String())
	}
	return nil
}

// Get retrieves a dish by ID.
func (r *InMemoryDishRepository) Get(_ context.Context, id kernel.ID) (*dish.Dish, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	found, ok := r.records.find(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("dishId", id.String())
	}
	return found, nil
}

// GetAll retrieves every dish in insertion order.
func (r *InMemoryDishRepository) GetAll(_ context.Context) ([]*dish.Dish, error) {
	return r.records.all(), nil
}

package queries

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/dish"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetDishQueryIsNotConstructed = errors.New(
		"GetDishQuery must be created via NewGetDishQuery constructor",
	)
)

// GetDishQuery requests a single dish by its route identifier.
type GetDishQuery struct {
	dishID string

	guard guard.ConstructorGuard
}

// NewGetDishQuery creates a query from the route identifier.
func NewGetDishQuery(dishID string) GetDishQuery {
	return GetDishQuery{
		dishID: dishID,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetDishQuery) Validate() error {
	return q.guard.Validate(ErrGetDishQueryIsNotConstructed)
}

// DishID returns the route-supplied dish identifier.
func (q GetDishQuery) DishID() string {
	return q.dishID
}

// GetDishQueryHandler handles single-dish lookup.
type GetDishQueryHandler struct {
	dishes ports.DishRepository
}

// NewGetDishQueryHandler creates a handler for single-dish lookup.
func NewGetDishQueryHandler(dishes ports.DishRepository) GetDishQueryHandler {
	return GetDishQueryHandler{dishes: dishes}
}

// Handle resolves the identifier against the dish store. An empty or unknown
// identifier is reported as a missing record naming the unmatched value.
func (h GetDishQueryHandler) Handle(ctx context.Context, query GetDishQuery) (*dish.Dish, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	id, err := kernel.IDFromString(query.DishID())
	if err != nil {
		return nil, errs.NewObjectNotFoundError("dishId", query.DishID())
	}

	return h.dishes.Get(ctx, id)
}

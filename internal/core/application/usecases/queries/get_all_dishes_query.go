package queries

import (
	"context"

	"ordering/internal/core/domain/model/dish"
	"ordering/internal/core/ports"
)

// GetAllDishesQuery requests the full menu. It carries no parameters.
type GetAllDishesQuery struct{}

// NewGetAllDishesQuery creates a query for the full menu.
func NewGetAllDishesQuery() GetAllDishesQuery {
	return GetAllDishesQuery{}
}

// GetAllDishesQueryHandler handles menu listing.
type GetAllDishesQueryHandler struct {
	dishes ports.DishRepository
}

// NewGetAllDishesQueryHandler creates a handler for menu listing.
func NewGetAllDishesQueryHandler(dishes ports.DishRepository) GetAllDishesQueryHandler {
	return GetAllDishesQueryHandler{dishes: dishes}
}

// Handle returns every dish record in insertion order. An empty menu yields
// an empty slice, not an error.
func (h GetAllDishesQueryHandler) Handle(ctx context.Context, _ GetAllDishesQuery) ([]*dish.Dish, error) {
	return h.dishes.GetAll(ctx)
}

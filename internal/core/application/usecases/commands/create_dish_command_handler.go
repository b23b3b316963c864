package commands

import (
	"context"

	"ordering/internal/core/application/pipeline"
	"ordering/internal/core/domain/model/dish"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"
)

// CreateDishCommandHandler handles dish creation.
//
// Guard chain: required fields (name, description, price, image_url), then
// the price rule. The chain order makes "missing price" and "invalid price"
// distinguishable failures.
type CreateDishCommandHandler struct {
	dishes ports.DishRepository
	chain  pipeline.Chain
}

// NewCreateDishCommandHandler creates a handler for dish creation.
func NewCreateDishCommandHandler(dishes ports.DishRepository) CreateDishCommandHandler {
	return CreateDishCommandHandler{
		dishes: dishes,
		chain: pipeline.Chain{
			pipeline.RequireFields("name", "description", "price", "image_url"),
			dishPrice,
		},
	}
}

// Handle runs the guard chain and, when it passes, allocates an identifier,
// constructs the dish from the validated payload, and appends it to the store.
// Returns the new record.
func (h CreateDishCommandHandler) Handle(ctx context.Context, cmd CreateDishCommand) (*dish.Dish, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	rc := &pipeline.Context{Body: cmd.Data()}
	if err := h.chain.Run(ctx, rc); err != nil {
		return nil, err
	}

	name, _ := rc.Data["name"].(string)
	description, _ := rc.Data["description"].(string)
	price, _ := pipeline.Number(rc.Data["price"])
	imageURL, _ := rc.Data["image_url"].(string)

	created, err := dish.NewDish(kernel.NewID(), name, description, price, imageURL)
	if err != nil {
		return nil, err
	}

	if err := h.dishes.Add(ctx, created); err != nil {
		return nil, err
	}

	return created, nil
}

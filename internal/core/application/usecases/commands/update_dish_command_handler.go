package commands

import (
	"context"

	"ordering/internal/core/application/pipeline"
	"ordering/internal/core/domain/model/dish"
	"ordering/internal/core/ports"
)

// UpdateDishCommandHandler handles dish updates.
//
// Guard chain: existence, required fields, price rule, id consistency.
// Existence runs first so an unknown identifier is reported as a missing
// record even when the payload is also malformed.
type UpdateDishCommandHandler struct {
	dishes ports.DishRepository
	chain  pipeline.Chain
}

// NewUpdateDishCommandHandler creates a handler for dish updates.
func NewUpdateDishCommandHandler(dishes ports.DishRepository) UpdateDishCommandHandler {
	return UpdateDishCommandHandler{
		dishes: dishes,
		chain: pipeline.Chain{
			dishExists(dishes),
			pipeline.RequireFields("name", "description", "price", "image_url"),
			dishPrice,
			pipeline.ConsistentID(),
		},
	}
}

// Handle runs the guard chain and, when it passes, replaces the located
// dish's fields from the validated payload and persists it. The record's
// identifier is never taken from the payload. Returns the updated record.
func (h UpdateDishCommandHandler) Handle(ctx context.Context, cmd UpdateDishCommand) (*dish.Dish, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	rc := &pipeline.Context{RouteID: cmd.DishID(), Body: cmd.Data()}
	if err := h.chain.Run(ctx, rc); err != nil {
		return nil, err
	}

	located := rc.Record.(*dish.Dish)

	name, _ := rc.Data["name"].(string)
	description, _ := rc.Data["description"].(string)
	price, _ := pipeline.Number(rc.Data["price"])
	imageURL, _ := rc.Data["image_url"].(string)

	if err := located.Update(name, description, price, imageURL); err != nil {
		return nil, err
	}

	if err := h.dishes.Update(ctx, located); err != nil {
		return nil, err
	}

	return located, nil
}

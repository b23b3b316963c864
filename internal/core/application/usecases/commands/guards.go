package commands

import (
	"context"
	"errors"
	"fmt"
	"math"

	"ordering/internal/core/application/pipeline"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// dishExists builds the existence guard for dish pipelines: it resolves the
// route-supplied identifier against the dish store and makes the located
// record available to later stages. A miss aborts with a NotFound error.
func dishExists(dishes ports.DishRepository) pipeline.Guard {
	return func(ctx context.Context, rc *pipeline.Context) error {
		id, err := kernel.IDFromString(rc.RouteID)
		if err != nil {
			return errs.NewObjectNotFoundError("dishId", rc.RouteID)
		}

		located, err := dishes.Get(ctx, id)
		if err != nil {
			return err
		}

		rc.Record = located
		return nil
	}
}

// orderExists is the order-store counterpart of dishExists.
func orderExists(orders ports.OrderRepository) pipeline.Guard {
	return func(ctx context.Context, rc *pipeline.Context) error {
		id, err := kernel.IDFromString(rc.RouteID)
		if err != nil {
			return errs.NewObjectNotFoundError("orderId", rc.RouteID)
		}

		located, err := orders.Get(ctx, id)
		if err != nil {
			return err
		}

		rc.Record = located
		return nil
	}
}

// dishPrice verifies the validated payload carries a price that is a number
// strictly greater than zero. It runs after the required-fields guard, so a
// missing or zero price is reported as a missing field instead.
func dishPrice(_ context.Context, rc *pipeline.Context) error {
	price, ok := pipeline.Number(rc.Data["price"])
	if !ok || price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			errors.New("price must be a number greater than 0"))
	}
	return nil
}

// orderDishes verifies the validated payload's dishes field is a non-empty
// sequence whose every line item carries a whole, strictly positive quantity.
// A violation names the offending line item's position.
func orderDishes(_ context.Context, rc *pipeline.Context) error {
	items, ok := rc.Data["dishes"].([]any)
	if !ok || len(items) == 0 {
		return errs.NewValueIsInvalidErrorWithCause("dishes",
			errors.New("order must include at least one dish"))
	}

	for i, raw := range items {
		item, _ := raw.(map[string]any)
		quantity, ok := pipeline.Number(item["quantity"])
		if !ok || quantity <= 0 || quantity != math.Trunc(quantity) {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("dishes[%d].quantity", i),
				errors.New("quantity must be an integer greater than 0"))
		}
	}
	return nil
}

// orderNotDelivered rejects any mutation of a delivered order. It runs before
// the id-consistency and status-value guards so the terminal-state rejection
// takes precedence over a merely malformed payload.
func orderNotDelivered(_ context.Context, rc *pipeline.Context) error {
	located, ok := rc.Record.(*order.Order)
	if !ok {
		return errs.NewObjectNotFoundError("orderId", rc.RouteID)
	}
	return located.Status().ValidateUpdate()
}

// orderStatus verifies the payload carries one of the recognized status
// values. Missing and unrecognized values produce the same error naming the
// allowed set.
func orderStatus(_ context.Context, rc *pipeline.Context) error {
	raw, _ := rc.Data["status"].(string)
	return order.Status(raw).Validate()
}

// orderDeletable rejects deletion of any order that is not pending.
func orderDeletable(_ context.Context, rc *pipeline.Context) error {
	located, ok := rc.Record.(*order.Order)
	if !ok {
		return errs.NewObjectNotFoundError("orderId", rc.RouteID)
	}
	return located.CanBeDeleted()
}

// lineItemsFromData converts the already-validated dishes payload into line
// item value objects, preserving submission order.
func lineItemsFromData(v any) ([]order.LineItem, error) {
	raw, _ := v.([]any)
	items := make([]order.LineItem, 0, len(raw))

	for _, entry := range raw {
		fields, _ := entry.(map[string]any)
		dishID, _ := fields["dishId"].(string)
		quantity, _ := pipeline.Number(fields["quantity"])

		item, err := order.NewLineItem(dishID, int(quantity))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

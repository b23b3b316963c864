package commands_test

import (
	"context"
	"testing"

	"ordering/internal/adapters/out/memstore"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderPayload() map[string]any {
	return map[string]any{
		"deliverTo":    "1600 Pennsylvania Avenue NW",
		"mobileNumber": "202-555-0100",
		"dishes": []any{
			map[string]any{"dishId": "dish-1", "quantity": float64(2)},
		},
	}
}

func TestCreateOrderCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a pending order from the payload", func(t *testing.T) {
		orders := memstore.NewInMemoryOrderRepository()
		handler := commands.NewCreateOrderCommandHandler(orders)

		created, err := handler.Handle(ctx, commands.NewCreateOrderCommand(orderPayload()))

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, order.StatusPending, created.Status())
		assert.Equal(t, "1600 Pennsylvania Avenue NW", created.DeliverTo())

		items := created.Dishes()
		require.Len(t, items, 1)
		assert.Equal(t, "dish-1", items[0].DishID())
		assert.Equal(t, 2, items[0].Quantity())
	})

	t.Run("client-supplied status is ignored at creation", func(t *testing.T) {
		payload := orderPayload()
		payload["status"] = "delivered"

		handler := commands.NewCreateOrderCommandHandler(memstore.NewInMemoryOrderRepository())

		created, err := handler.Handle(ctx, commands.NewCreateOrderCommand(payload))

		require.NoError(t, err)
		assert.Equal(t, order.StatusPending, created.Status())
	})

	t.Run("missing deliverTo is reported first", func(t *testing.T) {
		payload := orderPayload()
		delete(payload, "deliverTo")

		handler := commands.NewCreateOrderCommandHandler(memstore.NewInMemoryOrderRepository())

		_, err := handler.Handle(ctx, commands.NewCreateOrderCommand(payload))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "deliverTo")
	})

	t.Run("empty dishes sequence is rejected", func(t *testing.T) {
		payload := orderPayload()
		payload["dishes"] = []any{}

		handler := commands.NewCreateOrderCommandHandler(memstore.NewInMemoryOrderRepository())

		_, err := handler.Handle(ctx, commands.NewCreateOrderCommand(payload))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "dishes")
	})

	t.Run("zero quantity names the offending line item", func(t *testing.T) {
		payload := orderPayload()
		payload["dishes"] = []any{
			map[string]any{"dishId": "dish-1", "quantity": float64(1)},
			map[string]any{"dishId": "dish-2", "quantity": float64(0)},
		}

		handler := commands.NewCreateOrderCommandHandler(memstore.NewInMemoryOrderRepository())

		_, err := handler.Handle(ctx, commands.NewCreateOrderCommand(payload))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "dishes[1].quantity")
	})

	t.Run("fractional quantity is rejected", func(t *testing.T) {
		payload := orderPayload()
		payload["dishes"] = []any{
			map[string]any{"dishId": "dish-1", "quantity": float64(1.5)},
		}

		handler := commands.NewCreateOrderCommandHandler(memstore.NewInMemoryOrderRepository())

		_, err := handler.Handle(ctx, commands.NewCreateOrderCommand(payload))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "dishes[0].quantity")
	})

	t.Run("created order is retrievable from the store", func(t *testing.T) {
		orders := memstore.NewInMemoryOrderRepository()
		handler := commands.NewCreateOrderCommandHandler(orders)

		created, err := handler.Handle(ctx, commands.NewCreateOrderCommand(orderPayload()))
		require.NoError(t, err)

		stored, err := orders.Get(ctx, created.ID())
		require.NoError(t, err)
		assert.True(t, stored.IsEqual(created))
	})
}

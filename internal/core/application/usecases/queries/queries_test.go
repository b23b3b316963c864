package queries_test

import (
	"context"
	"testing"

	"ordering/internal/adapters/out/memstore"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllDishesQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	dishes := memstore.NewInMemoryDishRepository()
	handler := queries.NewGetAllDishesQueryHandler(dishes)

	t.Run("empty store yields an empty list", func(t *testing.T) {
		all, err := handler.Handle(ctx, queries.NewGetAllDishesQuery())

		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("returns records in insertion order", func(t *testing.T) {
		create := commands.NewCreateDishCommandHandler(dishes)

		first, err := create.Handle(ctx, commands.NewCreateDishCommand(map[string]any{
			"name": "Pasta", "description": "Classic", "price": float64(12), "image_url": "pasta.png",
		}))
		require.NoError(t, err)
		second, err := create.Handle(ctx, commands.NewCreateDishCommand(map[string]any{
			"name": "Tiramisu", "description": "Dessert", "price": float64(7), "image_url": "tiramisu.png",
		}))
		require.NoError(t, err)

		all, err := handler.Handle(ctx, queries.NewGetAllDishesQuery())

		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.True(t, all[0].IsEqual(first))
		assert.True(t, all[1].IsEqual(second))
	})
}

func TestGetDishQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	dishes := memstore.NewInMemoryDishRepository()
	handler := queries.NewGetDishQueryHandler(dishes)

	create := commands.NewCreateDishCommandHandler(dishes)
	seeded, err := create.Handle(ctx, commands.NewCreateDishCommand(map[string]any{
		"name": "Pasta", "description": "Classic", "price": float64(12), "image_url": "pasta.png",
	}))
	require.NoError(t, err)

	t.Run("returns the matching record", func(t *testing.T) {
		located, err := handler.Handle(ctx, queries.NewGetDishQuery(seeded.ID().String()))

		require.NoError(t, err)
		assert.True(t, located.IsEqual(seeded))
	})

	t.Run("reads are idempotent", func(t *testing.T) {
		first, err := handler.Handle(ctx, queries.NewGetDishQuery(seeded.ID().String()))
		require.NoError(t, err)
		second, err := handler.Handle(ctx, queries.NewGetDishQuery(seeded.ID().String()))
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("unknown identifier fails with not found", func(t *testing.T) {
		_, err := handler.Handle(ctx, queries.NewGetDishQuery("missing"))

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Contains(t, err.Error(), "missing")
	})

	t.Run("empty identifier fails with not found", func(t *testing.T) {
		_, err := handler.Handle(ctx, queries.NewGetDishQuery(""))

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("query created without constructor fails", func(t *testing.T) {
		_, err := handler.Handle(ctx, queries.GetDishQuery{})

		require.ErrorIs(t, err, queries.ErrGetDishQueryIsNotConstructed)
	})
}

func TestGetAllOrdersQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	orders := memstore.NewInMemoryOrderRepository()
	handler := queries.NewGetAllOrdersQueryHandler(orders)

	t.Run("empty store yields an empty list", func(t *testing.T) {
		all, err := handler.Handle(ctx, queries.NewGetAllOrdersQuery())

		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("returns placed orders", func(t *testing.T) {
		create := commands.NewCreateOrderCommandHandler(orders)
		placed, err := create.Handle(ctx, commands.NewCreateOrderCommand(map[string]any{
			"deliverTo":    "12 Elm Street",
			"mobileNumber": "555-0101",
			"dishes":       []any{map[string]any{"dishId": "dish-1", "quantity": float64(1)}},
		}))
		require.NoError(t, err)

		all, err := handler.Handle(ctx, queries.NewGetAllOrdersQuery())

		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.True(t, all[0].IsEqual(placed))
	})
}

func TestGetOrderQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	orders := memstore.NewInMemoryOrderRepository()
	handler := queries.NewGetOrderQueryHandler(orders)

	create := commands.NewCreateOrderCommandHandler(orders)
	placed, err := create.Handle(ctx, commands.NewCreateOrderCommand(map[string]any{
		"deliverTo":    "12 Elm Street",
		"mobileNumber": "555-0101",
		"dishes":       []any{map[string]any{"dishId": "dish-1", "quantity": float64(1)}},
	}))
	require.NoError(t, err)

	t.Run("returns the matching record", func(t *testing.T) {
		located, err := handler.Handle(ctx, queries.NewGetOrderQuery(placed.ID().String()))

		require.NoError(t, err)
		assert.True(t, located.IsEqual(placed))
	})

	t.Run("unknown identifier fails with not found", func(t *testing.T) {
		_, err := handler.Handle(ctx, queries.NewGetOrderQuery("missing"))

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Contains(t, err.Error(), "missing")
	})

	t.Run("query created without constructor fails", func(t *testing.T) {
		_, err := handler.Handle(ctx, queries.GetOrderQuery{})

		require.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
	})
}

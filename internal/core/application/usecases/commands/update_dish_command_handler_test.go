package commands_test

import (
	"context"
	"testing"

	"ordering/internal/adapters/out/memstore"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/dish"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedDish(t *testing.T, dishes *memstore.InMemoryDishRepository) *dish.Dish {
	t.Helper()

	handler := commands.NewCreateDishCommandHandler(dishes)
	created, err := handler.Handle(context.Background(), commands.NewCreateDishCommand(dishPayload()))
	require.NoError(t, err)
	return created
}

func TestUpdateDishCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces fields and keeps the identifier", func(t *testing.T) {
		dishes := memstore.NewInMemoryDishRepository()
		seeded := seedDish(t, dishes)
		handler := commands.NewUpdateDishCommandHandler(dishes)

		payload := dishPayload()
		payload["price"] = float64(15)

		updated, err := handler.Handle(ctx, commands.NewUpdateDishCommand(seeded.ID().String(), payload))

		require.NoError(t, err)
		assert.True(t, updated.ID().IsEqual(seeded.ID()))
		assert.InDelta(t, 15.0, updated.Price(), 0)

		stored, err := dishes.Get(ctx, seeded.ID())
		require.NoError(t, err)
		assert.InDelta(t, 15.0, stored.Price(), 0)
	})

	t.Run("unknown identifier fails with not found", func(t *testing.T) {
		handler := commands.NewUpdateDishCommandHandler(memstore.NewInMemoryDishRepository())

		_, err := handler.Handle(ctx, commands.NewUpdateDishCommand("missing", dishPayload()))

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Contains(t, err.Error(), "missing")
	})

	t.Run("payload id matching the route passes", func(t *testing.T) {
		dishes := memstore.NewInMemoryDishRepository()
		seeded := seedDish(t, dishes)
		handler := commands.NewUpdateDishCommandHandler(dishes)

		payload := dishPayload()
		payload["id"] = seeded.ID().String()

		_, err := handler.Handle(ctx, commands.NewUpdateDishCommand(seeded.ID().String(), payload))

		require.NoError(t, err)
	})

	t.Run("payload id mismatching the route fails", func(t *testing.T) {
		dishes := memstore.NewInMemoryDishRepository()
		seeded := seedDish(t, dishes)
		handler := commands.NewUpdateDishCommandHandler(dishes)

		payload := dishPayload()
		payload["id"] = "somebody-else"

		_, err := handler.Handle(ctx, commands.NewUpdateDishCommand(seeded.ID().String(), payload))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "somebody-else")
	})

	t.Run("empty payload id is ignored", func(t *testing.T) {
		dishes := memstore.NewInMemoryDishRepository()
		seeded := seedDish(t, dishes)
		handler := commands.NewUpdateDishCommandHandler(dishes)

		payload := dishPayload()
		payload["id"] = ""

		_, err := handler.Handle(ctx, commands.NewUpdateDishCommand(seeded.ID().String(), payload))

		require.NoError(t, err)
	})

	t.Run("failed update leaves the record untouched", func(t *testing.T) {
		dishes := memstore.NewInMemoryDishRepository()
		seeded := seedDish(t, dishes)
		handler := commands.NewUpdateDishCommandHandler(dishes)

		payload := dishPayload()
		payload["price"] = float64(-1)

		_, err := handler.Handle(ctx, commands.NewUpdateDishCommand(seeded.ID().String(), payload))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		stored, err := dishes.Get(ctx, seeded.ID())
		require.NoError(t, err)
		assert.InDelta(t, 12.0, stored.Price(), 0)
	})
}

package pipeline_test

import (
	"context"
	"testing"

	"ordering/internal/core/application/pipeline"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruthy(t *testing.T) {
	t.Run("absent values", func(t *testing.T) {
		assert.False(t, pipeline.Truthy(nil))
		assert.False(t, pipeline.Truthy(""))
		assert.False(t, pipeline.Truthy(false))
		assert.False(t, pipeline.Truthy(float64(0)))
		assert.False(t, pipeline.Truthy(0))
	})

	t.Run("present values", func(t *testing.T) {
		assert.True(t, pipeline.Truthy("x"))
		assert.True(t, pipeline.Truthy(true))
		assert.True(t, pipeline.Truthy(float64(1)))
		assert.True(t, pipeline.Truthy(-1))
	})

	t.Run("collections are present even when empty", func(t *testing.T) {
		assert.True(t, pipeline.Truthy([]any{}))
		assert.True(t, pipeline.Truthy(map[string]any{}))
	})
}

func TestNumber(t *testing.T) {
	t.Run("accepts decoded JSON numbers", func(t *testing.T) {
		n, ok := pipeline.Number(float64(12.5))
		assert.True(t, ok)
		assert.InDelta(t, 12.5, n, 0)
	})

	t.Run("accepts ints from in-code payloads", func(t *testing.T) {
		n, ok := pipeline.Number(3)
		assert.True(t, ok)
		assert.InDelta(t, 3.0, n, 0)
	})

	t.Run("rejects non-numbers", func(t *testing.T) {
		_, ok := pipeline.Number("12")
		assert.False(t, ok)
		_, ok = pipeline.Number(nil)
		assert.False(t, ok)
	})
}

func TestRequireFields(t *testing.T) {
	ctx := context.Background()

	t.Run("passes and promotes data when all fields present", func(t *testing.T) {
		rc := &pipeline.Context{Body: map[string]any{"name": "Pasta", "price": float64(12)}}
		g := pipeline.RequireFields("name", "price")

		err := g(ctx, rc)

		require.NoError(t, err)
		assert.Equal(t, rc.Body, rc.Data)
	})

	t.Run("fails on first missing field and names it", func(t *testing.T) {
		rc := &pipeline.Context{Body: map[string]any{"price": float64(12)}}
		g := pipeline.RequireFields("name", "description", "price")

		err := g(ctx, rc)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "name")
		assert.NotContains(t, err.Error(), "description")
		assert.Nil(t, rc.Data)
	})

	t.Run("zero price counts as absent", func(t *testing.T) {
		rc := &pipeline.Context{Body: map[string]any{"name": "Pasta", "price": float64(0)}}
		g := pipeline.RequireFields("name", "price")

		err := g(ctx, rc)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "price")
	})

	t.Run("nil body is treated as an empty payload", func(t *testing.T) {
		rc := &pipeline.Context{}
		g := pipeline.RequireFields("name")

		err := g(ctx, rc)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("empty collection passes the truthiness check", func(t *testing.T) {
		// the order-dishes guard rejects empty sequences later in the chain
		rc := &pipeline.Context{Body: map[string]any{"dishes": []any{}}}
		g := pipeline.RequireFields("dishes")

		require.NoError(t, g(ctx, rc))
	})
}

func TestConsistentID(t *testing.T) {
	ctx := context.Background()
	g := pipeline.ConsistentID()

	t.Run("absent id passes", func(t *testing.T) {
		rc := &pipeline.Context{RouteID: "abc", Data: map[string]any{"name": "Pasta"}}

		require.NoError(t, g(ctx, rc))
	})

	t.Run("falsy id passes", func(t *testing.T) {
		rc := &pipeline.Context{RouteID: "abc", Data: map[string]any{"id": ""}}

		require.NoError(t, g(ctx, rc))
	})

	t.Run("matching id passes", func(t *testing.T) {
		rc := &pipeline.Context{RouteID: "abc", Data: map[string]any{"id": "abc"}}

		require.NoError(t, g(ctx, rc))
	})

	t.Run("mismatching id fails reporting both values", func(t *testing.T) {
		rc := &pipeline.Context{RouteID: "abc", Data: map[string]any{"id": "xyz"}}

		err := g(ctx, rc)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "xyz")
		assert.Contains(t, err.Error(), "abc")
	})

	t.Run("non-string truthy id fails", func(t *testing.T) {
		rc := &pipeline.Context{RouteID: "abc", Data: map[string]any{"id": float64(5)}}

		require.Error(t, g(ctx, rc))
	})

	t.Run("falls back to body when data not promoted", func(t *testing.T) {
		rc := &pipeline.Context{RouteID: "abc", Body: map[string]any{"id": "xyz"}}

		require.Error(t, g(ctx, rc))
	})
}

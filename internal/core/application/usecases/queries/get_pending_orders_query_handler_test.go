package queries_test

import (
	"testing"

	"dronedelivery/internal/core/application/usecases/queries"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPendingOrdersQueryHandler_Handle(t *testing.T) {
	t.Run("explains every pending order", func(t *testing.T) {
		f := newFixture(t)
		heavy := f.addOrder(t, 1, 1, 25, order.High)
		far := f.addOrder(t, 30, 40, 1, order.Low)
		near := f.addOrder(t, 1, 1, 1, order.Medium)
		handler := queries.NewGetPendingOrdersQueryHandler(f.factory, f.manager)

		pending, err := handler.Handle(t.Context(), queries.NewGetPendingOrdersQuery())

		require.NoError(t, err)
		require.Len(t, pending, 3)

		assert.Equal(t, heavy.ID(), pending[0].ID)
		assert.InDelta(t, 25.0, pending[0].WeightKg, 0)
		assert.Equal(t, order.High, pending[0].Priority)
		assert.Contains(t, pending[0].Explanation, "over the largest capacity")

		assert.Equal(t, far.ID(), pending[1].ID)
		assert.Equal(t, kernel.NewPoint(30, 40), pending[1].Destination)
		assert.Contains(t, pending[1].Explanation, "beyond the effective range")

		assert.Equal(t, near.ID(), pending[2].ID)
		assert.Equal(t, near.CreatedAt(), pending[2].CreatedAt)
		assert.Contains(t, pending[2].Explanation, "no drone was available")
	})

	t.Run("returns empty list for empty queue", func(t *testing.T) {
		f := newFixture(t)
		handler := queries.NewGetPendingOrdersQueryHandler(f.factory, f.manager)

		pending, err := handler.Handle(t.Context(), queries.NewGetPendingOrdersQuery())

		require.NoError(t, err)
		assert.Empty(t, pending)
	})

	t.Run("rejects unconstructed query", func(t *testing.T) {
		f := newFixture(t)
		handler := queries.NewGetPendingOrdersQueryHandler(f.factory, f.manager)

		_, err := handler.Handle(t.Context(), queries.GetPendingOrdersQuery{})

		require.ErrorIs(t, err, queries.ErrGetPendingOrdersQueryIsNotConstructed)
	})
}

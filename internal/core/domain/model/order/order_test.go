package order_test

import (
	"math"
	"testing"
	"time"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	destination := kernel.NewPoint(10, 5)

	t.Run("should create order with valid values", func(t *testing.T) {
		before := time.Now()

		o, err := order.NewOrder(destination, 2.5, order.Medium)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		require.NoError(t, o.ID().Validate())
		assert.InDelta(t, 2.5, o.Weight(), 0)
		assert.Equal(t, destination, o.Destination())
		assert.Equal(t, order.Medium, o.Priority())
		assert.False(t, o.CreatedAt().Before(before))
	})

	t.Run("should store any positive weight unchanged", func(t *testing.T) {
		for _, w := range []float64{0.001, 1, 3, 9.99, 250} {
			o, err := order.NewOrder(destination, w, order.Low)

			require.NoError(t, err)
			assert.Equal(t, w, o.Weight())
		}
	})

	t.Run("should fail with invalid order for non-positive weight", func(t *testing.T) {
		for _, w := range []float64{0, -1, -0.0001, math.NaN(), math.Inf(1)} {
			o, err := order.NewOrder(destination, w, order.Low)

			require.ErrorIs(t, err, order.ErrInvalidOrder, "weight %v", w)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Nil(t, o)
		}
	})

	t.Run("should fail with invalid order for unknown priority", func(t *testing.T) {
		_, err := order.NewOrder(destination, 1, order.UnknownPriority)

		require.ErrorIs(t, err, order.ErrInvalidOrder)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should aggregate multiple validation errors", func(t *testing.T) {
		_, err := order.NewOrder(destination, -2, order.Priority(9))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("should keep the supplied identity", func(t *testing.T) {
		o, err := order.RestoreOrder(id, kernel.NewPoint(1, 1), 4, order.High, createdAt)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("should reject zero identifier", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.UUID{}, kernel.NewPoint(1, 1), 4, order.High, createdAt)

		require.ErrorIs(t, err, order.ErrInvalidOrder)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	assert.Equal(t, order.ErrOrderIsNotConstructed, nilOrder.Validate())

	zero := &order.Order{}
	assert.Equal(t, order.ErrOrderIsNotConstructed, zero.Validate())
}

func TestOrder_IsEqual(t *testing.T) {
	a, _ := order.NewOrder(kernel.NewPoint(1, 1), 1, order.Low)
	b, _ := order.NewOrder(kernel.NewPoint(1, 1), 1, order.Low)

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(nil))
}

func TestOrder_String(t *testing.T) {
	id, _ := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
	o, _ := order.RestoreOrder(id, kernel.NewPoint(3, 4), 2.5, order.High, time.Now())

	assert.Equal(t, "[ID: 550e...] | Weight: 2.5kg | Destination: (3, 4) | Priority: High", o.String())
}

package guard_test

import (
	"errors"
	"testing"

	"dronedelivery/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("test object not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})
}

// TestConstructorGuardUsageExample shows the guard embedded in a value object.
func TestConstructorGuardUsageExample(t *testing.T) {
	type Tick struct {
		delta float64
		guard guard.ConstructorGuard
	}

	errTickNotConstructed := errors.New("Tick must be created via NewTick")

	newTick := func(delta float64) (Tick, error) {
		if delta < 0 {
			return Tick{}, errors.New("delta cannot be negative")
		}
		return Tick{delta: delta, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		tick, err := newTick(5)

		require.NoError(t, err)
		require.NoError(t, tick.guard.Validate(errTickNotConstructed))
		assert.InDelta(t, 5.0, tick.delta, 1e-9)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		var tick Tick

		assert.Equal(t, errTickNotConstructed, tick.guard.Validate(errTickNotConstructed))
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newTick(-1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "delta cannot be negative")
	})
}

package commands

import (
	"errors"
	"math"

	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

var ErrAdvanceSimulationCommandIsNotConstructed = errors.New(
	"AdvanceSimulationCommand must be created via NewAdvanceSimulationCommand constructor",
)

// AdvanceSimulationCommand moves the simulation clock forward by a delta in
// simulation minutes.
type AdvanceSimulationCommand struct { //nolint:recvcheck //using for validation
	deltaMinutes float64

	guard guard.ConstructorGuard
}

// NewAdvanceSimulationCommand creates a tick command.
// Returns a ValueIsOutOfRangeError for a negative, NaN or infinite delta.
func NewAdvanceSimulationCommand(deltaMinutes float64) (AdvanceSimulationCommand, error) {
	cmd := AdvanceSimulationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDeltaMinutes(deltaMinutes); err != nil {
		return AdvanceSimulationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceSimulationCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceSimulationCommandIsNotConstructed)
}

// DeltaMinutes returns the simulation time to advance.
func (c AdvanceSimulationCommand) DeltaMinutes() float64 {
	return c.deltaMinutes
}

func (c *AdvanceSimulationCommand) setDeltaMinutes(deltaMinutes float64) error {
	if math.IsNaN(deltaMinutes) || math.IsInf(deltaMinutes, 0) || deltaMinutes < 0 {
		return errs.NewValueIsOutOfRangeError("delta minutes", deltaMinutes, 0, math.MaxFloat64)
	}

	c.deltaMinutes = deltaMinutes
	return nil
}

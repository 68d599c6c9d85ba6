package commands

import (
	"errors"
	"fmt"
	"math"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrWeightIsInvalid     = errors.New("weight must be greater than 0")
	ErrCoordinateIsInvalid = errors.New("coordinate must be a finite number")
)

// CreateOrderCommand represents a request to queue a new delivery order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(3, 4, 2.5, order.High)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, recorder)
//	id, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s queued for dispatch", id)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	destination kernel.Point
	weight      float64
	priority    order.Priority

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to queue an order for (x, y).
// Validates that coordinates are finite, weight is positive and priority is known.
func NewCreateOrderCommand(x, y, weight float64, priority order.Priority) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDestination(x, y),
		cmd.setWeight(weight),
		cmd.setPriority(priority),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Destination returns the delivery point.
func (c CreateOrderCommand) Destination() kernel.Point {
	return c.destination
}

// Weight returns the package weight in kilograms.
func (c CreateOrderCommand) Weight() float64 {
	return c.weight
}

// Priority returns the requested priority.
func (c CreateOrderCommand) Priority() order.Priority {
	return c.priority
}

func (c *CreateOrderCommand) setDestination(x, y float64) error {
	for _, v := range []float64{x, y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %g", ErrCoordinateIsInvalid, v)
		}
	}

	c.destination = kernel.NewPoint(x, y)
	return nil
}

func (c *CreateOrderCommand) setWeight(weight float64) error {
	if math.IsNaN(weight) || weight <= 0 {
		return ErrWeightIsInvalid
	}

	c.weight = weight
	return nil
}

func (c *CreateOrderCommand) setPriority(priority order.Priority) error {
	if err := priority.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("priority", err)
	}

	c.priority = priority
	return nil
}

package commands

import (
	"errors"

	"dronedelivery/internal/pkg/guard"
)

var (
	ErrDispatchCommandIsNotConstructed = errors.New(
		"DispatchCommand must be created via NewDispatchCommand constructor",
	)
	ErrNoPendingOrders = errors.New("no pending orders to dispatch")
)

// DispatchCommand requests one allocation pass over the pending queue followed
// by the launch of every planned flight.
//
// Example:
//
//	handler := NewDispatchCommandHandler(uowFactory, manager, simulator, recorder)
//	result, err := handler.Handle(ctx, NewDispatchCommand())
//	if errors.Is(err, ErrNoPendingOrders) {
//	    return nil
//	}
type DispatchCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchCommand creates a dispatch command.
func NewDispatchCommand() DispatchCommand {
	return DispatchCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c DispatchCommand) Validate() error {
	return c.guard.Validate(ErrDispatchCommandIsNotConstructed)
}

package order

import (
	"errors"
	"fmt"
	"math"
	"time"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
)

var (
	// ErrInvalidOrder is wrapped by every construction failure of an Order.
	ErrInvalidOrder = errors.New("invalid order")

	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a delivery request: a package of a given weight to drop at a
// destination. Orders are immutable once constructed; the allocator only reads
// them and groups them into flights.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Weight is strictly positive (kilograms)
//   - Priority is one of Low, Medium, High
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id          kernel.UUID
	destination kernel.Point
	weight      float64
	priority    Priority
	createdAt   time.Time

	isConstructed bool
}

// NewOrder creates a new Order stamped with the current time.
//
// Returns an error wrapping ErrInvalidOrder when the weight is not strictly
// positive or the priority is not valid.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewPoint(3, 4), 2.5, order.High)
//	if errors.Is(err, order.ErrInvalidOrder) {
//	    // reject the request
//	}
func NewOrder(destination kernel.Point, weight float64, priority Priority) (*Order, error) {
	return RestoreOrder(kernel.NewUUID(), destination, weight, priority, time.Now())
}

// RestoreOrder rebuilds an Order with a known identity and creation time.
// It applies the same validation as NewOrder.
func RestoreOrder(
	id kernel.UUID,
	destination kernel.Point,
	weight float64,
	priority Priority,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		destination:   destination,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setWeight(weight),
		o.setPriority(priority),
	); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOrder, err)
	}

	return o, nil
}

// Validate ensures the Order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Destination returns the customer location.
func (o *Order) Destination() kernel.Point {
	return o.destination
}

// Weight returns the package weight in kilograms.
func (o *Order) Weight() float64 {
	return o.weight
}

// Priority returns the order priority.
func (o *Order) Priority() Priority {
	return o.priority
}

// CreatedAt returns the moment the order was received.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// String renders a one-line summary such as
// "[ID: 550e...] | Weight: 2.5kg | Destination: (3, 4) | Priority: High".
func (o *Order) String() string {
	return fmt.Sprintf("[ID: %s...] | Weight: %gkg | Destination: %s | Priority: %s",
		o.id.Short(), o.weight, o.destination, o.priority)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setWeight(weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%g is not greater than 0", weight))
	}
	o.weight = weight
	return nil
}

func (o *Order) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	o.priority = priority
	return nil
}

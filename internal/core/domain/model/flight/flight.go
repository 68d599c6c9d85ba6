package flight

import (
	"errors"
	"fmt"
	"slices"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/pkg/errs"
)

// TimeScale converts flight hours into simulation minutes.
const TimeScale = 10.0

var (
	// ErrCapacityExceeded is returned when an order would overload the drone.
	ErrCapacityExceeded = errors.New("flight capacity exceeded")

	// ErrRangeExceeded is returned when an order would stretch the route beyond
	// the drone's effective range.
	ErrRangeExceeded = errors.New("flight range exceeded")

	// ErrFlightIsNotConstructed is returned for flights not built by NewFlight.
	ErrFlightIsNotConstructed = errors.New("Flight must be created via NewFlight constructor")
)

// Flight groups orders assigned to one drone into a single route that starts
// and ends at the base. The drone is not owned; the fleet owns it.
//
// Example usage:
//
//	f, _ := flight.NewFlight(d, kernel.EuclideanDistance{})
//	if err := f.AddOrder(o); errors.Is(err, flight.ErrRangeExceeded) {
//	    // try the next order
//	}
//	fmt.Println(f.TotalDistanceKm(), f.EstimatedTotalMinutes())
type Flight struct {
	id         kernel.UUID
	drone      *drone.Drone
	calculator kernel.DistanceCalculator

	orders                []*order.Order
	route                 []kernel.Point
	totalWeight           float64
	totalDistanceKm       float64
	estimatedTotalMinutes float64
	elapsedMinutes        float64

	isConstructed bool
}

// NewFlight creates an empty flight for d whose route holds only the base.
func NewFlight(d *drone.Drone, calculator kernel.DistanceCalculator) (*Flight, error) {
	var errList []error
	if d == nil {
		errList = append(errList, errs.NewValueIsRequiredError("drone"))
	} else if err := d.Validate(); err != nil {
		errList = append(errList, err)
	}
	if calculator == nil {
		errList = append(errList, errs.NewValueIsRequiredError("distance calculator"))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Flight{
		id:            kernel.NewUUID(),
		drone:         d,
		calculator:    calculator,
		route:         []kernel.Point{kernel.Base},
		isConstructed: true,
	}, nil
}

// Validate ensures the flight was built through NewFlight.
func (f *Flight) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrFlightIsNotConstructed
	}
	return nil
}

// AddOrder appends o to the route after checking capacity and range.
//
// Returns:
//   - ErrCapacityExceeded if the cumulative weight would exceed the drone capacity
//   - ErrRangeExceeded if the new route is longer than the effective range at the new weight
//
// On error the flight is left untouched.
func (f *Flight) AddOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	newWeight := f.totalWeight + o.Weight()
	if newWeight > f.drone.CapacityKg() {
		return fmt.Errorf("%w: %gkg exceeds capacity %gkg of %s",
			ErrCapacityExceeded, newWeight, f.drone.CapacityKg(), f.drone.Name())
	}

	route := append(slices.Clone(f.route), o.Destination())
	distance := kernel.RouteDistance(f.calculator, route)
	if maxRange := f.drone.EffectiveRange(newWeight); distance > maxRange {
		return fmt.Errorf("%w: %.2fkm exceeds effective range %.2fkm of %s",
			ErrRangeExceeded, distance, maxRange, f.drone.Name())
	}

	f.orders = append(f.orders, o)
	f.route = route
	f.totalWeight = newWeight
	f.totalDistanceKm = distance
	f.estimatedTotalMinutes = f.estimateMinutes(distance)

	return nil
}

// WithOrder returns a provisional copy of the flight with o appended and the
// distance recomputed. No capacity or range check is made and the receiver is
// not modified. The allocator uses it to try a candidate order.
func (f *Flight) WithOrder(o *order.Order) *Flight {
	candidate := *f
	candidate.orders = append(slices.Clone(f.orders), o)
	candidate.route = append(slices.Clone(f.route), o.Destination())
	candidate.totalWeight = f.totalWeight + o.Weight()
	candidate.totalDistanceKm = kernel.RouteDistance(f.calculator, candidate.route)
	candidate.estimatedTotalMinutes = f.estimateMinutes(candidate.totalDistanceKm)
	return &candidate
}

// IsEmpty reports whether no order has been added.
func (f *Flight) IsEmpty() bool {
	return len(f.orders) == 0
}

// Start resets the elapsed time before the simulator tracks the flight.
func (f *Flight) Start() {
	f.elapsedMinutes = 0
}

// Advance adds deltaMinutes of simulation time and returns the remaining time.
func (f *Flight) Advance(deltaMinutes float64) float64 {
	f.elapsedMinutes += deltaMinutes
	return f.Remaining()
}

// Remaining returns the simulation minutes left until the drone is back at base.
// Zero or negative means the flight is complete.
func (f *Flight) Remaining() float64 {
	return f.estimatedTotalMinutes - f.elapsedMinutes
}

// Position estimates where the drone is, assuming a straight out-and-back trip
// to the first order's destination: the first half of the total time is spent
// flying out and the second half flying back.
func (f *Flight) Position() kernel.Point {
	if len(f.orders) == 0 || f.estimatedTotalMinutes <= 0 {
		return kernel.Base
	}

	target := f.orders[0].Destination()
	outbound := f.estimatedTotalMinutes / 2

	if f.elapsedMinutes <= outbound {
		return kernel.Base.Interpolate(target, f.elapsedMinutes/outbound)
	}
	return target.Interpolate(kernel.Base, (f.elapsedMinutes-outbound)/outbound)
}

// ID returns the flight identifier.
func (f *Flight) ID() kernel.UUID {
	return f.id
}

// Drone returns the assigned drone.
func (f *Flight) Drone() *drone.Drone {
	return f.drone
}

// Orders returns a copy of the carried orders in insertion order.
func (f *Flight) Orders() []*order.Order {
	return slices.Clone(f.orders)
}

// Route returns a copy of the planned route, starting at the base.
// The closing leg back to base is implied.
func (f *Flight) Route() []kernel.Point {
	return slices.Clone(f.route)
}

func (f *Flight) TotalWeight() float64 {
	return f.totalWeight
}

func (f *Flight) TotalDistanceKm() float64 {
	return f.totalDistanceKm
}

func (f *Flight) EstimatedTotalMinutes() float64 {
	return f.estimatedTotalMinutes
}

func (f *Flight) ElapsedMinutes() float64 {
	return f.elapsedMinutes
}

// String renders a one-line summary of the flight.
func (f *Flight) String() string {
	return fmt.Sprintf("Flight %s... | Drone: %s | Orders: %d | Weight: %gkg | Distance: %.2fkm | ETA: %.1fmin",
		f.id.Short(), f.drone.Name(), len(f.orders), f.totalWeight, f.totalDistanceKm, f.estimatedTotalMinutes)
}

func (f *Flight) estimateMinutes(distanceKm float64) float64 {
	return distanceKm / f.drone.CruiseSpeedKmh() * TimeScale
}

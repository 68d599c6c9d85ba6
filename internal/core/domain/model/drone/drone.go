package drone

import (
	"errors"
	"fmt"
	"math"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

const (
	// DefaultMaxRouteRangeKm is the diagonal of the service grid spanning ±50 km around the base.
	DefaultMaxRouteRangeKm = 141.42
	// DefaultConsumptionKmPerPercent lets a full battery cover the default route range.
	DefaultConsumptionKmPerPercent = 1.4142
	// FullBatteryPercent is the battery level after a finished recharge.
	FullBatteryPercent = 100.0
)

// Domain errors for drone construction.
var (
	ErrNameIsRequired         = errs.NewValueIsRequiredError("name")
	ErrDroneIsNotConstructed  = errors.New("Drone must be created via NewDrone constructor")
	ErrRechargeCyclesRequired = errs.NewValueIsRequiredError("recharge cycles")
)

// Drone is a delivery drone. The fleet slice owns each Drone; flights and the
// simulator keep pointers so state changes are visible everywhere.
//
// Business rules:
//   - Drone must have a non-empty name and positive capacity, speed, range and consumption
//   - Status changes follow the Status transition table
//   - Battery is clamped to [0,100]
//
// Example usage:
//
//	d, err := drone.NewDrone("Mufasa", 10, 60)
//	if err != nil {
//	    // Handle construction error
//	}
//	fmt.Println(d.EffectiveRange(4)) // 113.136 (80% of 141.42)
type Drone struct {
	id                      kernel.UUID
	name                    string
	capacityKg              float64
	cruiseSpeedKmh          float64
	maxRouteRangeKm         float64
	consumptionKmPerPercent float64

	status                  Status
	position                kernel.Point
	batteryPercent          float64
	rechargeCyclesRemaining int

	guard guard.ConstructorGuard
}

// Option customises optional drone capabilities.
type Option func(*options)

type options struct {
	maxRouteRangeKm         float64
	consumptionKmPerPercent float64
}

// WithMaxRouteRange overrides DefaultMaxRouteRangeKm.
func WithMaxRouteRange(km float64) Option {
	return func(o *options) {
		o.maxRouteRangeKm = km
	}
}

// WithConsumption overrides DefaultConsumptionKmPerPercent.
func WithConsumption(kmPerPercent float64) Option {
	return func(o *options) {
		o.consumptionKmPerPercent = kmPerPercent
	}
}

// NewDrone creates an Idle drone at Base with a full battery.
//
// Parameters:
//   - name: display name (must be non-empty)
//   - capacityKg: maximum cumulative payload (must be positive)
//   - cruiseSpeedKmh: cruise speed used for time estimates (must be positive)
//   - opts: optional range/consumption overrides
//
// Returns all validation failures joined together.
func NewDrone(name string, capacityKg, cruiseSpeedKmh float64, opts ...Option) (*Drone, error) {
	o := options{
		maxRouteRangeKm:         DefaultMaxRouteRangeKm,
		consumptionKmPerPercent: DefaultConsumptionKmPerPercent,
	}
	for _, opt := range opts {
		opt(&o)
	}

	d := &Drone{
		id:             kernel.NewUUID(),
		status:         Idle,
		position:       kernel.Base,
		batteryPercent: FullBatteryPercent,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setName(name),
		setPositive("capacity", capacityKg, &d.capacityKg),
		setPositive("cruise speed", cruiseSpeedKmh, &d.cruiseSpeedKmh),
		setPositive("max route range", o.maxRouteRangeKm, &d.maxRouteRangeKm),
		setPositive("consumption", o.consumptionKmPerPercent, &d.consumptionKmPerPercent),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate checks that the drone was built by NewDrone.
func (d *Drone) Validate() error {
	if d == nil {
		return ErrDroneIsNotConstructed
	}
	return d.guard.Validate(ErrDroneIsNotConstructed)
}

// IsEqual compares two drones by identifier.
func (d *Drone) IsEqual(other *Drone) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the drone's unique identifier.
func (d *Drone) ID() kernel.UUID {
	return d.id
}

// Name returns the display name.
func (d *Drone) Name() string {
	return d.name
}

// CapacityKg returns the maximum cumulative payload in kilograms.
func (d *Drone) CapacityKg() float64 {
	return d.capacityKg
}

// CruiseSpeedKmh returns the cruise speed used for flight time estimates.
func (d *Drone) CruiseSpeedKmh() float64 {
	return d.cruiseSpeedKmh
}

// MaxRouteRangeKm returns the unloaded round-trip range.
func (d *Drone) MaxRouteRangeKm() float64 {
	return d.maxRouteRangeKm
}

func (d *Drone) ConsumptionKmPerPercent() float64 {
	return d.consumptionKmPerPercent
}

func (d *Drone) Status() Status {
	return d.status
}

// Position returns the last simulated position; Base while on the ground.
func (d *Drone) Position() kernel.Point {
	return d.position
}

func (d *Drone) BatteryPercent() float64 {
	return d.batteryPercent
}

func (d *Drone) RechargeCyclesRemaining() int {
	return d.rechargeCyclesRemaining
}

// IsIdle reports whether the drone can be allocated.
func (d *Drone) IsIdle() bool {
	return d.status == Idle
}

// EffectiveRange returns the maximum round-trip distance the drone can fly
// while carrying weightKg: the full route range up to 3 kg, 80% up to 6 kg,
// 70% up to 10 kg and 60% above that.
func (d *Drone) EffectiveRange(weightKg float64) float64 {
	return d.maxRouteRangeKm * rangeFactor(weightKg)
}

// Load marks the drone as having a planned flight (Idle -> Loading).
func (d *Drone) Load() error {
	return d.transitionTo(Loading)
}

// Launch starts the planned flight (Loading -> InFlight).
func (d *Drone) Launch() error {
	return d.transitionTo(InFlight)
}

// MoveTo updates the position of a flying drone.
func (d *Drone) MoveTo(position kernel.Point) error {
	if d.status != InFlight {
		return fmt.Errorf("%w: cannot move a drone that is %s", ErrIllegalTransition, d.status)
	}
	d.position = position
	return nil
}

// Land completes a flight of distanceKm (InFlight -> Idle).
//
// The drone returns to Base and its battery is debited by
// distanceKm / consumptionKmPerPercent, floored at 0. When the remaining
// battery is below lowBatteryThreshold the drone immediately starts
// recharging for rechargeCycles ticks (Idle -> Recharging).
func (d *Drone) Land(distanceKm, lowBatteryThreshold float64, rechargeCycles int) error {
	if rechargeCycles < 1 {
		return ErrRechargeCyclesRequired
	}

	next, err := d.status.TransitionTo(Idle)
	if err != nil {
		return err
	}

	d.status = next
	d.position = kernel.Base
	d.batteryPercent = math.Max(0, d.batteryPercent-distanceKm/d.consumptionKmPerPercent)

	if d.batteryPercent < lowBatteryThreshold {
		if err = d.transitionTo(Recharging); err != nil {
			return err
		}
		d.rechargeCyclesRemaining = rechargeCycles
	}

	return nil
}

// TickRecharge consumes one recharge cycle. When the last cycle is consumed
// the battery is refilled and the drone becomes Idle; finished reports that case.
func (d *Drone) TickRecharge() (finished bool, err error) {
	if d.status != Recharging {
		return false, fmt.Errorf("%w: %s drone cannot recharge", ErrIllegalTransition, d.status)
	}

	d.rechargeCyclesRemaining--
	if d.rechargeCyclesRemaining > 0 {
		return false, nil
	}

	if err = d.transitionTo(Idle); err != nil {
		return false, err
	}
	d.rechargeCyclesRemaining = 0
	d.batteryPercent = FullBatteryPercent

	return true, nil
}

// String renders a one-line summary of capabilities and state.
func (d *Drone) String() string {
	return fmt.Sprintf("%s (ID: %s...) | Status: %s | Capacity: %gkg | Range: %gkm | Battery: %.1f%%",
		d.name, d.id.Short(), d.status, d.capacityKg, d.maxRouteRangeKm, d.batteryPercent)
}

func (d *Drone) transitionTo(next Status) error {
	status, err := d.status.TransitionTo(next)
	if err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Drone) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func setPositive(param string, value float64, target *float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%g is not greater than 0", value))
	}
	*target = value
	return nil
}

func rangeFactor(weightKg float64) float64 {
	switch {
	case weightKg <= 3:
		return 1.0
	case weightKg <= 6:
		return 0.8
	case weightKg <= 10:
		return 0.7
	default:
		return 0.6
	}
}

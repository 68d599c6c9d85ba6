package services

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/flight"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
)

// ErrFleetConfiguration is returned when a service is built with an unusable fleet.
var ErrFleetConfiguration = errors.New("invalid fleet configuration")

// FleetManager allocates pending orders to idle drones.
//
// Implementations decide how orders are grouped into flights; the simulator
// only depends on the flights they return.
type FleetManager interface {
	// Allocate groups pending orders into flights for idle drones. Each drone
	// that receives a flight is moved to Loading.
	Allocate(pending []*order.Order) []*flight.Flight

	// PendingOrders returns the orders left over by the last Allocate call.
	PendingOrders() []*order.Order

	// Diagnose classifies why o could not be allocated.
	Diagnose(o *order.Order) Diagnosis

	// ExplainFailure renders Diagnose as a human-readable message.
	ExplainFailure(o *order.Order) string
}

var _ FleetManager = (*GreedyFleetManager)(nil)

// GreedyFleetManager packs orders into flights in a single greedy pass.
//
// Algorithm:
//   - Orders are stable-sorted by priority (highest first), then weight (heaviest first)
//   - Idle drones are visited in fleet order; each one walks the sorted orders
//     and keeps every order that still fits its capacity and effective range
//   - No backtracking: an order consumed by one drone is never reconsidered
//
// The result depends only on the input order list and the fleet state.
//
// Example usage:
//
//	manager, err := services.NewGreedyFleetManager(fleet, kernel.EuclideanDistance{})
//	if err != nil {
//	    // fleet is empty or contains nil drones
//	}
//	flights := manager.Allocate(pending)
//	for _, o := range manager.PendingOrders() {
//	    fmt.Println(manager.ExplainFailure(o))
//	}
type GreedyFleetManager struct {
	fleet      []*drone.Drone
	calculator kernel.DistanceCalculator
	pending    []*order.Order
	logger     *slog.Logger
}

// ManagerOption customises a GreedyFleetManager.
type ManagerOption func(*GreedyFleetManager)

// WithManagerLogger sets the logger used for allocation events.
func WithManagerLogger(logger *slog.Logger) ManagerOption {
	return func(m *GreedyFleetManager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewGreedyFleetManager creates a manager over fleet.
//
// Returns an error wrapping ErrFleetConfiguration when the fleet is empty or
// holds an invalid drone, or when calculator is nil.
func NewGreedyFleetManager(
	fleet []*drone.Drone,
	calculator kernel.DistanceCalculator,
	opts ...ManagerOption,
) (*GreedyFleetManager, error) {
	if err := validateFleet(fleet); err != nil {
		return nil, err
	}
	if calculator == nil {
		return nil, fmt.Errorf("%w: distance calculator is required", ErrFleetConfiguration)
	}

	m := &GreedyFleetManager{
		fleet:      fleet,
		calculator: calculator,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With("component", "FleetManager")

	return m, nil
}

// Allocate runs one greedy pass over pending and returns the flights built.
// Orders not placed on any flight are kept, in their input order, and exposed
// by PendingOrders until the next call.
func (m *GreedyFleetManager) Allocate(pending []*order.Order) []*flight.Flight {
	sorted := make([]*order.Order, 0, len(pending))
	for _, o := range pending {
		if err := o.Validate(); err != nil {
			m.logger.Warn("skipping invalid order", "error", err)
			continue
		}
		sorted = append(sorted, o)
	}
	slices.SortStableFunc(sorted, byPriorityThenWeight)

	consumed := make(map[*order.Order]struct{}, len(sorted))
	var flights []*flight.Flight

	for _, d := range m.fleet {
		if !d.IsIdle() {
			continue
		}

		f, err := m.packFlight(d, sorted, consumed)
		if err != nil {
			m.logger.Error("failed to build flight", "drone", d.Name(), "error", err)
			continue
		}
		if f.IsEmpty() {
			continue
		}

		if err = d.Load(); err != nil {
			m.logger.Error("failed to load drone", "drone", d.Name(), "error", err)
			for _, o := range f.Orders() {
				delete(consumed, o)
			}
			continue
		}

		m.logger.Info("flight planned",
			"drone", d.Name(),
			"orders", len(f.Orders()),
			"weightKg", f.TotalWeight(),
			"distanceKm", f.TotalDistanceKm(),
		)
		flights = append(flights, f)
	}

	m.pending = m.pending[:0]
	for _, o := range pending {
		if _, ok := consumed[o]; !ok {
			m.pending = append(m.pending, o)
		}
	}

	return flights
}

// PendingOrders returns a copy of the orders left over by the last Allocate call.
func (m *GreedyFleetManager) PendingOrders() []*order.Order {
	return slices.Clone(m.pending)
}

// Fleet returns a copy of the managed fleet slice. The drones are shared.
func (m *GreedyFleetManager) Fleet() []*drone.Drone {
	return slices.Clone(m.fleet)
}

func (m *GreedyFleetManager) packFlight(
	d *drone.Drone,
	sorted []*order.Order,
	consumed map[*order.Order]struct{},
) (*flight.Flight, error) {
	f, err := flight.NewFlight(d, m.calculator)
	if err != nil {
		return nil, err
	}

	for _, o := range sorted {
		if _, ok := consumed[o]; ok {
			continue
		}
		if o.Weight() > d.CapacityKg() || f.TotalWeight()+o.Weight() > d.CapacityKg() {
			continue
		}

		candidate := f.WithOrder(o)
		if candidate.TotalDistanceKm() > d.EffectiveRange(candidate.TotalWeight()) {
			continue
		}

		if err = f.AddOrder(o); err != nil {
			return nil, err
		}
		consumed[o] = struct{}{}
	}

	return f, nil
}

func byPriorityThenWeight(a, b *order.Order) int {
	if c := cmp.Compare(b.Priority(), a.Priority()); c != 0 {
		return c
	}
	return cmp.Compare(b.Weight(), a.Weight())
}

func validateFleet(fleet []*drone.Drone) error {
	if len(fleet) == 0 {
		return fmt.Errorf("%w: fleet is empty", ErrFleetConfiguration)
	}
	for i, d := range fleet {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("%w: drone #%d: %w", ErrFleetConfiguration, i, err)
		}
	}
	return nil
}

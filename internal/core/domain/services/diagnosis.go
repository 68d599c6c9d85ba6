package services

import (
	"fmt"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
)

// FailureReason classifies why an order was left pending.
type FailureReason int

const (
	// UnknownReason helps catch uninitialised values.
	UnknownReason FailureReason = iota

	// WeightExceeded means no drone can lift the order.
	WeightExceeded

	// RangeExceeded means a solo round trip is longer than the effective range.
	RangeExceeded

	// NoDroneAvailable means the order is feasible but every suitable drone was busy.
	NoDroneAvailable
)

func (r FailureReason) String() string {
	switch r {
	case WeightExceeded:
		return "WeightExceeded"
	case RangeExceeded:
		return "RangeExceeded"
	case NoDroneAvailable:
		return "NoDroneAvailable"
	default:
		return "Unknown"
	}
}

// Diagnosis describes why an order could not be allocated, measured against
// the reference drone: the one with the greatest route range, ties broken by
// capacity.
type Diagnosis struct {
	Order          *order.Order
	Reason         FailureReason
	ReferenceDrone *drone.Drone

	// ExcessKg is set for WeightExceeded.
	ExcessKg float64

	// RouteKm, EffectiveRangeKm, ExcessKm and MaxReachKm are set for RangeExceeded.
	// MaxReachKm is the farthest straight-line distance from base the
	// reference drone could serve at this weight.
	RouteKm          float64
	EffectiveRangeKm float64
	ExcessKm         float64
	MaxReachKm       float64
}

// Diagnose classifies o against the reference drone.
//
// Checks, in order:
//   - weight above the reference capacity: WeightExceeded
//   - solo round trip longer than the effective range at o's weight: RangeExceeded
//   - otherwise: NoDroneAvailable
func (m *GreedyFleetManager) Diagnose(o *order.Order) Diagnosis {
	ref := m.referenceDrone()
	diagnosis := Diagnosis{
		Order:          o,
		ReferenceDrone: ref,
	}

	if o.Weight() > ref.CapacityKg() {
		diagnosis.Reason = WeightExceeded
		diagnosis.ExcessKg = o.Weight() - ref.CapacityKg()
		return diagnosis
	}

	route := kernel.RouteDistance(m.calculator, []kernel.Point{kernel.Base, o.Destination()})
	effective := ref.EffectiveRange(o.Weight())
	if route > effective {
		diagnosis.Reason = RangeExceeded
		diagnosis.RouteKm = route
		diagnosis.EffectiveRangeKm = effective
		diagnosis.ExcessKm = route - effective
		diagnosis.MaxReachKm = effective / 2
		return diagnosis
	}

	diagnosis.Reason = NoDroneAvailable
	return diagnosis
}

// ExplainFailure renders Diagnose(o) as a one-line message.
func (m *GreedyFleetManager) ExplainFailure(o *order.Order) string {
	return m.Diagnose(o).String()
}

// String renders the diagnosis as a one-line message.
func (d Diagnosis) String() string {
	switch d.Reason {
	case WeightExceeded:
		return fmt.Sprintf("order %s... weighs %gkg, %.2fkg over the largest capacity (%s, %gkg)",
			d.Order.ID().Short(), d.Order.Weight(), d.ExcessKg,
			d.ReferenceDrone.Name(), d.ReferenceDrone.CapacityKg())
	case RangeExceeded:
		return fmt.Sprintf(
			"order %s... needs a %.2fkm round trip, %.2fkm beyond the effective range of %s (%.2fkm at %gkg); "+
				"maximum distance from base is %.2fkm",
			d.Order.ID().Short(), d.RouteKm, d.ExcessKm, d.ReferenceDrone.Name(),
			d.EffectiveRangeKm, d.Order.Weight(), d.MaxReachKm)
	case NoDroneAvailable:
		return fmt.Sprintf("order %s... is deliverable but no drone was available this cycle",
			d.Order.ID().Short())
	default:
		return "unknown allocation failure"
	}
}

func (m *GreedyFleetManager) referenceDrone() *drone.Drone {
	ref := m.fleet[0]
	for _, d := range m.fleet[1:] {
		if d.MaxRouteRangeKm() > ref.MaxRouteRangeKm() ||
			(d.MaxRouteRangeKm() == ref.MaxRouteRangeKm() && d.CapacityKg() > ref.CapacityKg()) {
			ref = d
		}
	}
	return ref
}

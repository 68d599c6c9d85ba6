package services

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"slices"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/flight"
	"dronedelivery/internal/pkg/errs"
)

const (
	// DefaultLowBatteryThreshold is the battery percentage below which a
	// landed drone starts recharging.
	DefaultLowBatteryThreshold = 50.0

	// DefaultRechargeCycles is the number of ticks a recharge takes.
	DefaultRechargeCycles = 3
)

// TickReport lists what changed during one Advance call.
type TickReport struct {
	DeltaMinutes float64

	// Completed flights landed during this tick and are no longer in progress.
	Completed []*flight.Flight

	// Recharged drones finished recharging and are Idle again.
	Recharged []*drone.Drone

	// LowBattery drones landed below the threshold and started recharging.
	LowBattery []*drone.Drone
}

// FlightSimulator advances started flights over discrete time ticks.
//
// Each tick first processes recharging drones, then every in-progress flight
// in start order. A flight completes on the first tick where its elapsed time
// reaches the estimated total; until then the drone position is interpolated
// on an out-and-back leg to the first destination.
//
// Example usage:
//
//	sim, err := services.NewFlightSimulator(fleet, services.WithRechargeCycles(2))
//	if err != nil {
//	    return err
//	}
//	sim.StartFlights(manager.Allocate(pending))
//	report, err := sim.Advance(5)
type FlightSimulator struct {
	fleet      []*drone.Drone
	inProgress []*flight.Flight

	lowBatteryThreshold float64
	rechargeCycles      int
	logger              *slog.Logger
}

// SimulatorOption customises a FlightSimulator.
type SimulatorOption func(*FlightSimulator)

// WithLowBatteryThreshold overrides DefaultLowBatteryThreshold.
func WithLowBatteryThreshold(percent float64) SimulatorOption {
	return func(s *FlightSimulator) {
		s.lowBatteryThreshold = percent
	}
}

// WithRechargeCycles overrides DefaultRechargeCycles.
func WithRechargeCycles(cycles int) SimulatorOption {
	return func(s *FlightSimulator) {
		s.rechargeCycles = cycles
	}
}

// WithLogger sets the logger used for flight lifecycle events.
func WithLogger(logger *slog.Logger) SimulatorOption {
	return func(s *FlightSimulator) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewFlightSimulator creates a simulator over fleet.
//
// Returns an error wrapping ErrFleetConfiguration for an empty or invalid
// fleet, and a ValueIsOutOfRangeError for a threshold outside [0,100] or
// fewer than one recharge cycle.
func NewFlightSimulator(fleet []*drone.Drone, opts ...SimulatorOption) (*FlightSimulator, error) {
	if err := validateFleet(fleet); err != nil {
		return nil, err
	}

	s := &FlightSimulator{
		fleet:               fleet,
		lowBatteryThreshold: DefaultLowBatteryThreshold,
		rechargeCycles:      DefaultRechargeCycles,
		logger:              slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	var errList []error
	if math.IsNaN(s.lowBatteryThreshold) || s.lowBatteryThreshold < 0 || s.lowBatteryThreshold > 100 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("low battery threshold", s.lowBatteryThreshold, 0, 100))
	}
	if s.rechargeCycles < 1 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("recharge cycles", s.rechargeCycles, 1, math.MaxInt))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	s.logger = s.logger.With("component", "FlightSimulator")
	return s, nil
}

// StartFlights launches every flight whose drone is Loading and tracks it.
// Other flights are skipped with a warning. Returns the number started.
func (s *FlightSimulator) StartFlights(flights []*flight.Flight) int {
	started := 0
	for _, f := range flights {
		if err := f.Validate(); err != nil {
			s.logger.Warn("skipping invalid flight", "error", err)
			continue
		}
		if slices.Contains(s.inProgress, f) {
			s.logger.Warn("flight already in progress", "flight", f.ID().String())
			continue
		}

		d := f.Drone()
		if err := d.Launch(); err != nil {
			s.logger.Warn("skipping flight", "flight", f.ID().String(), "drone", d.Name(), "error", err)
			continue
		}

		f.Start()
		s.inProgress = append(s.inProgress, f)
		started++

		s.logger.Info("flight started",
			"flight", f.ID().String(),
			"drone", d.Name(),
			"orders", len(f.Orders()),
			"etaMinutes", f.EstimatedTotalMinutes(),
		)
	}
	return started
}

// Advance runs one tick of deltaMinutes simulation minutes.
//
// Returns a ValueIsOutOfRangeError for a negative, NaN or infinite delta.
// A zero delta still processes recharge cycles.
func (s *FlightSimulator) Advance(deltaMinutes float64) (TickReport, error) {
	if math.IsNaN(deltaMinutes) || math.IsInf(deltaMinutes, 0) || deltaMinutes < 0 {
		return TickReport{}, errs.NewValueIsOutOfRangeError("delta minutes", deltaMinutes, 0, math.MaxFloat64)
	}

	report := TickReport{DeltaMinutes: deltaMinutes}
	var errList []error

	for _, d := range s.fleet {
		if d.Status() != drone.Recharging {
			continue
		}
		finished, err := d.TickRecharge()
		if err != nil {
			errList = append(errList, err)
			continue
		}
		if finished {
			report.Recharged = append(report.Recharged, d)
			s.logger.Info("drone recharged", "drone", d.Name())
		}
	}

	stillFlying := s.inProgress[:0]
	for _, f := range s.inProgress {
		d := f.Drone()

		if remaining := f.Advance(deltaMinutes); remaining > 0 {
			if err := d.MoveTo(f.Position()); err != nil {
				errList = append(errList, err)
			}
			stillFlying = append(stillFlying, f)
			continue
		}

		if err := d.Land(f.TotalDistanceKm(), s.lowBatteryThreshold, s.rechargeCycles); err != nil {
			errList = append(errList, fmt.Errorf("landing %s: %w", d.Name(), err))
			stillFlying = append(stillFlying, f)
			continue
		}

		report.Completed = append(report.Completed, f)
		s.logger.Info("flight completed",
			"flight", f.ID().String(),
			"drone", d.Name(),
			"batteryPercent", d.BatteryPercent(),
		)

		if d.Status() == drone.Recharging {
			report.LowBattery = append(report.LowBattery, d)
			s.logger.Warn("low battery, recharging",
				"drone", d.Name(),
				"batteryPercent", d.BatteryPercent(),
				"cycles", d.RechargeCyclesRemaining(),
			)
		}
	}
	clear(s.inProgress[len(stillFlying):])
	s.inProgress = stillFlying

	return report, errors.Join(errList...)
}

// FlightsInProgress returns a copy of the in-progress flights in start order.
func (s *FlightSimulator) FlightsInProgress() []*flight.Flight {
	return slices.Clone(s.inProgress)
}

// Fleet returns a copy of the simulated fleet slice. The drones are shared.
func (s *FlightSimulator) Fleet() []*drone.Drone {
	return slices.Clone(s.fleet)
}

package services_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/flight"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/core/domain/services"
	"dronedelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimulator(t *testing.T, fleet []*drone.Drone, opts ...services.SimulatorOption) *services.FlightSimulator {
	t.Helper()
	s, err := services.NewFlightSimulator(fleet, opts...)
	require.NoError(t, err)
	return s
}

func TestNewFlightSimulator(t *testing.T) {
	t.Run("should reject empty fleet", func(t *testing.T) {
		s, err := services.NewFlightSimulator([]*drone.Drone{})

		assert.Nil(t, s)
		require.ErrorIs(t, err, services.ErrFleetConfiguration)
	})

	t.Run("should reject invalid options", func(t *testing.T) {
		fleet := []*drone.Drone{newDrone(t, "Mufasa", 10, 60)}

		_, err := services.NewFlightSimulator(fleet,
			services.WithLowBatteryThreshold(120),
			services.WithRechargeCycles(0),
		)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "low battery threshold")
		assert.Contains(t, err.Error(), "recharge cycles")
	})
}

func TestFlightSimulator_EndToEnd(t *testing.T) {
	d := newDrone(t, "Mufasa", 10, 60)
	fleet := []*drone.Drone{d}
	m := newManager(t, fleet...)
	s := newSimulator(t, fleet)

	flights := m.Allocate([]*order.Order{newOrder(t, 3, 4, 2, order.High)})

	require.Len(t, flights, 1)
	assert.InDelta(t, 10.0, flights[0].TotalDistanceKm(), 1e-9)
	assert.Equal(t, drone.Loading, d.Status())

	assert.Equal(t, 1, s.StartFlights(flights))
	assert.Equal(t, drone.InFlight, d.Status())
	assert.Len(t, s.FlightsInProgress(), 1)

	report, err := s.Advance(flights[0].EstimatedTotalMinutes())

	require.NoError(t, err)
	assert.Equal(t, flights, report.Completed)
	assert.Equal(t, drone.Idle, d.Status())
	assert.Equal(t, kernel.Base, d.Position())
	assert.Empty(t, s.FlightsInProgress())
	assert.InDelta(t, 100-10/drone.DefaultConsumptionKmPerPercent, d.BatteryPercent(), 1e-9)
}

func TestFlightSimulator_Advance(t *testing.T) {
	t.Run("completes on the first tick reaching the estimate and not before", func(t *testing.T) {
		// 10km at 10km/h is exactly 10 simulation minutes
		d := newDrone(t, "Mufasa", 10, 10)
		fleet := []*drone.Drone{d}
		s := newSimulator(t, fleet)
		flights := newManager(t, fleet...).Allocate([]*order.Order{newOrder(t, 3, 4, 1, order.Low)})
		require.Len(t, flights, 1)
		require.InDelta(t, 10.0, flights[0].EstimatedTotalMinutes(), 1e-9)
		s.StartFlights(flights)

		for range 3 {
			report, err := s.Advance(3)
			require.NoError(t, err)
			assert.Empty(t, report.Completed)
			assert.Equal(t, drone.InFlight, d.Status())
		}

		report, err := s.Advance(1)
		require.NoError(t, err)
		assert.Len(t, report.Completed, 1)
		assert.Equal(t, drone.Idle, d.Status())
	})

	t.Run("interpolates position out and back", func(t *testing.T) {
		d := newDrone(t, "Mufasa", 10, 10)
		fleet := []*drone.Drone{d}
		s := newSimulator(t, fleet)
		s.StartFlights(newManager(t, fleet...).Allocate([]*order.Order{newOrder(t, 3, 4, 1, order.Low)}))

		_, err := s.Advance(2.5)
		require.NoError(t, err)
		assert.InDelta(t, 1.5, d.Position().X(), 1e-9)
		assert.InDelta(t, 2.0, d.Position().Y(), 1e-9)

		_, err = s.Advance(2.5)
		require.NoError(t, err)
		assert.InDelta(t, 3.0, d.Position().X(), 1e-9)
		assert.InDelta(t, 4.0, d.Position().Y(), 1e-9)

		_, err = s.Advance(2.5)
		require.NoError(t, err)
		assert.InDelta(t, 1.5, d.Position().X(), 1e-9)
		assert.InDelta(t, 2.0, d.Position().Y(), 1e-9)
	})

	t.Run("low battery landing starts recharge processed from the next tick", func(t *testing.T) {
		d := newDrone(t, "Simba", 8, 60, drone.WithConsumption(0.1))
		fleet := []*drone.Drone{d}
		s := newSimulator(t, fleet, services.WithRechargeCycles(3))
		s.StartFlights(newManager(t, fleet...).Allocate([]*order.Order{newOrder(t, 3, 4, 1, order.Low)}))

		report, err := s.Advance(100)

		require.NoError(t, err)
		assert.Equal(t, []*drone.Drone{d}, report.LowBattery)
		assert.Equal(t, drone.Recharging, d.Status())
		assert.InDelta(t, 0.0, d.BatteryPercent(), 0)
		assert.Equal(t, 3, d.RechargeCyclesRemaining())

		for want := 2; want > 0; want-- {
			report, err = s.Advance(0)
			require.NoError(t, err)
			assert.Empty(t, report.Recharged)
			assert.Equal(t, want, d.RechargeCyclesRemaining())
		}

		report, err = s.Advance(0)
		require.NoError(t, err)
		assert.Equal(t, []*drone.Drone{d}, report.Recharged)
		assert.Equal(t, drone.Idle, d.Status())
		assert.InDelta(t, 100.0, d.BatteryPercent(), 0)
	})

	t.Run("battery stays within bounds over many flights", func(t *testing.T) {
		fleet := []*drone.Drone{
			newDrone(t, "Mufasa", 10, 60, drone.WithConsumption(0.3)),
			newDrone(t, "Simba", 8, 60, drone.WithConsumption(0.5)),
		}
		m := newManager(t, fleet...)
		s := newSimulator(t, fleet, services.WithRechargeCycles(1))

		for i := range 30 {
			pending := append(m.PendingOrders(), newOrder(t, float64(i%7), float64(i%4), 2, order.Medium))
			s.StartFlights(m.Allocate(pending))
			_, err := s.Advance(5)
			require.NoError(t, err)

			for _, d := range s.Fleet() {
				assert.GreaterOrEqual(t, d.BatteryPercent(), 0.0)
				assert.LessOrEqual(t, d.BatteryPercent(), 100.0)
			}
		}
	})

	t.Run("rejects negative and NaN delta", func(t *testing.T) {
		s := newSimulator(t, []*drone.Drone{newDrone(t, "Mufasa", 10, 60)})

		_, err := s.Advance(-1)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = s.Advance(math.NaN())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestFlightSimulator_StartFlights(t *testing.T) {
	t.Run("skips flights whose drone is not loading", func(t *testing.T) {
		d := newDrone(t, "Mufasa", 10, 60)
		s := newSimulator(t, []*drone.Drone{d})
		f, err := flight.NewFlight(d, kernel.EuclideanDistance{})
		require.NoError(t, err)
		require.NoError(t, f.AddOrder(newOrder(t, 1, 1, 1, order.Low)))

		assert.Zero(t, s.StartFlights([]*flight.Flight{f, nil}))
		assert.Empty(t, s.FlightsInProgress())
		assert.Equal(t, drone.Idle, d.Status())
	})

	t.Run("does not start a flight twice", func(t *testing.T) {
		d := newDrone(t, "Mufasa", 10, 60)
		fleet := []*drone.Drone{d}
		s := newSimulator(t, fleet)
		flights := newManager(t, fleet...).Allocate([]*order.Order{newOrder(t, 1, 1, 1, order.Low)})

		assert.Equal(t, 1, s.StartFlights(flights))
		assert.Zero(t, s.StartFlights(flights))
		assert.Len(t, s.FlightsInProgress(), 1)
	})

	t.Run("logs lifecycle events", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		d := newDrone(t, "Mufasa", 10, 60)
		fleet := []*drone.Drone{d}
		s := newSimulator(t, fleet, services.WithLogger(logger))

		s.StartFlights(newManager(t, fleet...).Allocate([]*order.Order{newOrder(t, 1, 1, 1, order.Low)}))
		_, err := s.Advance(60)
		require.NoError(t, err)

		assert.Contains(t, buf.String(), "flight started")
		assert.Contains(t, buf.String(), "flight completed")
		assert.Contains(t, buf.String(), "component=FlightSimulator")
	})
}

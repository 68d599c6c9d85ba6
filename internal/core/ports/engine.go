package ports

import (
	"dronedelivery/internal/core/domain/model/flight"
	"dronedelivery/internal/core/domain/services"
)

// Dispatcher is the allocation strategy used by the application layer.
type Dispatcher interface {
	services.FleetManager
}

// Simulator advances started flights over simulation ticks.
type Simulator interface {
	StartFlights(flights []*flight.Flight) int
	Advance(deltaMinutes float64) (services.TickReport, error)
	FlightsInProgress() []*flight.Flight
}

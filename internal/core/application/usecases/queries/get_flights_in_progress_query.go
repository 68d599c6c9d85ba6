package queries

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

var ErrGetFlightsInProgressQueryIsNotConstructed = errors.New(
	"GetFlightsInProgressQuery must be created via NewGetFlightsInProgressQuery constructor",
)

// GetFlightsInProgressQuery retrieves the flights currently in the air.
type GetFlightsInProgressQuery struct {
	guard guard.ConstructorGuard
}

// NewGetFlightsInProgressQuery creates a parameterless flights query.
func NewGetFlightsInProgressQuery() GetFlightsInProgressQuery {
	return GetFlightsInProgressQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetFlightsInProgressQuery) Validate() error {
	return q.guard.Validate(ErrGetFlightsInProgressQueryIsNotConstructed)
}

// GetFlightsInProgressQueryResponse is the read model of one flight.
type GetFlightsInProgressQueryResponse struct {
	ID                    kernel.UUID
	DroneID               kernel.UUID
	DroneName             string
	OrderIDs              []kernel.UUID
	Route                 []kernel.Point
	TotalWeightKg         float64
	TotalDistanceKm       float64
	EstimatedTotalMinutes float64
	ElapsedMinutes        float64
	Position              kernel.Point
}

// Package queries contains read operations over the drone delivery system.
// Queries return read models and never change state; they still run inside a
// unit of work so they observe the engine between ticks, never during one.
package queries

import (
	"errors"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

var ErrGetFleetStatusQueryIsNotConstructed = errors.New(
	"GetFleetStatusQuery must be created via NewGetFleetStatusQuery constructor",
)

// GetFleetStatusQuery retrieves the current state of every drone.
//
// Example:
//
//	query := NewGetFleetStatusQuery()
//	handler := NewGetFleetStatusQueryHandler(uowFactory)
//
//	drones, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve fleet: %w", err)
//	}
//
//	for _, d := range drones {
//	    fmt.Printf("%s is %s at %s (%.0f%%)\n", d.Name, d.Status, d.Position, d.BatteryPercent)
//	}
type GetFleetStatusQuery struct {
	guard guard.ConstructorGuard
}

// NewGetFleetStatusQuery creates a parameterless fleet status query.
func NewGetFleetStatusQuery() GetFleetStatusQuery {
	return GetFleetStatusQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetFleetStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetFleetStatusQueryIsNotConstructed)
}

// GetFleetStatusQueryResponse is the read model of one drone.
type GetFleetStatusQueryResponse struct {
	ID                      kernel.UUID
	Name                    string
	Status                  drone.Status
	Position                kernel.Point
	BatteryPercent          float64
	RechargeCyclesRemaining int
	CapacityKg              float64
	CruiseSpeedKmh          float64
	MaxRouteRangeKm         float64
}

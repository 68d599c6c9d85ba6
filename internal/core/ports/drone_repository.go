package ports

import (
	"context"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
)

// DroneRepository gives read access to the fleet. The fleet is fixed at
// start-up; drones are mutated in place by the engine, never replaced.
type DroneRepository interface {
	// GetAll returns every drone in fleet order.
	GetAll(ctx context.Context) ([]*drone.Drone, error)

	// Get retrieves a drone by its identifier.
	// Returns an ObjectNotFoundError for unknown identifiers.
	Get(ctx context.Context, id kernel.UUID) (*drone.Drone, error)
}

// Package dronerepo exposes the fixed fleet through the DroneRepository port.
package dronerepo

import (
	"context"
	"slices"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/ports"
	"dronedelivery/internal/pkg/errs"
)

var _ ports.DroneRepository = (*InMemoryDroneRepository)(nil)

// InMemoryDroneRepository reads the fleet slice shared with the engine.
type InMemoryDroneRepository struct {
	fleet []*drone.Drone
}

// NewInMemoryDroneRepository wraps fleet. The slice is not copied: the
// engine mutates the same drones.
func NewInMemoryDroneRepository(fleet []*drone.Drone) *InMemoryDroneRepository {
	return &InMemoryDroneRepository{fleet: fleet}
}

// GetAll returns every drone in fleet order.
func (r *InMemoryDroneRepository) GetAll(_ context.Context) ([]*drone.Drone, error) {
	return slices.Clone(r.fleet), nil
}

// Get retrieves a drone by ID.
func (r *InMemoryDroneRepository) Get(_ context.Context, id kernel.UUID) (*drone.Drone, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	for _, d := range r.fleet {
		if d.ID().IsEqual(id) {
			return d, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("drone", id.String())
}

package queries

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

var ErrGetDroneQueryIsNotConstructed = errors.New(
	"GetDroneQuery must be created via NewGetDroneQuery constructor",
)

// GetDroneQuery retrieves the current state of one drone.
// The handler answers with a GetFleetStatusQueryResponse.
type GetDroneQuery struct {
	id    kernel.UUID
	guard guard.ConstructorGuard
}

// NewGetDroneQuery creates a query for the drone identified by id.
func NewGetDroneQuery(id kernel.UUID) (GetDroneQuery, error) {
	if err := id.Validate(); err != nil {
		return GetDroneQuery{}, err
	}

	return GetDroneQuery{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDroneQuery) Validate() error {
	return q.guard.Validate(ErrGetDroneQueryIsNotConstructed)
}

func (q GetDroneQuery) ID() kernel.UUID {
	return q.id
}

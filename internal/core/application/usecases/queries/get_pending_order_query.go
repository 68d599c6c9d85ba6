package queries

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

var ErrGetPendingOrderQueryIsNotConstructed = errors.New(
	"GetPendingOrderQuery must be created via NewGetPendingOrderQuery constructor",
)

// GetPendingOrderQuery retrieves one queued order with the reason it is still
// waiting. Orders already placed on a flight are not found.
type GetPendingOrderQuery struct {
	id    kernel.UUID
	guard guard.ConstructorGuard
}

// NewGetPendingOrderQuery creates a query for the order identified by id.
func NewGetPendingOrderQuery(id kernel.UUID) (GetPendingOrderQuery, error) {
	if err := id.Validate(); err != nil {
		return GetPendingOrderQuery{}, err
	}

	return GetPendingOrderQuery{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPendingOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrderQueryIsNotConstructed)
}

func (q GetPendingOrderQuery) ID() kernel.UUID {
	return q.id
}

package queries

import (
	"errors"
	"time"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/pkg/guard"
)

var ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
	"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
)

// GetPendingOrdersQuery retrieves the orders waiting for a drone, each with
// the reason it has not been allocated yet.
type GetPendingOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingOrdersQuery creates a parameterless pending orders query.
func NewGetPendingOrdersQuery() GetPendingOrdersQuery {
	return GetPendingOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

// GetPendingOrdersQueryResponse is the read model of one pending order.
type GetPendingOrdersQueryResponse struct {
	ID          kernel.UUID
	Destination kernel.Point
	WeightKg    float64
	Priority    order.Priority
	CreatedAt   time.Time
	Explanation string
}

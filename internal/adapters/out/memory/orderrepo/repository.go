// Package orderrepo keeps the pending order queue in memory.
package orderrepo

import (
	"context"
	"slices"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/core/ports"
	"dronedelivery/internal/pkg/errs"
)

var _ ports.OrderRepository = (*InMemoryOrderRepository)(nil)

// ErrOrderAlreadyQueued is returned by Add for a duplicate identifier.
var ErrOrderAlreadyQueued = errs.NewValueIsInvalidError("order is already queued")

// InMemoryOrderRepository implements OrderRepository over a slice.
// It is not synchronised; callers reach it through a unit of work.
type InMemoryOrderRepository struct {
	pending []*order.Order
}

// NewInMemoryOrderRepository creates an empty queue.
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{}
}

// Add appends a validated order to the queue.
func (r *InMemoryOrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if r.indexOf(aggregate.ID()) >= 0 {
		return ErrOrderAlreadyQueued
	}

	r.pending = append(r.pending, aggregate)
	return nil
}

// Get retrieves a queued order by ID.
func (r *InMemoryOrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	i := r.indexOf(id)
	if i < 0 {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return r.pending[i], nil
}

// GetAllPending returns a copy of the queue in arrival order.
func (r *InMemoryOrderRepository) GetAllPending(_ context.Context) ([]*order.Order, error) {
	return slices.Clone(r.pending), nil
}

// ReplacePending swaps the queue for a copy of orders.
func (r *InMemoryOrderRepository) ReplacePending(_ context.Context, orders []*order.Order) error {
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return err
		}
	}

	r.pending = slices.Clone(orders)
	return nil
}

// Snapshot captures the queue so a unit of work can restore it.
func (r *InMemoryOrderRepository) Snapshot() []*order.Order {
	return slices.Clone(r.pending)
}

// Restore resets the queue to a previous snapshot.
func (r *InMemoryOrderRepository) Restore(snapshot []*order.Order) {
	r.pending = snapshot
}

func (r *InMemoryOrderRepository) indexOf(id kernel.UUID) int {
	return slices.IndexFunc(r.pending, func(o *order.Order) bool {
		return o.ID().IsEqual(id)
	})
}

// Package ports defines the contracts between the drone delivery core and its
// adapters: the pending order queue, the fleet, the engine services and the
// metrics sink.
package ports

import (
	"context"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
)

// OrderRepository holds the queue of orders waiting for a drone.
// Orders leave the queue when the allocator places them on a flight.
type OrderRepository interface {
	// Add appends a new order to the end of the pending queue.
	// The order must be valid and not already queued.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves a pending order by its identifier.
	// Returns an ObjectNotFoundError when the order is not queued.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPending returns the pending orders in arrival order.
	GetAllPending(ctx context.Context) ([]*order.Order, error)

	// ReplacePending swaps the whole queue for orders, typically the
	// leftovers of an allocation pass.
	//
	// Example:
	//   flights := manager.Allocate(pending)
	//   if err := repo.ReplacePending(ctx, manager.PendingOrders()); err != nil {
	//       return err
	//   }
	ReplacePending(ctx context.Context, orders []*order.Order) error
}

// Package commands contains the use cases that change the state of the drone
// delivery system: queueing orders, dispatching flights and advancing the
// simulation clock. Every handler validates its command, then runs inside a
// unit of work: Begin, deferred Rollback, Commit.
package commands

import (
	"context"

	"dronedelivery/internal/core/ports"
)

// Unit of Work interfaces give command handlers exclusive access to the
// pending queue and the fleet for the duration of one use case.
type (
	// TxManager handles the unit of work lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the pending order queue.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DroneRepoFactory provides access to the fleet.
	DroneRepoFactory interface {
		DroneRepository() ports.DroneRepository
	}

	// OrderUoW is used by commands that only touch the pending queue.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates order units of work.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW is used by commands that touch both the queue and the fleet.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   pending, err := uow.OrderRepository().GetAllPending(ctx)
	//   drones, err := uow.DroneRepository().GetAll(ctx)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		DroneRepoFactory
	}

	// UoWFactory creates units of work spanning the queue and the fleet.
	UoWFactory interface {
		Create() UoW
	}
)

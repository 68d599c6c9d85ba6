package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork for each command or query.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the boundary of one use case. Only one unit of work is active
// at a time, so the engine never sees interleaved calls from the HTTP adapter
// and the scheduled jobs.
type UnitOfWork interface {
	// Begin waits for exclusive access or for ctx to be done.
	Begin(ctx context.Context) error

	// Commit keeps the changes and releases exclusive access.
	// Returns an error if no transaction is active.
	Commit(ctx context.Context) error

	// Rollback restores the pending queue captured by Begin and releases
	// exclusive access. It is a no-op after Commit.
	Rollback(ctx context.Context) error

	// OrderRepository returns the pending order queue.
	OrderRepository() OrderRepository

	// DroneRepository returns the fleet.
	DroneRepository() DroneRepository
}

// Package memory provides the in-process Unit of Work used by every use case.
//
// The engine keeps its state in memory and is not safe for concurrent use,
// while both the HTTP adapter and the scheduled jobs call into it. The unit
// of work therefore admits one transaction at a time: Begin waits for
// exclusive access, Commit and Rollback release it.
//
// Basic Transaction Management:
//
//	factory := NewUnitOfWorkFactory(orders, drones)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx) // no-op after Commit
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Rollback restores the pending order queue captured by Begin. Drone state is
// owned by the engine and is not rolled back.
package memory

import (
	"context"
	"errors"

	"dronedelivery/internal/adapters/out/memory/dronerepo"
	"dronedelivery/internal/adapters/out/memory/orderrepo"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/core/ports"
)

var (
	ErrNoActiveTransaction      = errors.New("no active transaction")
	ErrTransactionAlreadyActive = errors.New("transaction already active")
)

// SerialTxManager admits one transaction at a time across all units of work
// created by the same factory.
type SerialTxManager struct {
	sem chan struct{}
}

// NewSerialTxManager creates an unlocked manager.
func NewSerialTxManager() *SerialTxManager {
	return &SerialTxManager{sem: make(chan struct{}, 1)}
}

func (m *SerialTxManager) acquire(ctx context.Context) error {
	select {
	case m.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *SerialTxManager) release() {
	<-m.sem
}

// UnitOfWorkFactory creates units of work sharing one SerialTxManager and
// the same repositories.
type UnitOfWorkFactory struct {
	tx     *SerialTxManager
	orders *orderrepo.InMemoryOrderRepository
	drones *dronerepo.InMemoryDroneRepository
}

// NewUnitOfWorkFactory creates a factory over the given repositories.
func NewUnitOfWorkFactory(
	orders *orderrepo.InMemoryOrderRepository,
	drones *dronerepo.InMemoryDroneRepository,
) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{
		tx:     NewSerialTxManager(),
		orders: orders,
		drones: drones,
	}
}

// Create produces a new, inactive UnitOfWork.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{
		tx:     f.tx,
		orders: f.orders,
		drones: f.drones,
	}
}

// UnitOfWork is a single use-case boundary. It must not be shared between
// goroutines.
type UnitOfWork struct {
	tx     *SerialTxManager
	orders *orderrepo.InMemoryOrderRepository
	drones *dronerepo.InMemoryDroneRepository

	active   bool
	snapshot []*order.Order
}

// Begin waits for exclusive access or for ctx to be done.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.active {
		return ErrTransactionAlreadyActive
	}

	if err := uow.tx.acquire(ctx); err != nil {
		return err
	}

	uow.snapshot = uow.orders.Snapshot()
	uow.active = true
	return nil
}

// Commit keeps the changes and releases exclusive access.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.finish()
	return nil
}

// Rollback restores the pending queue and releases exclusive access.
// Calling it without an active transaction does nothing.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return nil
	}

	uow.orders.Restore(uow.snapshot)
	uow.finish()
	return nil
}

// OrderRepository returns the pending order queue.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return uow.orders
}

// DroneRepository returns the fleet.
func (uow *UnitOfWork) DroneRepository() ports.DroneRepository {
	return uow.drones
}

func (uow *UnitOfWork) finish() {
	uow.active = false
	uow.snapshot = nil
	uow.tx.release()
}

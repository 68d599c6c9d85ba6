package commands_test

import (
	"context"

	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/flight"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/core/domain/services"
	"dronedelivery/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetAllPending(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) ReplacePending(ctx context.Context, orders []*order.Order) error {
	args := m.Called(ctx, orders)
	return args.Error(0)
}

type MockDroneRepository struct{ mock.Mock }

func (m *MockDroneRepository) GetAll(ctx context.Context) ([]*drone.Drone, error) {
	args := m.Called(ctx)
	drones, _ := args.Get(0).([]*drone.Drone)
	return drones, args.Error(1)
}

func (m *MockDroneRepository) Get(ctx context.Context, id kernel.UUID) (*drone.Drone, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*drone.Drone)
	return d, args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) DroneRepository() ports.DroneRepository {
	args := m.Called()
	return args.Get(0).(ports.DroneRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockDispatcher struct{ mock.Mock }

func (m *MockDispatcher) Allocate(pending []*order.Order) []*flight.Flight {
	args := m.Called(pending)
	flights, _ := args.Get(0).([]*flight.Flight)
	return flights
}

func (m *MockDispatcher) PendingOrders() []*order.Order {
	args := m.Called()
	orders, _ := args.Get(0).([]*order.Order)
	return orders
}

func (m *MockDispatcher) Diagnose(o *order.Order) services.Diagnosis {
	args := m.Called(o)
	return args.Get(0).(services.Diagnosis)
}

func (m *MockDispatcher) ExplainFailure(o *order.Order) string {
	args := m.Called(o)
	return args.String(0)
}

type MockSimulator struct{ mock.Mock }

func (m *MockSimulator) StartFlights(flights []*flight.Flight) int {
	args := m.Called(flights)
	return args.Int(0)
}

func (m *MockSimulator) Advance(deltaMinutes float64) (services.TickReport, error) {
	args := m.Called(deltaMinutes)
	return args.Get(0).(services.TickReport), args.Error(1)
}

func (m *MockSimulator) FlightsInProgress() []*flight.Flight {
	args := m.Called()
	flights, _ := args.Get(0).([]*flight.Flight)
	return flights
}

type MockMetricsRecorder struct{ mock.Mock }

func (m *MockMetricsRecorder) OrdersCreated(n int)    { m.Called(n) }
func (m *MockMetricsRecorder) OrdersAllocated(n int)  { m.Called(n) }
func (m *MockMetricsRecorder) FlightsStarted(n int)   { m.Called(n) }
func (m *MockMetricsRecorder) FlightsCompleted(n int) { m.Called(n) }
func (m *MockMetricsRecorder) PendingOrders(n int)    { m.Called(n) }
func (m *MockMetricsRecorder) DronesByStatus(counts map[drone.Status]int) {
	m.Called(counts)
}

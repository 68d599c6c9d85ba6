package queries_test

import (
	"testing"

	"dronedelivery/internal/adapters/out/memory"
	"dronedelivery/internal/adapters/out/memory/dronerepo"
	"dronedelivery/internal/adapters/out/memory/orderrepo"
	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

type fixture struct {
	fleet     []*drone.Drone
	orders    *orderrepo.InMemoryOrderRepository
	factory   *memory.UnitOfWorkFactory
	manager   *services.GreedyFleetManager
	simulator *services.FlightSimulator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	mufasa, err := drone.NewDrone("Mufasa", 10, 60, drone.WithMaxRouteRange(20))
	require.NoError(t, err)
	simba, err := drone.NewDrone("Simba", 8, 60, drone.WithMaxRouteRange(15))
	require.NoError(t, err)
	fleet := []*drone.Drone{mufasa, simba}

	manager, err := services.NewGreedyFleetManager(fleet, kernel.EuclideanDistance{})
	require.NoError(t, err)
	simulator, err := services.NewFlightSimulator(fleet)
	require.NoError(t, err)

	orders := orderrepo.NewInMemoryOrderRepository()
	return &fixture{
		fleet:     fleet,
		orders:    orders,
		factory:   memory.NewUnitOfWorkFactory(orders, dronerepo.NewInMemoryDroneRepository(fleet)),
		manager:   manager,
		simulator: simulator,
	}
}

func (f *fixture) addOrder(t *testing.T, x, y, weight float64, priority order.Priority) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewPoint(x, y), weight, priority)
	require.NoError(t, err)
	require.NoError(t, f.orders.Add(t.Context(), o))
	return o
}

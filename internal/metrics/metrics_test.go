package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Counters(t *testing.T) {
	r := metrics.NewRegistry()

	r.OrdersCreated(2)
	r.OrdersCreated(1)
	r.OrdersAllocated(2)
	r.FlightsStarted(1)
	r.FlightsCompleted(1)
	r.PendingOrders(4)
	r.PendingOrders(1)

	assert.InDelta(t, 3.0, testutil.ToFloat64(r.OrdersCreatedTotal), 0)
	assert.InDelta(t, 2.0, testutil.ToFloat64(r.OrdersAllocatedTotal), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(r.FlightsStartedTotal), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(r.FlightsCompletedTotal), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(r.OrdersPending), 0)
}

func TestRegistry_DronesByStatus(t *testing.T) {
	r := metrics.NewRegistry()

	r.DronesByStatus(map[drone.Status]int{drone.Idle: 3, drone.InFlight: 1})
	r.DronesByStatus(map[drone.Status]int{drone.Idle: 2, drone.Recharging: 2})

	assert.InDelta(t, 2.0, testutil.ToFloat64(r.Drones.WithLabelValues("Idle")), 0)
	assert.InDelta(t, 0.0, testutil.ToFloat64(r.Drones.WithLabelValues("InFlight")), 0)
	assert.InDelta(t, 2.0, testutil.ToFloat64(r.Drones.WithLabelValues("Recharging")), 0)
	assert.Equal(t, 6, testutil.CollectAndCount(r.Drones))
}

func TestRegistry_ObserveHTTPRequest(t *testing.T) {
	r := metrics.NewRegistry()

	r.ObserveHTTPRequest("/api/v1/drones", http.MethodGet, http.StatusOK, 3*time.Millisecond)
	r.ObserveHTTPRequest("/api/v1/drones", http.MethodGet, http.StatusOK, 5*time.Millisecond)

	assert.InDelta(t, 2.0,
		testutil.ToFloat64(r.HTTPRequestsTotal.WithLabelValues("/api/v1/drones", "GET", "200")), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(r.HTTPRequestDuration))
}

func TestRegistry_Handler(t *testing.T) {
	r := metrics.NewRegistry()
	r.FlightsStarted(1)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "dronedelivery_flights_started_total 1")
	assert.Contains(t, string(body), "go_goroutines")
}

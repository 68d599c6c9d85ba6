// Package metrics exposes dispatch, simulation and HTTP metrics to Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dronedelivery"

var _ ports.MetricsRecorder = (*Registry)(nil)

// Registry holds all Prometheus metrics of the service on its own registry.
type Registry struct {
	registry *prometheus.Registry

	// Business Metrics
	OrdersCreatedTotal    prometheus.Counter
	OrdersAllocatedTotal  prometheus.Counter
	FlightsStartedTotal   prometheus.Counter
	FlightsCompletedTotal prometheus.Counter
	OrdersPending         prometheus.Gauge
	Drones                *prometheus.GaugeVec

	// HTTP Metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// NewRegistry creates a registry with the service metrics plus the Go
// runtime and process collectors.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Registry{
		registry: reg,

		OrdersCreatedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Total orders accepted into the pending queue",
		}),
		OrdersAllocatedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_allocated_total",
			Help:      "Total orders placed on a flight",
		}),
		FlightsStartedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flights_started_total",
			Help:      "Total flights launched by the simulator",
		}),
		FlightsCompletedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flights_completed_total",
			Help:      "Total flights that returned to base",
		}),
		OrdersPending: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "orders_pending",
			Help:      "Orders waiting for a drone",
		}),
		Drones: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "drones",
				Help:      "Drones by status",
			},
			[]string{"status"},
		),

		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests processed by route, method, and status code",
			},
			[]string{"route", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency distribution in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"route", "method"},
		),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Gatherer exposes the underlying registry, mainly for tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

func (r *Registry) OrdersCreated(n int) {
	r.OrdersCreatedTotal.Add(float64(n))
}

func (r *Registry) OrdersAllocated(n int) {
	r.OrdersAllocatedTotal.Add(float64(n))
}

func (r *Registry) FlightsStarted(n int) {
	r.FlightsStartedTotal.Add(float64(n))
}

func (r *Registry) FlightsCompleted(n int) {
	r.FlightsCompletedTotal.Add(float64(n))
}

func (r *Registry) PendingOrders(n int) {
	r.OrdersPending.Set(float64(n))
}

// DronesByStatus sets one gauge per status; statuses missing from counts are
// reported as zero.
func (r *Registry) DronesByStatus(counts map[drone.Status]int) {
	for s := drone.Idle; s <= drone.Recharging; s++ {
		r.Drones.WithLabelValues(s.String()).Set(float64(counts[s]))
	}
}

// ObserveHTTPRequest records one served request.
func (r *Registry) ObserveHTTPRequest(route, method string, status int, elapsed time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	r.HTTPRequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

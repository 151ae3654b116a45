package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus registry and HTTP server responsible
// for exposing application metrics.
type Metrics struct {
	// Server defines the HTTP server used to expose the /metrics endpoint.
	Server *http.Server

	// Registry is the Prometheus registry where all metrics are registered.
	// The service maintains its own isolated registry to prevent metric name
	// collisions when multiple services run in the same process.
	Registry *prometheus.Registry

	// Core service metrics
	searchesTotal   *prometheus.CounterVec
	storeErrors     prometheus.Counter
	requestDuration *prometheus.HistogramVec
}

// NewMetrics initializes and returns a new Metrics instance.
// It sets up a dedicated Prometheus registry, registers default system
// collectors, wraps all metrics with a constant `service` label, and creates
// an HTTP server exposing the /metrics endpoint.
//
// Access metrics at: http://<Address>/metrics
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	// All metrics emitted by this service automatically include the label:
	//   service="<cfg.ServiceName>"
	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry: registry,
	}

	m.searchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "searches_total",
		Help: "Total number of searches by filter source and outcome",
	}, []string{"source", "status"})

	m.storeErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "store_errors_total",
		Help: "Total number of failed study-store operations",
	})

	m.requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})

	wrappedRegistry.MustRegister(
		m.searchesTotal,
		m.storeErrors,
		m.requestDuration,
	)

	// Standard collectors provide essential runtime metrics for Go processes:
	//   - GoCollector: Memory usage, goroutines, GC stats
	//   - ProcessCollector: CPU, file descriptors, memory stats
	//   - BuildInfoCollector: Binary version/build info
	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: mux,
	}

	return m
}

// ObserveSearch increments the search counter for the given filter source
// ("model" or "fallback") and outcome ("ok" or "error").
func (m *Metrics) ObserveSearch(source, status string) {
	m.searchesTotal.WithLabelValues(source, status).Inc()
}

// IncrementStoreErrors counts a failed study-store operation.
func (m *Metrics) IncrementStoreErrors() {
	m.storeErrors.Inc()
}

// RecordRequestDuration records the elapsed time since start for an endpoint.
func (m *Metrics) RecordRequestDuration(start time.Time, endpoint string) {
	m.requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}

package metrics

import (
	"net/http"

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
	// Each service maintains its own isolated registry to prevent metric
	// name collisions.
	Registry *prometheus.Registry

	// Core built-in metrics
	requestsTotal     *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	batchesTotal      *prometheus.CounterVec
	oomFallbacksTotal prometheus.Counter
	itemsDroppedTotal prometheus.Counter
	reclaimsTotal     prometheus.Counter
}

// NewMetrics initializes and returns a new instance of the Metrics struct.
// It sets up a dedicated Prometheus registry, registers default system
// collectors, wraps all metrics with a constant `service` label, and
// creates an HTTP server exposing the /metrics endpoint.
func NewMetrics(cfg Config) *Metrics {
	// An isolated registry avoids metric collisions when multiple services
	// run in the same process.
	registry := prometheus.NewRegistry()

	// All metrics emitted by this service automatically include the label
	// service="<cfg.ServiceName>".
	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry: registry,
	}

	m.requestsTotal = createCounterVec("requests_total", "Total number of processed embedding requests", []string{"status"})
	m.requestDuration = createHistogramVec("request_duration_seconds", "Duration of embedding requests in seconds", []string{"endpoint"}, prometheus.DefBuckets)
	m.batchesTotal = createCounterVec("batches_total", "Total number of inference batches by input type", []string{"input_type"})
	m.oomFallbacksTotal = createCounter("oom_fallbacks_total", "Total number of batches degraded to singleton retries after device OOM")
	m.itemsDroppedTotal = createCounter("items_dropped_total", "Total number of items omitted during singleton fallback")
	m.reclaimsTotal = createCounter("memory_reclaims_total", "Total number of device memory reclamation passes")

	wrappedRegistry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.batchesTotal,
		m.oomFallbacksTotal,
		m.itemsDroppedTotal,
		m.reclaimsTotal,
	)

	// Standard collectors provide runtime metrics for Go processes:
	// memory usage, goroutines, GC stats, CPU, file descriptors.
	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	server := &http.Server{
		Addr:    cfg.Address,
		Handler: handler,
	}

	m.Server = server
	return m
}

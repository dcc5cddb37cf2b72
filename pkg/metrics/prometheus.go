// Package metrics provides Prometheus metrics for the teamboard service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var latencyBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 500, 1000, 2500}

// Manager owns every metric of the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Domain
	scoresComputed    prometheus.Counter
	scoreLatency      prometheus.Histogram
	salaryComparisons *prometheus.CounterVec
	degradedLookups   *prometheus.CounterVec
	allocationUpdates prometheus.Counter
	staffingProposals *prometheus.CounterVec

	// Roster
	rosterEmployees  prometheus.Gauge
	rosterProjects   prometheus.Gauge
	rosterOverloaded prometheus.Gauge

	// Archive pipeline
	archivePushes     *prometheus.CounterVec
	archiveDuplicates prometheus.Counter
	queueSize         prometheus.Gauge
	queueCapacity     prometheus.Gauge
	queueUtilization  prometheus.Gauge
	queueEnqueued     prometheus.Counter
	queueDequeued     prometheus.Counter
	queueRejected     prometheus.Counter
	workerCount       prometheus.Gauge
	workerActive      prometheus.Gauge
	workerLatency     prometheus.Histogram
	workerErrors      prometheus.Counter

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Errors
	errorsByComponent *prometheus.CounterVec
	errorsByType      *prometheus.CounterVec
	errorsByEndpoint  *prometheus.CounterVec

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

var globalManager *Manager //nolint:gochecknoglobals // process-wide metrics

// customRegistry keeps the default Go collectors out of /healthz.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // process-wide registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a manager and registers its metrics.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "teamboard",
		histogramBuckets: latencyBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.register()
	return m
}

func (m *Manager) counter(name, help string) prometheus.Counter {
	return promauto.With(m.registry).NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help,
	})
}

func (m *Manager) counterVec(name, help string, labels ...string) *prometheus.CounterVec {
	return promauto.With(m.registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help,
	}, labels)
}

func (m *Manager) gauge(name, help string) prometheus.Gauge {
	return promauto.With(m.registry).NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help,
	})
}

func (m *Manager) histogram(name, help string, buckets []float64) prometheus.Histogram {
	return promauto.With(m.registry).NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, Buckets: buckets,
	})
}

func (m *Manager) register() {
	m.scoresComputed = m.counter("scores_computed_total", "Performance scores computed")
	m.scoreLatency = m.histogram("score_latency_milliseconds", "Time to score one employee", m.histogramBuckets)
	m.salaryComparisons = m.counterVec("salary_comparisons_total", "Salary comparisons by result", "result")
	m.degradedLookups = m.counterVec("degraded_lookups_total", "Catalog lookups on unknown identifiers", "kind")
	m.allocationUpdates = m.counter("allocation_updates_total", "Staffing mutations that re-ran the aggregator")
	m.staffingProposals = m.counterVec("staffing_proposals_total", "Staffing proposals by outcome", "outcome")

	m.rosterEmployees = m.gauge("roster_employees", "Employees in the roster")
	m.rosterProjects = m.gauge("roster_projects", "Projects in the roster")
	m.rosterOverloaded = m.gauge("roster_overloaded_employees", "Employees at or above 100% allocation")

	m.archivePushes = m.counterVec("archive_pushes_total", "Archive pushes by target and outcome", "target", "outcome")
	m.archiveDuplicates = m.counter("archive_duplicates_total", "Archive requests skipped as already pushed")
	m.queueSize = m.gauge("queue_size", "Archive jobs waiting in the queue")
	m.queueCapacity = m.gauge("queue_capacity", "Archive queue capacity")
	m.queueUtilization = m.gauge("queue_utilization_percent", "Archive queue fill level")
	m.queueEnqueued = m.counter("queue_enqueue_total", "Archive jobs enqueued")
	m.queueDequeued = m.counter("queue_dequeue_total", "Archive jobs dequeued")
	m.queueRejected = m.counter("queue_rejected_total", "Archive jobs rejected by backpressure")
	m.workerCount = m.gauge("worker_count", "Archive workers running")
	m.workerActive = m.gauge("worker_active", "Archive workers processing a job")
	m.workerLatency = m.histogram("worker_processing_latency_milliseconds", "Time to process one archive job", m.histogramBuckets)
	m.workerErrors = m.counter("worker_errors_total", "Archive jobs that failed")

	m.httpRequests = m.counterVec("http_requests_total", "HTTP requests", "endpoint", "method", "status_code")
	m.httpRequestDuration = promauto.With(m.registry).NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})

	m.errorsByComponent = m.counterVec("errors_by_component_total", "Errors by component", "component", "error_type")
	m.errorsByType = m.counterVec("errors_by_type_total", "Errors by type and severity", "error_type", "severity")
	m.errorsByEndpoint = m.counterVec("errors_by_endpoint_total", "Errors by HTTP endpoint", "endpoint", "method", "error_type")

	m.systemMemoryUsage = m.gauge("system_memory_usage_bytes", "Heap in use")
	m.systemGoroutineCount = m.gauge("system_goroutine_count", "Goroutines")
	m.systemGCPauseTime = m.histogram("system_gc_pause_time_milliseconds", "Last GC pause",
		[]float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000})
}

// GetRegistry returns the registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Default returns the global manager.
func Default() *Manager {
	return globalManager
}

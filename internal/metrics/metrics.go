package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics provides observability for the directory service.
// Each instance owns its registry so tests can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	SearchDuration  prometheus.Histogram
	ProfilesCreated prometheus.Counter
	ProfilesUpdated prometheus.Counter
	StatusChanges   *prometheus.CounterVec
	StoreFailures   *prometheus.CounterVec
	LookupCacheHits *prometheus.CounterVec
}

// New creates a new Metrics instance with all directory metrics registered.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		SearchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "directory_search_duration_seconds",
			Help:    "Duration of volunteer searches including the total count",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		ProfilesCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "directory_profiles_created_total",
			Help: "Total number of volunteer profiles created",
		}),
		ProfilesUpdated: factory.NewCounter(prometheus.CounterOpts{
			Name: "directory_profiles_updated_total",
			Help: "Total number of volunteer profile updates",
		}),
		StatusChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "directory_status_changes_total",
			Help: "Verification status changes by target status",
		}, []string{"status"}),
		StoreFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "directory_store_failures_total",
			Help: "Persistent store failures by operation",
		}, []string{"operation"}),
		LookupCacheHits: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "directory_lookup_cache_requests_total",
			Help: "Lookup table cache requests by table and result",
		}, []string{"table", "result"}),
	}
}

// ObserveSearch records the duration of a search.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveSearch(start time.Time) {
	m.SearchDuration.Observe(time.Since(start).Seconds())
}

// IncrementStatusChange records a verification status change.
func (m *Metrics) IncrementStatusChange(status string) {
	m.StatusChanges.WithLabelValues(status).Inc()
}

// IncrementStoreFailure records a failed store operation.
func (m *Metrics) IncrementStoreFailure(operation string) {
	m.StoreFailures.WithLabelValues(operation).Inc()
}

// ObserveLookupCache records a cache hit or miss for a lookup table.
func (m *Metrics) ObserveLookupCache(table string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.LookupCacheHits.WithLabelValues(table, result).Inc()
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

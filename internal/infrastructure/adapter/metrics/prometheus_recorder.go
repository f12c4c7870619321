package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coreport "github.com/amirhossein-jamali/timeconv/internal/domain/port/core"
)

const namespace = "timeconv"

// PrometheusRecorder implements core.MetricsRecorder on a private registry
type PrometheusRecorder struct {
	registry    *prometheus.Registry
	conversions *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	batchSize   prometheus.Histogram
	errors      *prometheus.CounterVec
}

var _ coreport.MetricsRecorder = (*PrometheusRecorder)(nil)

// NewPrometheusRecorder creates a recorder and registers its collectors,
// together with the Go runtime and process collectors
func NewPrometheusRecorder() *PrometheusRecorder {
	r := &PrometheusRecorder{
		registry: prometheus.NewRegistry(),
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversions_total",
			Help:      "Number of conversions served, by source unit and whether they came from the cache.",
		}, []string{"unit", "source"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "conversion_duration_seconds",
			Help:      "Time spent serving a single conversion.",
			Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1},
		}, []string{"unit"}),
		batchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_size",
			Help:      "Number of items per batch request.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Number of rejected or failed requests, by error code.",
		}, []string{"code"}),
	}

	r.registry.MustRegister(
		r.conversions,
		r.latency,
		r.batchSize,
		r.errors,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// RegisterDBStats exports connection pool statistics of the history store
func (r *PrometheusRecorder) RegisterDBStats(db *sql.DB, dbName string) error {
	return r.registry.Register(collectors.NewDBStatsCollector(db, dbName))
}

// ObserveConversion records one served conversion
func (r *PrometheusRecorder) ObserveConversion(unit, source string, d time.Duration) {
	r.conversions.WithLabelValues(unit, source).Inc()
	r.latency.WithLabelValues(unit).Observe(d.Seconds())
}

// ObserveBatch records the size of an accepted batch
func (r *PrometheusRecorder) ObserveBatch(size int) {
	r.batchSize.Observe(float64(size))
}

// IncError counts a failed request by its error code
func (r *PrometheusRecorder) IncError(code int) {
	r.errors.WithLabelValues(strconv.Itoa(code)).Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (r *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

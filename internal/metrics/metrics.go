// Package metrics provides the centralized Prometheus metrics registry for
// the analytics engine.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	PipelineRunsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fixture_scout",
		Name:      "pipeline_runs_total",
		Help:      "Total number of full pipeline runs",
	})
	SnapshotFetchesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fixture_scout",
		Name:      "snapshot_fetches_total",
		Help:      "Total number of snapshot fetches from the data source",
	})
	SnapshotFetchErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fixture_scout",
		Name:      "snapshot_fetch_errors_total",
		Help:      "Total number of failed snapshot fetches",
	})
	RecordsSkippedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fixture_scout",
		Name:      "records_skipped_total",
		Help:      "Total stat records excluded from aggregation, by reason",
	}, []string{"reason"})
)

// Gauge metrics
var (
	OpponentsTracked = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "fixture_scout",
		Name:      "opponents_tracked",
		Help:      "Number of opponents with probability buckets in the last run",
	})
	LastReportTimestamp = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "fixture_scout",
		Name:      "last_report_timestamp_seconds",
		Help:      "Unix timestamp of the most recent analysis report",
	})
)

// Histogram metrics
var (
	PipelineDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "fixture_scout",
		Name:      "pipeline_duration_seconds",
		Help:      "Duration of full pipeline runs in seconds",
		Buckets:   prometheus.DefBuckets,
	})
	SnapshotFetchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "fixture_scout",
		Name:      "snapshot_fetch_duration_seconds",
		Help:      "Duration of snapshot fetches in seconds",
		Buckets:   []float64{0.1, 0.5, 1, 5, 10, 30, 60},
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(PipelineRunsTotal)
		registry.MustRegister(SnapshotFetchesTotal)
		registry.MustRegister(SnapshotFetchErrorsTotal)
		registry.MustRegister(RecordsSkippedTotal)

		registry.MustRegister(OpponentsTracked)
		registry.MustRegister(LastReportTimestamp)

		registry.MustRegister(PipelineDuration)
		registry.MustRegister(SnapshotFetchDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordPipelineRun records a completed pipeline run.
func RecordPipelineRun(durationSeconds float64, opponents int) {
	PipelineRunsTotal.Inc()
	PipelineDuration.Observe(durationSeconds)
	OpponentsTracked.Set(float64(opponents))
	LastReportTimestamp.SetToCurrentTime()
}

// RecordSnapshotFetch records a snapshot fetch attempt.
func RecordSnapshotFetch(durationSeconds float64, err error) {
	SnapshotFetchesTotal.Inc()
	SnapshotFetchDuration.Observe(durationSeconds)
	if err != nil {
		SnapshotFetchErrorsTotal.Inc()
	}
}

// RecordSkippedRecords records excluded stat records by reason.
func RecordSkippedRecords(reason string, count int) {
	if count <= 0 {
		return
	}
	RecordsSkippedTotal.WithLabelValues(reason).Add(float64(count))
}

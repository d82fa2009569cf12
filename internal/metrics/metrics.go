// Package metrics provides the centralized Prometheus metrics registry for the
// prediction backend.
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
	PredictionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "matchcast",
		Name:      "predictions_total",
		Help:      "Total number of predictions served, by league and outcome",
	}, []string{"league", "outcome"})
	UnknownTeamTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "matchcast",
		Name:      "unknown_team_predictions_total",
		Help:      "Predictions that resolved to the unknown sentinel",
	})
	UpstreamErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "matchcast",
		Name:      "upstream_errors_total",
		Help:      "Fixtures API failures by error code",
	}, []string{"code"})
	TrainingRunsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "matchcast",
		Name:      "training_runs_total",
		Help:      "Completed training runs by league",
	}, []string{"league"})
)

// Gauge metrics
var (
	FixtureCacheHitRatio = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "matchcast",
		Name:      "fixture_cache_hit_ratio",
		Help:      "Hit ratio of the fixture result cache",
	})
	LoadedLeagues = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "matchcast",
		Name:      "loaded_leagues",
		Help:      "Number of league model bundles loaded at startup",
	})
)

// Histogram metrics
var (
	UpstreamRequestDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "matchcast",
		Name:      "upstream_request_duration_seconds",
		Help:      "Latency of fixtures API requests in seconds",
		Buckets:   prometheus.DefBuckets,
	})
	PredictionDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "matchcast",
		Name:      "prediction_duration_seconds",
		Help:      "Latency of a single predict call in seconds",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(PredictionsTotal)
		registry.MustRegister(UnknownTeamTotal)
		registry.MustRegister(UpstreamErrorsTotal)
		registry.MustRegister(TrainingRunsTotal)

		registry.MustRegister(FixtureCacheHitRatio)
		registry.MustRegister(LoadedLeagues)

		registry.MustRegister(UpstreamRequestDuration)
		registry.MustRegister(PredictionDuration)
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

// Handler returns the Prometheus HTTP handler backed by the global registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

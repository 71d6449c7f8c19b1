package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// dashboard engine.
type Metrics struct {
	FetchRequests *prometheus.CounterVec   // labels: endpoint, outcome={success,transport_error,status_error,decode_error}
	FetchDuration *prometheus.HistogramVec // labels: endpoint

	// Hour-scoped state metrics.
	HourChanges             prometheus.Counter
	CurrentHour             prometheus.Gauge
	StaleResponsesDiscarded prometheus.Counter

	CacheEntries prometheus.Gauge

	ChartRenderDuration *prometheus.HistogramVec // labels: slot={density,revenue}

	Ready prometheus.Gauge
}

// NewMetrics creates and registers all dashboard metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		FetchRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "risk_dashboard",
			Name:      "fetch_requests_total",
			Help:      "Analytics API requests by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		FetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "risk_dashboard",
			Name:      "fetch_duration_seconds",
			Help:      "Analytics API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"endpoint"}),
		HourChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "risk_dashboard",
			Name:      "hour_changes_total",
			Help:      "Total hour selector changes.",
		}),
		CurrentHour: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "risk_dashboard",
			Name:      "current_hour",
			Help:      "The hour-of-day the dashboard is currently scoped to.",
		}),
		StaleResponsesDiscarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "risk_dashboard",
			Name:      "stale_responses_discarded_total",
			Help:      "Hour-scoped responses dropped because the hour changed while they were in flight.",
		}),
		CacheEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "risk_dashboard",
			Name:      "cache_entries",
			Help:      "Zone risk records currently held in the metrics cache.",
		}),
		ChartRenderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "risk_dashboard",
			Name:      "chart_render_duration_seconds",
			Help:      "Duration of a chart slot re-render.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"slot"}),
		Ready: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "risk_dashboard",
			Name:      "ready",
			Help:      "1 once the initial top-zones load has succeeded.",
		}),
	}

	prometheus.MustRegister(
		m.FetchRequests,
		m.FetchDuration,
		m.HourChanges,
		m.CurrentHour,
		m.StaleResponsesDiscarded,
		m.CacheEntries,
		m.ChartRenderDuration,
		m.Ready,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		FetchRequests:           prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "risk_dashboard", Name: "fetch_requests_total"}, []string{"endpoint", "outcome"}),
		FetchDuration:           prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "risk_dashboard", Name: "fetch_duration_seconds"}, []string{"endpoint"}),
		HourChanges:             prometheus.NewCounter(prometheus.CounterOpts{Namespace: "risk_dashboard", Name: "hour_changes_total"}),
		CurrentHour:             prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "risk_dashboard", Name: "current_hour"}),
		StaleResponsesDiscarded: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "risk_dashboard", Name: "stale_responses_discarded_total"}),
		CacheEntries:            prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "risk_dashboard", Name: "cache_entries"}),
		ChartRenderDuration:     prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "risk_dashboard", Name: "chart_render_duration_seconds"}, []string{"slot"}),
		Ready:                   prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "risk_dashboard", Name: "ready"}),
	}
}

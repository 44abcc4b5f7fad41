package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all Prometheus metrics for the translator service
type Metrics struct {
	// HTTP API metrics
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Provider metrics
	ProviderRequests *prometheus.CounterVec
	ProviderDuration *prometheus.HistogramVec

	// Temp audio file metrics
	TempCleanupFailures prometheus.Counter
}

// NewMetrics creates all metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "translator_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "translator_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms to ~40s
		}, []string{"method", "path"}),

		ProviderRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "translator_provider_requests_total",
			Help: "Total number of calls to the AI provider",
		}, []string{"provider", "operation", "outcome"}),
		ProviderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "translator_provider_request_duration_seconds",
			Help:    "AI provider call duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~25s
		}, []string{"provider", "operation"}),

		TempCleanupFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "translator_temp_cleanup_failures_total",
			Help: "Total number of temporary audio files that could not be removed",
		}),
	}
}

// RecordHTTPRequest records a finished HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, seconds float64) {
	m.HTTPRequests.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

// RecordProviderCall records one provider round-trip
func (m *Metrics) RecordProviderCall(provider, operation string, err error, seconds float64) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	m.ProviderRequests.WithLabelValues(provider, operation, outcome).Inc()
	m.ProviderDuration.WithLabelValues(provider, operation).Observe(seconds)
}

// RecordTempCleanupFailure counts a temp audio file left behind
func (m *Metrics) RecordTempCleanupFailure() {
	m.TempCleanupFailures.Inc()
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RequestMetrics records outcome counters and latency for API calls made by
// the client boundary.
type RequestMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewRequestMetrics registers the request metrics on the provided registerer.
func NewRequestMetrics(reg prometheus.Registerer) *RequestMetrics {
	if reg == nil {
		return &RequestMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "api_request_duration_seconds",
		Help:    "Duration of storefront API requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "api_request_success",
		Help: "Storefront API requests that returned a success status.",
	}, []string{"endpoint"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "api_request_failure",
		Help: "Storefront API requests that failed in transport or were rejected.",
	}, []string{"endpoint", "kind"})
	reg.MustRegister(duration, success, failure)
	return &RequestMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
	}
}

// ObserveDuration records the latency for the named endpoint.
func (m *RequestMetrics) ObserveDuration(endpoint string, duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(endpoint)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named endpoint.
func (m *RequestMetrics) IncSuccess(endpoint string) {
	if m == nil || m.success == nil {
		return
	}
	m.success.WithLabelValues(normalizeLabel(endpoint)).Inc()
}

// IncFailure increments the failure counter for the named endpoint and error kind.
func (m *RequestMetrics) IncFailure(endpoint, kind string) {
	if m == nil || m.failure == nil {
		return
	}
	m.failure.WithLabelValues(normalizeLabel(endpoint), normalizeLabel(kind)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// DirectionsMetricsCollector handles all route provider metrics
type DirectionsMetricsCollector struct {
	// Provider attempt metrics
	attemptsTotal   *prometheus.CounterVec
	attemptDuration *prometheus.HistogramVec
}

// NewDirectionsMetricsCollector creates a new directions metrics collector
func NewDirectionsMetricsCollector() *DirectionsMetricsCollector {
	return &DirectionsMetricsCollector{
		// Total provider attempts by provider and outcome
		attemptsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "directions_attempts_total",
				Help:      "Total number of route provider attempts by provider and outcome",
			},
			[]string{"provider", "outcome"},
		),

		// Provider attempt duration histogram
		attemptDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "directions_attempt_duration_seconds",
				Help:      "Route provider attempt duration distribution",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0},
			},
			[]string{"provider"},
		),
	}
}

// Register registers all directions metrics with the Prometheus registry
func (c *DirectionsMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	metrics := []prometheus.Collector{
		c.attemptsTotal,
		c.attemptDuration,
	}

	for _, metric := range metrics {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}

	return nil
}

// RecordDirectionsAttempt records a route provider attempt
func (c *DirectionsMetricsCollector) RecordDirectionsAttempt(
	provider string,
	outcome string,
	seconds float64,
) {
	// Increment attempt counter
	c.attemptsTotal.WithLabelValues(provider, outcome).Inc()

	// Record attempt duration
	c.attemptDuration.WithLabelValues(provider).Observe(seconds)
}

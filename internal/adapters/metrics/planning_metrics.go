package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PlanningMetricsCollector handles all trip planning metrics
type PlanningMetricsCollector struct {
	// Trip planning metrics
	tripsPlannedTotal  *prometheus.CounterVec
	tripDistanceMiles  prometheus.Histogram
	tripDurationHours  prometheus.Histogram
	scheduleDays       prometheus.Histogram
	scheduleViolations prometheus.Counter
}

// NewPlanningMetricsCollector creates a new planning metrics collector
func NewPlanningMetricsCollector() *PlanningMetricsCollector {
	return &PlanningMetricsCollector{
		// Total trips planned by route provider
		tripsPlannedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "trips_planned_total",
				Help:      "Total number of trips planned by route provider",
			},
			[]string{"provider"},
		),

		// Trip distance distribution
		tripDistanceMiles: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "trip_distance_miles",
				Help:      "Planned trip distance distribution in miles",
				Buckets:   []float64{50, 100, 250, 500, 1000, 1500, 2500, 5000},
			},
		),

		// Trip driving duration distribution
		tripDurationHours: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "trip_duration_hours",
				Help:      "Planned trip driving duration distribution in hours",
				Buckets:   []float64{1, 2, 5, 11, 22, 44, 88},
			},
		),

		// Schedule length distribution
		scheduleDays: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "schedule_days",
				Help:      "Number of daily logs produced per planned trip",
				Buckets:   []float64{1, 2, 3, 5, 8, 14},
			},
		),

		// Schedule verification failures
		scheduleViolations: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "schedule_violations_total",
				Help:      "Total number of schedule verification violations detected",
			},
		),
	}
}

// Register registers all planning metrics with the Prometheus registry
func (c *PlanningMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	metrics := []prometheus.Collector{
		c.tripsPlannedTotal,
		c.tripDistanceMiles,
		c.tripDurationHours,
		c.scheduleDays,
		c.scheduleViolations,
	}

	for _, metric := range metrics {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}

	return nil
}

// RecordTripPlanned records a completed trip plan
func (c *PlanningMetricsCollector) RecordTripPlanned(
	provider string,
	distanceMiles float64,
	durationHours float64,
	scheduleDays int,
) {
	c.tripsPlannedTotal.WithLabelValues(provider).Inc()
	c.tripDistanceMiles.Observe(distanceMiles)
	c.tripDurationHours.Observe(durationHours)
	c.scheduleDays.Observe(float64(scheduleDays))
}

// RecordScheduleViolations records schedule verification failures
func (c *PlanningMetricsCollector) RecordScheduleViolations(count int) {
	if count <= 0 {
		return
	}
	c.scheduleViolations.Add(float64(count))
}

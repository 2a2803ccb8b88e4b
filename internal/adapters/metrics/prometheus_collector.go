package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// Namespace for all metrics
	namespace = "tripplan"
	// Subsystem for server metrics
	subsystem = "server"
)

var (
	// Registry is the global Prometheus registry for all metrics
	Registry *prometheus.Registry

	// globalDirectionsCollector is the singleton directions metrics collector
	// Set by SetGlobalDirectionsCollector() when metrics are enabled
	globalDirectionsCollector DirectionsMetricsRecorder

	// globalPlanningCollector is the singleton planning metrics collector
	// Set by SetGlobalPlanningCollector() when metrics are enabled
	globalPlanningCollector PlanningMetricsRecorder
)

// DirectionsMetricsRecorder defines the interface for recording route
// provider attempts. The signature matches directions.AttemptRecorder so a
// collector can be handed straight to the provider chain.
type DirectionsMetricsRecorder interface {
	RecordDirectionsAttempt(provider, outcome string, seconds float64)
}

// PlanningMetricsRecorder defines the interface for recording trip planning metrics
type PlanningMetricsRecorder interface {
	RecordTripPlanned(provider string, distanceMiles, durationHours float64, scheduleDays int)
	RecordScheduleViolations(count int)
}

// InitRegistry initializes the Prometheus registry
// Should be called once at application startup if metrics are enabled
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// GetRegistry returns the global Prometheus registry
// Returns nil if metrics are not initialized
func GetRegistry() *prometheus.Registry {
	return Registry
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// SetGlobalDirectionsCollector sets the global directions metrics collector
func SetGlobalDirectionsCollector(collector DirectionsMetricsRecorder) {
	globalDirectionsCollector = collector
}

// RecordDirectionsAttempt records a route provider attempt globally
func RecordDirectionsAttempt(provider, outcome string, seconds float64) {
	if globalDirectionsCollector != nil {
		globalDirectionsCollector.RecordDirectionsAttempt(provider, outcome, seconds)
	}
}

// SetGlobalPlanningCollector sets the global planning metrics collector
func SetGlobalPlanningCollector(collector PlanningMetricsRecorder) {
	globalPlanningCollector = collector
}

// RecordTripPlanned records a completed trip plan globally
func RecordTripPlanned(provider string, distanceMiles, durationHours float64, scheduleDays int) {
	if globalPlanningCollector != nil {
		globalPlanningCollector.RecordTripPlanned(provider, distanceMiles, durationHours, scheduleDays)
	}
}

// RecordScheduleViolations records schedule verification failures globally
func RecordScheduleViolations(count int) {
	if globalPlanningCollector != nil {
		globalPlanningCollector.RecordScheduleViolations(count)
	}
}

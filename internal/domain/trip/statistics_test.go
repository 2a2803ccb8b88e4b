package trip_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulpath/tripplan/internal/domain/hos"
	"github.com/haulpath/tripplan/internal/domain/trip"
)

func TestComputeStatistics(t *testing.T) {
	// Arrange
	route := mustRoute(t, 100, 2, 3)

	// Act
	stats := trip.ComputeStatistics(route)

	// Assert
	assert.Equal(t, 100.0, stats.TotalDistance)
	assert.Equal(t, 2.0, stats.TotalDuration)
	assert.InDelta(t, 50.0, stats.AverageSpeed, 1e-9)
	assert.InDelta(t, 15.0, stats.EstimatedFuelCost, 1e-9)
	assert.InDelta(t, 5.0, stats.EstimatedTolls, 1e-9)
}

func TestComputeStatistics_ZeroDuration(t *testing.T) {
	// Arrange
	route := mustRoute(t, 0, 0, 2)

	// Act
	stats := trip.ComputeStatistics(route)

	// Assert
	assert.Equal(t, 0.0, stats.AverageSpeed)
}

func TestAssessCompliance_CleanSchedule(t *testing.T) {
	// Arrange
	scheduler := hos.NewScheduler()
	start := time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)
	segments := []hos.PlannedSegment{
		{Type: hos.SegmentOnDuty, DurationHours: 1, Location: "Pickup"},
		{Type: hos.SegmentDrive, DurationHours: 5, Location: "Route"},
	}
	logs, err := scheduler.Schedule(start, segments, 0, time.UTC)
	require.NoError(t, err)

	// Act
	compliance := trip.AssessCompliance(logs)

	// Assert
	assert.True(t, compliance.IsCompliant)
	assert.Empty(t, compliance.Violations)
	assert.NotNil(t, compliance.Violations)
	assert.NotNil(t, compliance.Warnings)
}

func TestAssessCompliance_DetectsCorruptedTotals(t *testing.T) {
	// Arrange
	scheduler := hos.NewScheduler()
	start := time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)
	segments := []hos.PlannedSegment{
		{Type: hos.SegmentDrive, DurationHours: 5, Location: "Route"},
	}
	logs, err := scheduler.Schedule(start, segments, 0, time.UTC)
	require.NoError(t, err)
	logs[0].Totals.DrivingHours += 2

	// Act
	compliance := trip.AssessCompliance(logs)

	// Assert
	assert.False(t, compliance.IsCompliant)
	assert.NotEmpty(t, compliance.Violations)
}

package trip_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulpath/tripplan/internal/domain/hos"
	"github.com/haulpath/tripplan/internal/domain/routing"
	"github.com/haulpath/tripplan/internal/domain/shared"
	"github.com/haulpath/tripplan/internal/domain/trip"
)

func lineString(points int) routing.LineString {
	ls := make(routing.LineString, points)
	for i := range ls {
		ls[i] = shared.Coordinate{Lon: -100 + float64(i)*0.5, Lat: 35}
	}
	return ls
}

func mustRoute(t *testing.T, miles, hours float64, points int) *routing.Route {
	t.Helper()
	route, err := routing.NewRoute(miles, hours, lineString(points), "estimator")
	require.NoError(t, err)
	return route
}

func TestPlanner_ShortTripWithFuelingStops(t *testing.T) {
	// Arrange
	planner := trip.NewPlanner()
	route := mustRoute(t, 2500, 10, 12)

	// Act
	segments := planner.Plan(route)

	// Assert
	require.Len(t, segments, 7)
	assert.Equal(t, hos.SegmentOnDuty, segments[0].Type)
	assert.Equal(t, trip.LocationPickup, segments[0].Location)
	assert.Equal(t, 1.0, segments[0].DurationHours)

	assert.Equal(t, hos.SegmentDrive, segments[1].Type)
	assert.Equal(t, "Route Segment 1 (1000.0 mi)", segments[1].Location)
	assert.InDelta(t, 4.0, segments[1].DurationHours, 1e-9)

	assert.Equal(t, trip.LocationFuelingStop, segments[2].Location)
	assert.Equal(t, 0.5, segments[2].DurationHours)

	assert.Equal(t, "Route Segment 2 (1000.0 mi)", segments[3].Location)
	assert.Equal(t, trip.LocationFuelingStop, segments[4].Location)

	assert.Equal(t, "Route Segment 3 (500.0 mi)", segments[5].Location)
	assert.InDelta(t, 2.0, segments[5].DurationHours, 1e-9)

	assert.Equal(t, trip.LocationDropoff, segments[6].Location)
}

func TestPlanner_ZeroDistanceTrip(t *testing.T) {
	// Arrange
	planner := trip.NewPlanner()
	route := mustRoute(t, 0, 0, 2)

	// Act
	segments := planner.Plan(route)

	// Assert - just the pickup and drop-off obligations
	require.Len(t, segments, 2)
	assert.Equal(t, trip.LocationPickup, segments[0].Location)
	assert.Equal(t, trip.LocationDropoff, segments[1].Location)
}

func TestPlanner_LongTripAlternatesDrivingAndRest(t *testing.T) {
	// Arrange - 30 hours over 1,500 miles
	planner := trip.NewPlanner()
	route := mustRoute(t, 1500, 30, 16)

	// Act
	segments := planner.Plan(route)

	// Assert
	require.Len(t, segments, 7)
	wantDurations := []float64{1, 11, 10, 11, 10, 8, 1}
	wantTypes := []hos.SegmentType{
		hos.SegmentOnDuty, hos.SegmentDrive, hos.SegmentOffDuty,
		hos.SegmentDrive, hos.SegmentOffDuty, hos.SegmentDrive, hos.SegmentOnDuty,
	}
	for i, seg := range segments {
		assert.Equal(t, wantTypes[i], seg.Type, "segment %d type", i)
		assert.InDelta(t, wantDurations[i], seg.DurationHours, 1e-9, "segment %d duration", i)
	}
	assert.Equal(t, "Route Segment 1 (550.0 mi)", segments[1].Location)
	assert.Equal(t, trip.LocationPlannerRest, segments[2].Location)
	assert.Equal(t, "Route Segment 3 (400.0 mi)", segments[5].Location)
}

func TestPlanner_LongTripSchedulesWithoutExtraRests(t *testing.T) {
	// Arrange - planner-aligned rests should leave the scheduler nothing to add
	planner := trip.NewPlanner()
	scheduler := hos.NewScheduler()
	route := mustRoute(t, 1500, 30, 16)
	start := time.Date(2025, 4, 7, 6, 0, 0, 0, time.UTC)

	// Act
	segments := planner.Plan(route)
	logs, err := scheduler.Schedule(start, segments, 0, time.UTC)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, hos.VerifyLogs(logs))

	var driving float64
	for _, log := range logs {
		driving += log.DrivingHours()
		for _, e := range log.Entries {
			assert.NotEqual(t, hos.LocationRestBreak, e.Location)
			assert.NotEqual(t, hos.LocationDutyReset, e.Location)
			assert.NotEqual(t, hos.LocationRestart, e.Location)
		}
	}
	assert.InDelta(t, 30.0, driving, 1e-6)
}

package hos_test

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulpath/tripplan/internal/domain/hos"
)

func clockMinutes(t *testing.T, label string) int {
	t.Helper()
	parts := strings.Split(label, ":")
	require.Len(t, parts, 2, "clock label %q", label)
	h, err := strconv.Atoi(parts[0])
	require.NoError(t, err)
	m, err := strconv.Atoi(parts[1])
	require.NoError(t, err)
	return h*60 + m
}

// assertDayShape checks the 24-hour invariants of a single log: contiguous
// entries from 00:00 to 24:00, durations summing to 24, and totals matching
// the entries (on-duty includes driving, off-duty is the remainder).
func assertDayShape(t *testing.T, log hos.DailyLog) {
	t.Helper()
	require.NotEmpty(t, log.Entries, "day %s has no entries", log.Date)

	assert.Equal(t, "00:00", log.Entries[0].StartTime, "day %s must start at midnight", log.Date)
	assert.Equal(t, "24:00", log.Entries[len(log.Entries)-1].EndTime, "day %s must end at midnight", log.Date)

	prevEnd := 0
	var sum, driving, onDuty float64
	for _, e := range log.Entries {
		assert.Equal(t, prevEnd, clockMinutes(t, e.StartTime), "day %s entry %q not contiguous", log.Date, e.Location)
		prevEnd = clockMinutes(t, e.EndTime)
		assert.Greater(t, e.DurationHours, 0.0)
		sum += e.DurationHours
		switch e.Status {
		case hos.StatusDriving:
			driving += e.DurationHours
			onDuty += e.DurationHours
		case hos.StatusOnDuty:
			onDuty += e.DurationHours
		}
	}
	assert.Equal(t, 1440, prevEnd, "day %s must cover the full day", log.Date)
	assert.InDelta(t, hos.HoursPerDay, sum, 1e-6, "day %s durations must sum to 24", log.Date)

	assert.InDelta(t, driving, log.Totals.DrivingHours, 1e-6, "day %s driving total", log.Date)
	assert.InDelta(t, onDuty, log.Totals.OnDutyHours, 1e-6, "day %s on-duty total", log.Date)
	assert.InDelta(t, hos.HoursPerDay-driving-onDuty, log.Totals.OffDutyHours, 1e-6, "day %s off-duty total", log.Date)
	assert.LessOrEqual(t, log.Totals.DrivingHours, hos.MaxTourDriving+1e-6, "day %s exceeds the driving limit", log.Date)
}

func totalDriving(logs []hos.DailyLog) float64 {
	var total float64
	for _, log := range logs {
		total += log.DrivingHours()
	}
	return total
}

func countLabel(logs []hos.DailyLog, location string) int {
	count := 0
	for _, log := range logs {
		for _, e := range log.Entries {
			if e.Location == location {
				count++
			}
		}
	}
	return count
}

func TestScheduler_SingleDayTrip(t *testing.T) {
	// Arrange
	scheduler := hos.NewScheduler()
	start := time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)
	segments := []hos.PlannedSegment{
		{Type: hos.SegmentOnDuty, DurationHours: 1, Location: "Pickup"},
		{Type: hos.SegmentDrive, DurationHours: 5, Location: "Route Segment 1 (250 mi)"},
		{Type: hos.SegmentOnDuty, DurationHours: 1, Location: "Drop-off"},
	}

	// Act
	logs, err := scheduler.Schedule(start, segments, 0, time.UTC)

	// Assert
	require.NoError(t, err)
	require.Len(t, logs, 1)
	log := logs[0]
	assert.Equal(t, "2025-01-15", log.Date)
	assertDayShape(t, log)

	require.Len(t, log.Entries, 5)
	assert.Equal(t, hos.StatusOffDuty, log.Entries[0].Status)
	assert.Equal(t, "00:00", log.Entries[0].StartTime)
	assert.Equal(t, "08:00", log.Entries[0].EndTime)
	assert.Equal(t, hos.StatusOnDuty, log.Entries[1].Status)
	assert.Equal(t, "Pickup", log.Entries[1].Location)
	assert.Equal(t, hos.StatusDriving, log.Entries[2].Status)
	assert.Equal(t, "09:00", log.Entries[2].StartTime)
	assert.Equal(t, "14:00", log.Entries[2].EndTime)
	assert.Equal(t, hos.StatusOnDuty, log.Entries[3].Status)
	assert.Equal(t, "Drop-off", log.Entries[3].Location)
	assert.Equal(t, hos.StatusOffDuty, log.Entries[4].Status)
	assert.Equal(t, "15:00", log.Entries[4].StartTime)
	assert.Equal(t, "24:00", log.Entries[4].EndTime)

	assert.InDelta(t, 5.0, log.Totals.DrivingHours, 1e-6)
	assert.InDelta(t, 7.0, log.Totals.OnDutyHours, 1e-6)
	assert.InDelta(t, 12.0, log.Totals.OffDutyHours, 1e-6)
}

func TestScheduler_LongDriveInsertsTenHourRest(t *testing.T) {
	// Arrange
	scheduler := hos.NewScheduler()
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	segments := []hos.PlannedSegment{
		{Type: hos.SegmentDrive, DurationHours: 12, Location: "Route"},
	}

	// Act
	logs, err := scheduler.Schedule(start, segments, 0, time.UTC)

	// Assert
	require.NoError(t, err)
	require.Len(t, logs, 2)
	for _, log := range logs {
		assertDayShape(t, log)
	}

	day1 := logs[0]
	require.Len(t, day1.Entries, 5)
	assert.Equal(t, "08:00", day1.Entries[1].StartTime)
	assert.Equal(t, "16:00", day1.Entries[1].EndTime)
	assert.Equal(t, hos.StatusDriving, day1.Entries[1].Status)
	assert.Equal(t, hos.LocationShortBreak, day1.Entries[2].Location)
	assert.Equal(t, "16:30", day1.Entries[3].StartTime)
	assert.Equal(t, "19:30", day1.Entries[3].EndTime)
	// The mandated rest starts once 11 cumulative hours are driven and runs
	// past midnight.
	rest := day1.Entries[4]
	assert.Equal(t, hos.LocationRestBreak, rest.Location)
	assert.Equal(t, "19:30", rest.StartTime)
	assert.Equal(t, "24:00", rest.EndTime)
	assert.InDelta(t, 11.0, day1.Totals.DrivingHours, 1e-6)

	day2 := logs[1]
	require.Len(t, day2.Entries, 3)
	assert.Equal(t, hos.LocationOffDuty, day2.Entries[0].Location)
	assert.Equal(t, "05:30", day2.Entries[0].EndTime)
	assert.Equal(t, hos.StatusDriving, day2.Entries[1].Status)
	assert.Equal(t, "05:30", day2.Entries[1].StartTime)
	assert.Equal(t, "06:30", day2.Entries[1].EndTime)

	assert.InDelta(t, 12.0, totalDriving(logs), 1e-6)
}

func TestScheduler_ThirtyMinuteBreakAfterEightHours(t *testing.T) {
	// Arrange
	scheduler := hos.NewScheduler()
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	segments := []hos.PlannedSegment{
		{Type: hos.SegmentDrive, DurationHours: 9, Location: "Route"},
	}

	// Act
	logs, err := scheduler.Schedule(start, segments, 0, time.UTC)

	// Assert
	require.NoError(t, err)
	require.Len(t, logs, 1)
	log := logs[0]
	assertDayShape(t, log)

	require.Len(t, log.Entries, 5)
	assert.Equal(t, "16:00", log.Entries[2].StartTime)
	assert.Equal(t, "16:30", log.Entries[2].EndTime)
	assert.Equal(t, hos.LocationShortBreak, log.Entries[2].Location)
	assert.Equal(t, hos.StatusOffDuty, log.Entries[2].Status)
	assert.Equal(t, 0, countLabel(logs, hos.LocationRestBreak))
	assert.InDelta(t, 9.0, totalDriving(logs), 1e-6)
}

func TestScheduler_WeeklyOverageForcesRestartFirst(t *testing.T) {
	// Arrange
	scheduler := hos.NewScheduler()
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	segments := []hos.PlannedSegment{
		{Type: hos.SegmentOnDuty, DurationHours: 1, Location: "Pickup"},
		{Type: hos.SegmentDrive, DurationHours: 5, Location: "Route"},
		{Type: hos.SegmentOnDuty, DurationHours: 1, Location: "Drop-off"},
	}

	// Act
	logs, err := scheduler.Schedule(start, segments, 75, time.UTC)

	// Assert
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(logs), 2)
	require.LessOrEqual(t, len(logs), 3)
	for _, log := range logs {
		assertDayShape(t, log)
	}

	day1 := logs[0]
	require.Len(t, day1.Entries, 2)
	assert.Equal(t, hos.LocationOffDuty, day1.Entries[0].Location)
	restart := day1.Entries[1]
	assert.Equal(t, hos.LocationRestart, restart.Location)
	assert.Equal(t, "08:00", restart.StartTime)
	assert.Equal(t, "24:00", restart.EndTime)

	// Work resumes with a cleared weekly counter once the restart elapses.
	assert.Equal(t, 1, countLabel(logs, hos.LocationRestart))
	assert.InDelta(t, 5.0, totalDriving(logs), 1e-6)
}

func TestScheduler_DriveAcrossMidnightSplitsEntries(t *testing.T) {
	// Arrange
	scheduler := hos.NewScheduler()
	start := time.Date(2025, 3, 10, 22, 0, 0, 0, time.UTC)
	segments := []hos.PlannedSegment{
		{Type: hos.SegmentDrive, DurationHours: 4, Location: "Route"},
	}

	// Act
	logs, err := scheduler.Schedule(start, segments, 0, time.UTC)

	// Assert
	require.NoError(t, err)
	require.Len(t, logs, 2)
	for _, log := range logs {
		assertDayShape(t, log)
	}

	day1 := logs[0]
	assert.Equal(t, "2025-03-10", day1.Date)
	last := day1.Entries[len(day1.Entries)-1]
	assert.Equal(t, hos.StatusDriving, last.Status)
	assert.Equal(t, "22:00", last.StartTime)
	assert.Equal(t, "24:00", last.EndTime)
	assert.InDelta(t, 2.0, last.DurationHours, 1e-6)

	day2 := logs[1]
	assert.Equal(t, "2025-03-11", day2.Date)
	assert.Equal(t, hos.StatusDriving, day2.Entries[0].Status)
	assert.Equal(t, "00:00", day2.Entries[0].StartTime)
	assert.Equal(t, "02:00", day2.Entries[0].EndTime)
	assert.Equal(t, hos.StatusOffDuty, day2.Entries[1].Status)
	assert.Equal(t, "24:00", day2.Entries[1].EndTime)
}

func TestScheduler_PlannerAlignedRestsNeedNoExtraRest(t *testing.T) {
	// Arrange - the long-trip planner shape for a 30-hour route
	scheduler := hos.NewScheduler()
	start := time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC)
	segments := []hos.PlannedSegment{
		{Type: hos.SegmentOnDuty, DurationHours: 1, Location: "Pickup"},
		{Type: hos.SegmentDrive, DurationHours: 11, Location: "Route Segment 1 (550 mi)"},
		{Type: hos.SegmentOffDuty, DurationHours: 10, Location: "Rest Break"},
		{Type: hos.SegmentDrive, DurationHours: 11, Location: "Route Segment 2 (550 mi)"},
		{Type: hos.SegmentOffDuty, DurationHours: 10, Location: "Rest Break"},
		{Type: hos.SegmentDrive, DurationHours: 8, Location: "Route Segment 3 (400 mi)"},
		{Type: hos.SegmentOnDuty, DurationHours: 1, Location: "Drop-off"},
	}

	// Act
	logs, err := scheduler.Schedule(start, segments, 0, time.UTC)

	// Assert
	require.NoError(t, err)
	for _, log := range logs {
		assertDayShape(t, log)
	}
	assert.Equal(t, 0, countLabel(logs, hos.LocationRestBreak))
	assert.Equal(t, 0, countLabel(logs, hos.LocationDutyReset))
	assert.Equal(t, 0, countLabel(logs, hos.LocationRestart))
	assert.InDelta(t, 30.0, totalDriving(logs), 1e-6)
}

func TestScheduler_DailyDrivingCapIdlesOutTheDay(t *testing.T) {
	// Arrange - starting at midnight packs a full tour and its ten-hour rest
	// into one calendar day, so the next tour's driving must wait for the
	// following day
	scheduler := hos.NewScheduler()
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	segments := []hos.PlannedSegment{
		{Type: hos.SegmentOnDuty, DurationHours: 1, Location: "Pickup"},
		{Type: hos.SegmentDrive, DurationHours: 11, Location: "Route Segment 1 (605 mi)"},
		{Type: hos.SegmentOffDuty, DurationHours: 10, Location: "Rest Break"},
		{Type: hos.SegmentDrive, DurationHours: 11, Location: "Route Segment 2 (605 mi)"},
		{Type: hos.SegmentOffDuty, DurationHours: 10, Location: "Rest Break"},
		{Type: hos.SegmentDrive, DurationHours: 8, Location: "Route Segment 3 (440 mi)"},
		{Type: hos.SegmentOnDuty, DurationHours: 1, Location: "Drop-off"},
	}

	// Act
	logs, err := scheduler.Schedule(start, segments, 0, time.UTC)

	// Assert
	require.NoError(t, err)
	require.Len(t, logs, 3)
	for _, log := range logs {
		assertDayShape(t, log)
	}

	day1 := logs[0]
	assert.InDelta(t, 11.0, day1.Totals.DrivingHours, 1e-6)
	wait := day1.Entries[len(day1.Entries)-1]
	assert.Equal(t, hos.StatusOffDuty, wait.Status)
	assert.Equal(t, hos.LocationOffDuty, wait.Location)
	assert.Equal(t, "22:30", wait.StartTime)
	assert.Equal(t, "24:00", wait.EndTime)

	assert.InDelta(t, 11.0, logs[1].Totals.DrivingHours, 1e-6)
	assert.InDelta(t, 8.0, logs[2].Totals.DrivingHours, 1e-6)
	assert.Equal(t, 0, countLabel(logs, hos.LocationRestBreak))
	assert.InDelta(t, 30.0, totalDriving(logs), 1e-6)
}

func TestScheduler_WeeklySaturationMidPlan(t *testing.T) {
	// Arrange - 65 hours already used, so the 70-hour cap lands mid-drive
	scheduler := hos.NewScheduler()
	start := time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC)
	segments := []hos.PlannedSegment{
		{Type: hos.SegmentDrive, DurationHours: 11, Location: "Route"},
	}

	// Act
	logs, err := scheduler.Schedule(start, segments, 65, time.UTC)

	// Assert
	require.NoError(t, err)
	for _, log := range logs {
		assertDayShape(t, log)
	}
	require.Equal(t, 1, countLabel(logs, hos.LocationRestart))

	day1 := logs[0]
	assert.Equal(t, hos.StatusDriving, day1.Entries[1].Status)
	assert.InDelta(t, 5.0, day1.Entries[1].DurationHours, 1e-6)
	assert.Equal(t, hos.LocationRestart, day1.Entries[2].Location)
	assert.InDelta(t, 11.0, totalDriving(logs), 1e-6)
}

func TestScheduler_FourteenHourWindowReset(t *testing.T) {
	// Arrange
	scheduler := hos.NewScheduler()
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	segments := []hos.PlannedSegment{
		{Type: hos.SegmentOnDuty, DurationHours: 13, Location: "Loading"},
		{Type: hos.SegmentDrive, DurationHours: 2, Location: "Route"},
	}

	// Act
	logs, err := scheduler.Schedule(start, segments, 0, time.UTC)

	// Assert
	require.NoError(t, err)
	require.Len(t, logs, 2)
	for _, log := range logs {
		assertDayShape(t, log)
	}

	day1 := logs[0]
	require.Len(t, day1.Entries, 3)
	assert.InDelta(t, 13.0, day1.Entries[0].DurationHours, 1e-6)
	assert.Equal(t, hos.StatusDriving, day1.Entries[1].Status)
	assert.InDelta(t, 1.0, day1.Entries[1].DurationHours, 1e-6)
	reset := day1.Entries[2]
	assert.Equal(t, hos.LocationDutyReset, reset.Location)
	assert.Equal(t, "14:00", reset.StartTime)
	assert.Equal(t, "24:00", reset.EndTime)

	day2 := logs[1]
	assert.Equal(t, hos.StatusDriving, day2.Entries[0].Status)
	assert.InDelta(t, 1.0, day2.Entries[0].DurationHours, 1e-6)
}

func TestScheduler_EndsExactlyAtMidnight(t *testing.T) {
	// Arrange
	scheduler := hos.NewScheduler()
	start := time.Date(2025, 3, 10, 22, 0, 0, 0, time.UTC)
	segments := []hos.PlannedSegment{
		{Type: hos.SegmentDrive, DurationHours: 2, Location: "Route"},
	}

	// Act
	logs, err := scheduler.Schedule(start, segments, 0, time.UTC)

	// Assert
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assertDayShape(t, logs[0])
	last := logs[0].Entries[len(logs[0].Entries)-1]
	assert.Equal(t, hos.StatusDriving, last.Status)
	assert.Equal(t, "24:00", last.EndTime)
}

func TestScheduler_ZeroDurationSegmentsAreSkipped(t *testing.T) {
	// Arrange
	scheduler := hos.NewScheduler()
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	segments := []hos.PlannedSegment{
		{Type: hos.SegmentOnDuty, DurationHours: 0, Location: "Pickup"},
		{Type: hos.SegmentDrive, DurationHours: 2, Location: "Route"},
	}

	// Act
	logs, err := scheduler.Schedule(start, segments, 0, time.UTC)

	// Assert
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assertDayShape(t, logs[0])
	require.Len(t, logs[0].Entries, 3)
	assert.Equal(t, hos.StatusDriving, logs[0].Entries[1].Status)
}

func TestScheduler_HomeTimezonePartitionsDays(t *testing.T) {
	// Arrange - 04:00 UTC is midnight in New York (EDT)
	scheduler := hos.NewScheduler()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	start := time.Date(2025, 6, 1, 4, 0, 0, 0, time.UTC)
	segments := []hos.PlannedSegment{
		{Type: hos.SegmentDrive, DurationHours: 3, Location: "Route"},
	}

	// Act
	logs, err := scheduler.Schedule(start, segments, 0, loc)

	// Assert
	require.NoError(t, err)
	require.Len(t, logs, 1)
	log := logs[0]
	assert.Equal(t, "2025-06-01", log.Date)
	assertDayShape(t, log)
	assert.Equal(t, hos.StatusDriving, log.Entries[0].Status)
	assert.Equal(t, "00:00", log.Entries[0].StartTime)
	assert.Equal(t, "03:00", log.Entries[0].EndTime)
}

func TestScheduler_Deterministic(t *testing.T) {
	// Arrange
	scheduler := hos.NewScheduler()
	start := time.Date(2025, 3, 10, 7, 30, 0, 0, time.UTC)
	segments := []hos.PlannedSegment{
		{Type: hos.SegmentOnDuty, DurationHours: 1, Location: "Pickup"},
		{Type: hos.SegmentDrive, DurationHours: 13.5, Location: "Route"},
		{Type: hos.SegmentOnDuty, DurationHours: 1, Location: "Drop-off"},
	}

	// Act
	first, err1 := scheduler.Schedule(start, segments, 12, time.UTC)
	second, err2 := scheduler.Schedule(start, segments, 12, time.UTC)

	// Assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
}

func TestScheduler_SplittingSegmentsDoesNotChangeOutput(t *testing.T) {
	// Arrange
	scheduler := hos.NewScheduler()
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	whole := []hos.PlannedSegment{
		{Type: hos.SegmentDrive, DurationHours: 12, Location: "Route"},
	}
	split := []hos.PlannedSegment{
		{Type: hos.SegmentDrive, DurationHours: 6, Location: "Route"},
		{Type: hos.SegmentDrive, DurationHours: 6, Location: "Route"},
	}

	// Act
	wholeLogs, err1 := scheduler.Schedule(start, whole, 0, time.UTC)
	splitLogs, err2 := scheduler.Schedule(start, split, 0, time.UTC)

	// Assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, wholeLogs, splitLogs)
}

func TestScheduler_RejectsMalformedInput(t *testing.T) {
	scheduler := hos.NewScheduler()
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		start    time.Time
		segments []hos.PlannedSegment
		weekly   float64
	}{
		{
			name:  "zero start instant",
			start: time.Time{},
			segments: []hos.PlannedSegment{
				{Type: hos.SegmentDrive, DurationHours: 1, Location: "Route"},
			},
		},
		{
			name:  "negative duration",
			start: start,
			segments: []hos.PlannedSegment{
				{Type: hos.SegmentDrive, DurationHours: -1, Location: "Route"},
			},
		},
		{
			name:  "unknown segment type",
			start: start,
			segments: []hos.PlannedSegment{
				{Type: "sleeping", DurationHours: 1, Location: "Route"},
			},
		},
		{
			name:  "negative weekly hours",
			start: start,
			segments: []hos.PlannedSegment{
				{Type: hos.SegmentDrive, DurationHours: 1, Location: "Route"},
			},
			weekly: -3,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scheduler.Schedule(tc.start, tc.segments, tc.weekly, time.UTC)
			assert.Error(t, err)
		})
	}
}

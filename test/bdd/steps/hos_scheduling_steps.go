package steps

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/cucumber/godog"

	"github.com/haulpath/tripplan/internal/domain/hos"
)

type hosSchedulingContext struct {
	scheduler *hos.Scheduler
	start     time.Time
	segments  []hos.PlannedSegment
	logs      []hos.DailyLog
	err       error
}

func (hc *hosSchedulingContext) reset() {
	hc.scheduler = hos.NewScheduler()
	hc.start = time.Time{}
	hc.segments = nil
	hc.logs = nil
	hc.err = nil
}

// Given steps

func (hc *hosSchedulingContext) theTripStartsAt(stamp string) error {
	start, err := time.Parse("2006-01-02 15:04", stamp)
	if err != nil {
		return fmt.Errorf("invalid start instant %q: %w", stamp, err)
	}
	hc.start = start.UTC()
	return nil
}

func (hc *hosSchedulingContext) thePlannedSegments(table *godog.Table) error {
	hc.segments = nil

	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}

		segType := hos.SegmentType(row.Cells[0].Value)
		var hours float64
		fmt.Sscanf(row.Cells[1].Value, "%f", &hours)
		location := row.Cells[2].Value

		seg, err := hos.NewPlannedSegment(segType, hours, location)
		if err != nil {
			return err
		}
		hc.segments = append(hc.segments, seg)
	}

	return nil
}

// When steps

func (hc *hosSchedulingContext) theScheduleIsComputedWithWeeklyHoursUsed(weeklyUsed float64) error {
	hc.logs, hc.err = hc.scheduler.Schedule(hc.start, hc.segments, weeklyUsed, time.UTC)
	return nil
}

// Then steps

func (hc *hosSchedulingContext) theScheduleShouldSpanDays(days int) error {
	if hc.err != nil {
		return fmt.Errorf("scheduling failed: %v", hc.err)
	}
	if len(hc.logs) != days {
		return fmt.Errorf("expected %d day(s), got %d", days, len(hc.logs))
	}
	return nil
}

func (hc *hosSchedulingContext) dayShouldTotalDrivingAndOnDutyHours(day int, driving, onDuty float64) error {
	log, err := hc.day(day)
	if err != nil {
		return err
	}
	if math.Abs(log.Totals.DrivingHours-driving) > hos.Epsilon {
		return fmt.Errorf("day %d: expected %.2f driving hours, got %.2f", day, driving, log.Totals.DrivingHours)
	}
	if math.Abs(log.Totals.OnDutyHours-onDuty) > hos.Epsilon {
		return fmt.Errorf("day %d: expected %.2f on-duty hours, got %.2f", day, onDuty, log.Totals.OnDutyHours)
	}
	return nil
}

func (hc *hosSchedulingContext) dayShouldContainAnEntry(day int, label string) error {
	log, err := hc.day(day)
	if err != nil {
		return err
	}
	for _, e := range log.Entries {
		if e.Location == label {
			return nil
		}
	}
	return fmt.Errorf("day %d: no %q entry in %s", day, label, describeEntries(log.Entries))
}

func (hc *hosSchedulingContext) dayShouldContainAnEntryOfHours(day int, label string, hours float64) error {
	log, err := hc.day(day)
	if err != nil {
		return err
	}
	for _, e := range log.Entries {
		if e.Location == label {
			if math.Abs(e.DurationHours-hours) > hos.Epsilon {
				return fmt.Errorf("day %d: %q entry lasts %.2f hours, expected %.2f", day, label, e.DurationHours, hours)
			}
			return nil
		}
	}
	return fmt.Errorf("day %d: no %q entry in %s", day, label, describeEntries(log.Entries))
}

func (hc *hosSchedulingContext) dayShouldNotContainAnEntry(day int, label string) error {
	log, err := hc.day(day)
	if err != nil {
		return err
	}
	for _, e := range log.Entries {
		if e.Location == label {
			return fmt.Errorf("day %d: unexpected %q entry (%s-%s)", day, label, e.StartTime, e.EndTime)
		}
	}
	return nil
}

func (hc *hosSchedulingContext) theTotalDrivingShouldBe(hours float64) error {
	if hc.err != nil {
		return fmt.Errorf("scheduling failed: %v", hc.err)
	}
	total := 0.0
	for _, log := range hc.logs {
		total += log.DrivingHours()
	}
	if math.Abs(total-hours) > hos.Epsilon {
		return fmt.Errorf("expected %.2f total driving hours, got %.2f", hours, total)
	}
	return nil
}

func (hc *hosSchedulingContext) theScheduleShouldPassVerification() error {
	if hc.err != nil {
		return fmt.Errorf("scheduling failed: %v", hc.err)
	}
	if violations := hos.VerifyLogs(hc.logs); len(violations) > 0 {
		return fmt.Errorf("schedule violates invariants: %s", strings.Join(violations, "; "))
	}
	return nil
}

func (hc *hosSchedulingContext) day(n int) (hos.DailyLog, error) {
	if hc.err != nil {
		return hos.DailyLog{}, fmt.Errorf("scheduling failed: %v", hc.err)
	}
	if n < 1 || n > len(hc.logs) {
		return hos.DailyLog{}, fmt.Errorf("day %d out of range: schedule has %d day(s)", n, len(hc.logs))
	}
	return hc.logs[n-1], nil
}

func describeEntries(entries []hos.DutyEntry) string {
	labels := make([]string, 0, len(entries))
	for _, e := range entries {
		labels = append(labels, fmt.Sprintf("%s %s-%s", e.Location, e.StartTime, e.EndTime))
	}
	return "[" + strings.Join(labels, ", ") + "]"
}

func InitializeHOSSchedulingScenario(ctx *godog.ScenarioContext) {
	hc := &hosSchedulingContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		hc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the trip starts at "([^"]*)"$`, hc.theTripStartsAt)
	ctx.Step(`^the planned segments:$`, hc.thePlannedSegments)

	// When steps
	ctx.Step(`^the schedule is computed with ([0-9.]+) weekly hours used$`, hc.theScheduleIsComputedWithWeeklyHoursUsed)

	// Then steps
	ctx.Step(`^the schedule should span (\d+) days?$`, hc.theScheduleShouldSpanDays)
	ctx.Step(`^day (\d+) should total ([0-9.]+) driving hours and ([0-9.]+) on-duty hours$`, hc.dayShouldTotalDrivingAndOnDutyHours)
	ctx.Step(`^day (\d+) should contain a "([^"]*)" entry$`, hc.dayShouldContainAnEntry)
	ctx.Step(`^day (\d+) should contain a "([^"]*)" entry of ([0-9.]+) hours$`, hc.dayShouldContainAnEntryOfHours)
	ctx.Step(`^day (\d+) should not contain a "([^"]*)" entry$`, hc.dayShouldNotContainAnEntry)
	ctx.Step(`^the total driving across all days should be ([0-9.]+) hours$`, hc.theTotalDrivingShouldBe)
	ctx.Step(`^the schedule should pass verification$`, hc.theScheduleShouldPassVerification)
}

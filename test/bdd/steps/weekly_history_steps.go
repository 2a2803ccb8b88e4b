package steps

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/cucumber/godog"

	"github.com/haulpath/tripplan/internal/domain/driver"
	"github.com/haulpath/tripplan/internal/domain/hos"
	"github.com/haulpath/tripplan/test/helpers"
)

type weeklyHistoryContext struct {
	records  *helpers.MockRecordRepository
	history  *driver.HistoryService
	driverID uint
	total    float64
	err      error
}

func (wc *weeklyHistoryContext) reset() {
	wc.records = helpers.NewMockRecordRepository()
	wc.history = driver.NewHistoryService(wc.records)
	wc.driverID = 1
	wc.total = 0
	wc.err = nil
}

// Given steps

func (wc *weeklyHistoryContext) aDriverWithPersistedDailyRecords(table *godog.Table) error {
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}

		date := row.Cells[0].Value
		var onDuty float64
		fmt.Sscanf(row.Cells[1].Value, "%f", &onDuty)

		wc.records.Seed(&driver.DailyRecord{
			DriverID:    wc.driverID,
			Date:        date,
			OnDutyHours: onDuty,
			Entries:     []hos.DutyEntry{},
		})
	}
	return nil
}

func (wc *weeklyHistoryContext) aDriverWithNoPersistedDailyRecords() error {
	return nil
}

// When steps

func (wc *weeklyHistoryContext) theWeeklyTotalIsComputedAsOf(date string) error {
	asOf, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid as-of date %q: %w", date, err)
	}
	wc.total, wc.err = wc.history.WeeklyOnDuty(context.Background(), wc.driverID, asOf)
	return nil
}

// Then steps

func (wc *weeklyHistoryContext) theWeeklyTotalShouldBe(hours float64) error {
	if wc.err != nil {
		return fmt.Errorf("history lookup failed: %v", wc.err)
	}
	if math.Abs(wc.total-hours) > hos.Epsilon {
		return fmt.Errorf("expected %.2f weekly on-duty hours, got %.2f", hours, wc.total)
	}
	return nil
}

func InitializeWeeklyHistoryScenario(ctx *godog.ScenarioContext) {
	wc := &weeklyHistoryContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		wc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a driver with persisted daily records:$`, wc.aDriverWithPersistedDailyRecords)
	ctx.Step(`^a driver with no persisted daily records$`, wc.aDriverWithNoPersistedDailyRecords)

	// When steps
	ctx.Step(`^the weekly on-duty total is computed as of "([^"]*)"$`, wc.theWeeklyTotalIsComputedAsOf)

	// Then steps
	ctx.Step(`^the weekly total should be ([0-9.]+) hours$`, wc.theWeeklyTotalShouldBe)
}

package steps

import (
	"context"
	"fmt"
	"math"

	"github.com/cucumber/godog"

	"github.com/haulpath/tripplan/internal/adapters/persistence"
	"github.com/haulpath/tripplan/internal/domain/driver"
	"github.com/haulpath/tripplan/internal/domain/hos"
	"github.com/haulpath/tripplan/test/helpers"
)

type recordPersistenceContext struct {
	driverRepo driver.Repository
	recordRepo driver.RecordRepository
	persisted  *driver.Driver
}

func (rc *recordPersistenceContext) reset() {
	// Truncate all tables for test isolation
	if err := helpers.TruncateAllTables(); err != nil {
		panic(fmt.Errorf("failed to truncate tables: %w", err))
	}

	rc.driverRepo = persistence.NewGormDriverRepository(helpers.SharedTestDB)
	rc.recordRepo = persistence.NewGormRecordRepository(helpers.SharedTestDB)
	rc.persisted = nil
}

// Given steps

func (rc *recordPersistenceContext) aPersistedDriverNamedInTimezone(name, timezone string) error {
	d := driver.NewDriver(name, timezone)
	if err := rc.driverRepo.Add(context.Background(), d); err != nil {
		return fmt.Errorf("failed to create driver: %w", err)
	}
	rc.persisted = d
	return nil
}

// When steps

func (rc *recordPersistenceContext) aDailyRecordIsStored(date string, drivingHours float64) error {
	if rc.persisted == nil {
		return fmt.Errorf("no driver created")
	}
	onDuty := drivingHours + 1
	record := &driver.DailyRecord{
		DriverID:     rc.persisted.ID,
		Date:         date,
		DrivingHours: drivingHours,
		OnDutyHours:  onDuty,
		OffDutyHours: hos.HoursPerDay - drivingHours - onDuty,
		Entries:      []hos.DutyEntry{},
	}
	return rc.recordRepo.Upsert(context.Background(), record)
}

// Then steps

func (rc *recordPersistenceContext) theDriverShouldHaveStoredRecords(count int) error {
	records, err := rc.fetch()
	if err != nil {
		return err
	}
	if len(records) != count {
		return fmt.Errorf("expected %d stored record(s), got %d", count, len(records))
	}
	return nil
}

func (rc *recordPersistenceContext) theRecordShouldShowDrivingHours(date string, drivingHours float64) error {
	records, err := rc.fetch()
	if err != nil {
		return err
	}
	for _, record := range records {
		if record.Date == date {
			if math.Abs(record.DrivingHours-drivingHours) > 1e-6 {
				return fmt.Errorf("record for %s shows %.2f driving hours, expected %.2f", date, record.DrivingHours, drivingHours)
			}
			return nil
		}
	}
	return fmt.Errorf("no stored record for %s", date)
}

func (rc *recordPersistenceContext) theRecordsShouldBeOrderedNewestFirst() error {
	records, err := rc.fetch()
	if err != nil {
		return err
	}
	for i := 1; i < len(records); i++ {
		if records[i-1].Date < records[i].Date {
			return fmt.Errorf("records out of order: %s before %s", records[i-1].Date, records[i].Date)
		}
	}
	return nil
}

func (rc *recordPersistenceContext) fetch() ([]*driver.DailyRecord, error) {
	if rc.persisted == nil {
		return nil, fmt.Errorf("no driver created")
	}
	records, err := rc.recordRepo.FindByDriver(context.Background(), rc.persisted.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	return records, nil
}

func InitializeRecordPersistenceScenario(ctx *godog.ScenarioContext) {
	rc := &recordPersistenceContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		rc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a persisted driver named "([^"]*)" in timezone "([^"]*)"$`, rc.aPersistedDriverNamedInTimezone)

	// When steps
	ctx.Step(`^a daily record for "([^"]*)" with ([0-9.]+) driving hours is stored$`, rc.aDailyRecordIsStored)

	// Then steps
	ctx.Step(`^the driver should have exactly (\d+) stored records?$`, rc.theDriverShouldHaveStoredRecords)
	ctx.Step(`^the record for "([^"]*)" should show ([0-9.]+) driving hours$`, rc.theRecordShouldShowDrivingHours)
	ctx.Step(`^the stored records should be ordered newest first$`, rc.theRecordsShouldBeOrderedNewestFirst)
}

package steps

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/cucumber/godog"
	"gorm.io/gorm"

	"github.com/haulpath/tripplan/internal/adapters/persistence"
	"github.com/haulpath/tripplan/internal/application/planning/commands"
	"github.com/haulpath/tripplan/internal/domain/driver"
	"github.com/haulpath/tripplan/internal/domain/hos"
	"github.com/haulpath/tripplan/internal/domain/shared"
	"github.com/haulpath/tripplan/internal/domain/trip"
	"github.com/haulpath/tripplan/test/helpers"
)

// Plan requests use a fixed Chicago -> St. Louis -> Memphis leg; the route
// itself always comes from the mock provider.
var (
	planCurrent = []float64{-87.6298, 41.8781}
	planPickup  = []float64{-90.1994, 38.6270}
	planDropoff = []float64{-90.0490, 35.1495}
)

type tripPlanningContext struct {
	db         *gorm.DB
	driverRepo driver.Repository
	recordRepo driver.RecordRepository
	routes     *helpers.MockRouteProvider
	clock      *shared.MockClock

	handler *commands.PlanTripHandler

	attached *driver.Driver
	response *commands.PlanTripResponse
	err      error
}

func (tc *tripPlanningContext) reset() {
	// Truncate all tables for test isolation
	if err := helpers.TruncateAllTables(); err != nil {
		panic(fmt.Errorf("failed to truncate tables: %w", err))
	}

	// Shared test DB with REAL GORM repositories
	tc.db = helpers.SharedTestDB
	tc.driverRepo = persistence.NewGormDriverRepository(helpers.SharedTestDB)
	tc.recordRepo = persistence.NewGormRecordRepository(helpers.SharedTestDB)

	tc.routes = helpers.NewMockRouteProvider()
	tc.clock = shared.NewMockClock(time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC))

	tc.handler = commands.NewPlanTripHandler(
		tc.routes,
		trip.NewPlanner(),
		hos.NewScheduler(),
		tc.driverRepo,
		tc.recordRepo,
		driver.NewHistoryService(tc.recordRepo),
		tc.clock,
	)

	tc.attached = nil
	tc.response = nil
	tc.err = nil
}

// Given steps

func (tc *tripPlanningContext) aDriverNamedInTimezone(name, timezone string) error {
	d := driver.NewDriver(name, timezone)
	if err := tc.driverRepo.Add(context.Background(), d); err != nil {
		return fmt.Errorf("failed to create driver: %w", err)
	}
	tc.attached = d
	return nil
}

func (tc *tripPlanningContext) theDriverHasOnDutyHoursRecorded(hours float64) error {
	if tc.attached == nil {
		return fmt.Errorf("no driver created")
	}
	date := tc.clock.Now().AddDate(0, 0, -5).Format("2006-01-02")
	record := &driver.DailyRecord{
		DriverID:    tc.attached.ID,
		Date:        date,
		OnDutyHours: hours,
		Entries:     []hos.DutyEntry{},
	}
	return tc.recordRepo.Upsert(context.Background(), record)
}

func (tc *tripPlanningContext) theRouteServiceReports(miles, hours float64) error {
	tc.routes.SetRoute(miles, hours)
	return nil
}

// When steps

func (tc *tripPlanningContext) aTripIsPlannedWithoutAnAttachedDriver() error {
	return tc.plan(&commands.PlanTripCommand{
		CurrentLocation: planCurrent,
		Pickup:          planPickup,
		Dropoff:         planDropoff,
	})
}

func (tc *tripPlanningContext) aTripIsPlannedForThatDriver() error {
	if tc.attached == nil {
		return fmt.Errorf("no driver created")
	}
	return tc.plan(&commands.PlanTripCommand{
		CurrentLocation: planCurrent,
		Pickup:          planPickup,
		Dropoff:         planDropoff,
		DriverID:        &tc.attached.ID,
	})
}

func (tc *tripPlanningContext) aTripIsPlannedForDriver(id int) error {
	driverID := uint(id)
	return tc.plan(&commands.PlanTripCommand{
		CurrentLocation: planCurrent,
		Pickup:          planPickup,
		Dropoff:         planDropoff,
		DriverID:        &driverID,
	})
}

func (tc *tripPlanningContext) aTripIsPlannedWithCycleHoursUsed(hours float64) error {
	return tc.plan(&commands.PlanTripCommand{
		CurrentLocation:       planCurrent,
		Pickup:                planPickup,
		Dropoff:               planDropoff,
		CurrentCycleUsedHours: &hours,
	})
}

func (tc *tripPlanningContext) plan(cmd *commands.PlanTripCommand) error {
	response, err := tc.handler.Handle(context.Background(), cmd)
	tc.err = err
	if err != nil {
		return nil
	}
	plan, ok := response.(*commands.PlanTripResponse)
	if !ok {
		return fmt.Errorf("unexpected response type %T", response)
	}
	tc.response = plan
	return nil
}

// Then steps

func (tc *tripPlanningContext) thePlanShouldSucceed() error {
	if tc.err != nil {
		return fmt.Errorf("planning failed: %v", tc.err)
	}
	if tc.response == nil {
		return fmt.Errorf("no plan produced")
	}
	return nil
}

func (tc *tripPlanningContext) thePlanShouldBeCompliant() error {
	if err := tc.thePlanShouldSucceed(); err != nil {
		return err
	}
	if !tc.response.HOSCompliance.IsCompliant {
		return fmt.Errorf("plan is not compliant: %v", tc.response.HOSCompliance.Violations)
	}
	return nil
}

func (tc *tripPlanningContext) thePlanShouldContainDailyLogs(count int) error {
	if err := tc.thePlanShouldSucceed(); err != nil {
		return err
	}
	if len(tc.response.DailyLogs) != count {
		return fmt.Errorf("expected %d daily log(s), got %d", count, len(tc.response.DailyLogs))
	}
	return nil
}

func (tc *tripPlanningContext) thePlansTotalDistanceShouldBe(miles float64) error {
	if err := tc.thePlanShouldSucceed(); err != nil {
		return err
	}
	if math.Abs(tc.response.TotalDistance-miles) > 1e-6 {
		return fmt.Errorf("expected total distance %.1f, got %.1f", miles, tc.response.TotalDistance)
	}
	return nil
}

func (tc *tripPlanningContext) thePlanShouldContainAnEntry(label string) error {
	if err := tc.thePlanShouldSucceed(); err != nil {
		return err
	}
	for _, log := range tc.response.DailyLogs {
		for _, e := range log.Entries {
			if e.Location == label {
				return nil
			}
		}
	}
	return fmt.Errorf("no %q entry in any daily log", label)
}

func (tc *tripPlanningContext) dailyRecordsShouldBeStored(count int) error {
	if tc.attached == nil {
		return fmt.Errorf("no driver created")
	}
	records, err := tc.recordRepo.FindByDriver(context.Background(), tc.attached.ID)
	if err != nil {
		return fmt.Errorf("failed to read records: %w", err)
	}
	if len(records) != count {
		return fmt.Errorf("expected %d stored record(s), got %d", count, len(records))
	}
	return nil
}

func (tc *tripPlanningContext) planningShouldFailDriverNotFound() error {
	if tc.err == nil {
		return fmt.Errorf("expected planning to fail, but it succeeded")
	}
	var notFound *shared.DriverNotFoundError
	if !errors.As(tc.err, &notFound) {
		return fmt.Errorf("expected a driver-not-found error, got: %v", tc.err)
	}
	return nil
}

func (tc *tripPlanningContext) planningShouldFailWithInvalidInput() error {
	if tc.err == nil {
		return fmt.Errorf("expected planning to fail, but it succeeded")
	}
	var invalid *shared.InvalidInputError
	if !errors.As(tc.err, &invalid) {
		return fmt.Errorf("expected an invalid-input error, got: %v", tc.err)
	}
	return nil
}

func InitializeTripPlanningScenario(ctx *godog.ScenarioContext) {
	tc := &tripPlanningContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a driver named "([^"]*)" in timezone "([^"]*)"$`, tc.aDriverNamedInTimezone)
	ctx.Step(`^the driver has ([0-9.]+) on-duty hours recorded in the past week$`, tc.theDriverHasOnDutyHoursRecorded)
	ctx.Step(`^the route service reports a ([0-9.]+) mile route taking ([0-9.]+) hours$`, tc.theRouteServiceReports)

	// When steps
	ctx.Step(`^a trip is planned without an attached driver$`, tc.aTripIsPlannedWithoutAnAttachedDriver)
	ctx.Step(`^a trip is planned for that driver$`, tc.aTripIsPlannedForThatDriver)
	ctx.Step(`^a trip is planned for driver (\d+)$`, tc.aTripIsPlannedForDriver)
	ctx.Step(`^a trip is planned with (-?[0-9.]+) cycle hours already used$`, tc.aTripIsPlannedWithCycleHoursUsed)

	// Then steps
	ctx.Step(`^the plan should succeed$`, tc.thePlanShouldSucceed)
	ctx.Step(`^the plan should be compliant$`, tc.thePlanShouldBeCompliant)
	ctx.Step(`^the plan should contain (\d+) daily logs?$`, tc.thePlanShouldContainDailyLogs)
	ctx.Step(`^the plan's total distance should be ([0-9.]+) miles$`, tc.thePlansTotalDistanceShouldBe)
	ctx.Step(`^the plan should contain a "([^"]*)" entry$`, tc.thePlanShouldContainAnEntry)
	ctx.Step(`^(\d+) daily record should be stored for that driver$`, tc.dailyRecordsShouldBeStored)
	ctx.Step(`^planning should fail because the driver was not found$`, tc.planningShouldFailDriverNotFound)
	ctx.Step(`^planning should fail with invalid input$`, tc.planningShouldFailWithInvalidInput)
}

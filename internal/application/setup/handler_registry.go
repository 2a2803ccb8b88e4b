package setup

import (
	"reflect"

	"github.com/haulpath/tripplan/internal/application/common"
	driverCommands "github.com/haulpath/tripplan/internal/application/driver/commands"
	driverQueries "github.com/haulpath/tripplan/internal/application/driver/queries"
	planningCommands "github.com/haulpath/tripplan/internal/application/planning/commands"
	"github.com/haulpath/tripplan/internal/domain/driver"
	"github.com/haulpath/tripplan/internal/domain/hos"
	"github.com/haulpath/tripplan/internal/domain/routing"
	"github.com/haulpath/tripplan/internal/domain/shared"
	"github.com/haulpath/tripplan/internal/domain/trip"
)

// HandlerRegistry holds all application dependencies for handler creation
type HandlerRegistry struct {
	routes     routing.Provider
	driverRepo driver.Repository
	recordRepo driver.RecordRepository
	clock      shared.Clock
}

// NewHandlerRegistry creates a new handler registry with required dependencies
func NewHandlerRegistry(
	routes routing.Provider,
	driverRepo driver.Repository,
	recordRepo driver.RecordRepository,
	clock shared.Clock,
) *HandlerRegistry {
	// Default to real clock if not provided
	if clock == nil {
		clock = shared.NewRealClock()
	}

	return &HandlerRegistry{
		routes:     routes,
		driverRepo: driverRepo,
		recordRepo: recordRepo,
		clock:      clock,
	}
}

// RegisterPlanningHandlers registers the trip planning command handler with
// the mediator
//
// This method registers:
//   - PlanTripCommand → PlanTripHandler (route lookup, HOS scheduling,
//     daily-record persistence)
func (r *HandlerRegistry) RegisterPlanningHandlers(m common.Mediator) error {
	history := driver.NewHistoryService(r.recordRepo)

	planHandler := planningCommands.NewPlanTripHandler(
		r.routes,
		trip.NewPlanner(),
		hos.NewScheduler(),
		r.driverRepo,
		r.recordRepo,
		history,
		r.clock,
	)
	return m.Register(
		reflect.TypeOf(&planningCommands.PlanTripCommand{}),
		planHandler,
	)
}

// RegisterDriverHandlers registers all driver handlers with the mediator
//
// This method registers:
//   - AddDriverCommand → AddDriverHandler (driver registration)
//   - ListDriversQuery → ListDriversHandler (roster listing)
//   - GetDriverLogsQuery → GetDriverLogsHandler (per-driver duty logs)
func (r *HandlerRegistry) RegisterDriverHandlers(m common.Mediator) error {
	// Register AddDriverCommand handler
	addHandler := driverCommands.NewAddDriverHandler(r.driverRepo)
	if err := m.Register(
		reflect.TypeOf(&driverCommands.AddDriverCommand{}),
		addHandler,
	); err != nil {
		return err
	}

	// Register ListDriversQuery handler
	listHandler := driverQueries.NewListDriversHandler(r.driverRepo)
	if err := m.Register(
		reflect.TypeOf(&driverQueries.ListDriversQuery{}),
		listHandler,
	); err != nil {
		return err
	}

	// Register GetDriverLogsQuery handler
	logsHandler := driverQueries.NewGetDriverLogsHandler(r.driverRepo, r.recordRepo)
	return m.Register(
		reflect.TypeOf(&driverQueries.GetDriverLogsQuery{}),
		logsHandler,
	)
}

// CreateConfiguredMediator creates a new mediator with all handlers registered
//
// This is a convenience method for composition roots that need the full
// dispatch surface. Middleware (logging, metrics) should be registered by
// the caller before the mediator serves requests.
func (r *HandlerRegistry) CreateConfiguredMediator() (common.Mediator, error) {
	m := common.NewMediator()

	if err := r.RegisterPlanningHandlers(m); err != nil {
		return nil, err
	}
	if err := r.RegisterDriverHandlers(m); err != nil {
		return nil, err
	}

	return m, nil
}

package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/haulpath/tripplan/internal/adapters/metrics"
	"github.com/haulpath/tripplan/internal/application/common"
	"github.com/haulpath/tripplan/internal/domain/driver"
	"github.com/haulpath/tripplan/internal/domain/hos"
	"github.com/haulpath/tripplan/internal/domain/routing"
	"github.com/haulpath/tripplan/internal/domain/shared"
	"github.com/haulpath/tripplan/internal/domain/trip"
)

// PlanTripCommand requests a full HOS-compliant trip plan. Locations are
// [longitude, latitude] pairs. DriverID and CurrentCycleUsedHours are
// optional; an attached driver supplies the weekly history and receives the
// persisted daily records. StartDate ("YYYY-MM-DD") and StartTime
// ("HH:MM" or "HH:MM:SS") must both be present to pin the start instant;
// otherwise the plan starts now.
type PlanTripCommand struct {
	CurrentLocation       []float64
	Pickup                []float64
	Dropoff               []float64
	DriverID              *uint
	CurrentCycleUsedHours *float64
	StartDate             string
	StartTime             string
}

// RouteDTO is the route portion of the plan response
type RouteDTO struct {
	Distance   float64            `json:"distance"`
	Duration   float64            `json:"duration"`
	Geometry   routing.LineString `json:"geometry"`
	Statistics trip.Statistics    `json:"statistics"`
}

// PlanTripResponse is the assembled trip plan
type PlanTripResponse struct {
	Route         RouteDTO            `json:"route"`
	DailyLogs     []hos.DailyLog      `json:"daily_logs"`
	TotalDistance float64             `json:"total_distance"`
	TotalDuration float64             `json:"total_duration"`
	HOSCompliance trip.Compliance     `json:"hos_compliance"`
	RestStops     []trip.RestStop     `json:"rest_stops"`
	RouteSegments []trip.RouteSegment `json:"route_segments"`
}

// PlanTripHandler orchestrates route lookup, segment planning, HOS
// scheduling, and persistence for one plan request
type PlanTripHandler struct {
	routes     routing.Provider
	planner    *trip.Planner
	scheduler  *hos.Scheduler
	driverRepo driver.Repository
	recordRepo driver.RecordRepository
	history    *driver.HistoryService
	clock      shared.Clock
}

// NewPlanTripHandler creates a new PlanTripHandler
func NewPlanTripHandler(
	routes routing.Provider,
	planner *trip.Planner,
	scheduler *hos.Scheduler,
	driverRepo driver.Repository,
	recordRepo driver.RecordRepository,
	history *driver.HistoryService,
	clock shared.Clock,
) *PlanTripHandler {
	return &PlanTripHandler{
		routes:     routes,
		planner:    planner,
		scheduler:  scheduler,
		driverRepo: driverRepo,
		recordRepo: recordRepo,
		history:    history,
		clock:      clock,
	}
}

// Handle executes the plan trip command
func (h *PlanTripHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*PlanTripCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *PlanTripCommand")
	}

	logger := common.LoggerFromContext(ctx)

	current, err := parseCoordinate(cmd.CurrentLocation, "current_location")
	if err != nil {
		return nil, err
	}
	pickup, err := parseCoordinate(cmd.Pickup, "pickup")
	if err != nil {
		return nil, err
	}
	dropoff, err := parseCoordinate(cmd.Dropoff, "dropoff")
	if err != nil {
		return nil, err
	}

	// Resolve the driver first so an unknown ID fails before any provider call
	var attached *driver.Driver
	if cmd.DriverID != nil {
		attached, err = h.driverRepo.FindByID(ctx, *cmd.DriverID)
		if err != nil {
			return nil, err
		}
	}

	weeklyUsed, err := h.resolveWeeklyUsed(ctx, cmd, attached)
	if err != nil {
		return nil, err
	}

	route, err := h.routes.GetRoute(ctx, current, pickup, dropoff)
	if err != nil {
		return nil, fmt.Errorf("failed to compute route: %w", err)
	}

	logger.Log("info", "route computed", map[string]interface{}{
		"provider": route.Provider,
		"distance": route.DistanceMiles,
		"duration": route.DurationHours,
	})

	segments := h.planner.Plan(route)

	loc := attached.Location()
	start, err := h.resolveStart(cmd, loc)
	if err != nil {
		return nil, err
	}

	logs, err := h.scheduler.Schedule(start, segments, weeklyUsed, loc)
	if err != nil {
		return nil, err
	}

	// A malformed schedule is a scheduler bug, never a client error
	if violations := hos.VerifyLogs(logs); len(violations) > 0 {
		metrics.RecordScheduleViolations(len(violations))
		return nil, fmt.Errorf("schedule verification failed: %s", strings.Join(violations, "; "))
	}

	if attached != nil {
		for _, log := range logs {
			if err := h.recordRepo.Upsert(ctx, driver.NewDailyRecord(attached.ID, log)); err != nil {
				return nil, err
			}
		}
		logger.Log("info", "daily records persisted", map[string]interface{}{
			"driver_id": attached.ID,
			"days":      len(logs),
		})
	}

	metrics.RecordTripPlanned(route.Provider, route.DistanceMiles, route.DurationHours, len(logs))

	return &PlanTripResponse{
		Route: RouteDTO{
			Distance:   route.DistanceMiles,
			Duration:   route.DurationHours,
			Geometry:   route.Geometry,
			Statistics: trip.ComputeStatistics(route),
		},
		DailyLogs:     logs,
		TotalDistance: route.DistanceMiles,
		TotalDuration: route.DurationHours,
		HOSCompliance: trip.AssessCompliance(logs),
		RestStops:     trip.PlanRestStops(route),
		RouteSegments: trip.SplitRouteSegments(route),
	}, nil
}

// resolveWeeklyUsed prefers the attached driver's persisted history over the
// request field; with neither, the cycle starts empty.
func (h *PlanTripHandler) resolveWeeklyUsed(ctx context.Context, cmd *PlanTripCommand, attached *driver.Driver) (float64, error) {
	if attached != nil {
		return h.history.WeeklyOnDuty(ctx, attached.ID, h.clock.Now())
	}
	if cmd.CurrentCycleUsedHours != nil {
		used := *cmd.CurrentCycleUsedHours
		if used < 0 {
			return 0, shared.NewInvalidInputError("current_cycle_used_hours", "must not be negative")
		}
		return used, nil
	}
	return 0, nil
}

// resolveStart pins the plan to an explicit local date+time when both are
// given, otherwise to the current instant.
func (h *PlanTripHandler) resolveStart(cmd *PlanTripCommand, loc *time.Location) (time.Time, error) {
	if cmd.StartDate == "" || cmd.StartTime == "" {
		return h.clock.Now(), nil
	}

	stamp := cmd.StartDate + " " + cmd.StartTime
	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02 15:04"} {
		if start, err := time.ParseInLocation(layout, stamp, loc); err == nil {
			return start, nil
		}
	}
	return time.Time{}, shared.NewInvalidInputError("start_date/start_time",
		fmt.Sprintf("could not parse %q as a local date and time", stamp))
}

func parseCoordinate(pair []float64, field string) (shared.Coordinate, error) {
	if len(pair) != 2 {
		return shared.Coordinate{}, shared.NewInvalidInputError(field,
			fmt.Sprintf("expected [longitude, latitude], got %d value(s)", len(pair)))
	}
	coord, err := shared.NewCoordinate(pair[0], pair[1])
	if err != nil {
		return shared.Coordinate{}, shared.NewInvalidInputError(field, err.Error())
	}
	return coord, nil
}

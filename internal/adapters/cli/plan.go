package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/haulpath/tripplan/internal/application/planning/commands"
)

// NewPlanCommand creates the plan command
func NewPlanCommand() *cobra.Command {
	var (
		current        string
		pickup         string
		dropoff        string
		cycleUsedHours float64
		startDate      string
		startTime      string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan an HOS-compliant trip",
		Long: `Plan a trip from the current location through pickup to dropoff.

The server computes the road route, splits it into duty segments, and
schedules every day against the Hours of Service limits: 11 hours
driving and a 14-hour window per tour, a 30-minute break after 8 hours
behind the wheel, and the 70-hour / 8-day cycle.

Coordinates are "lon,lat" pairs. With --driver, the trip starts against
that driver's recorded weekly hours and the resulting daily logs are
saved to their file. Without a driver, --cycle-used seeds the weekly
clock directly.

Examples:
  tripplan plan --current="-87.63,41.88" --pickup="-90.20,38.63" --dropoff="-90.05,35.15"
  tripplan plan --current="-87.63,41.88" --pickup="-90.20,38.63" --dropoff="-90.05,35.15" --driver 3
  tripplan plan --current="-87.63,41.88" --pickup="-90.20,38.63" --dropoff="-90.05,35.15" \
    --cycle-used 52.5 --start-date 2025-01-15 --start-time 08:00`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(current, pickup, dropoff, cmd.Flags().Changed("cycle-used"), cycleUsedHours, startDate, startTime)
		},
	}

	cmd.Flags().StringVar(&current, "current", "", "Current location as \"lon,lat\" [required]")
	cmd.Flags().StringVar(&pickup, "pickup", "", "Pickup location as \"lon,lat\" [required]")
	cmd.Flags().StringVar(&dropoff, "dropoff", "", "Dropoff location as \"lon,lat\" [required]")
	cmd.Flags().Float64Var(&cycleUsedHours, "cycle-used", 0, "Hours already used in the 70-hour/8-day cycle")
	cmd.Flags().StringVar(&startDate, "start-date", "", "Trip start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&startTime, "start-time", "", "Trip start time (HH:MM)")
	cmd.MarkFlagRequired("current")
	cmd.MarkFlagRequired("pickup")
	cmd.MarkFlagRequired("dropoff")

	return cmd
}

// runPlan executes the plan command
func runPlan(current, pickup, dropoff string, cycleUsedSet bool, cycleUsedHours float64, startDate, startTime string) error {
	currentCoords, err := parseLonLat(current)
	if err != nil {
		return fmt.Errorf("invalid --current: %w", err)
	}
	pickupCoords, err := parseLonLat(pickup)
	if err != nil {
		return fmt.Errorf("invalid --pickup: %w", err)
	}
	dropoffCoords, err := parseLonLat(dropoff)
	if err != nil {
		return fmt.Errorf("invalid --dropoff: %w", err)
	}

	request := map[string]interface{}{
		"current_location": currentCoords,
		"pickup":           pickupCoords,
		"dropoff":          dropoffCoords,
	}
	if id := resolveDriverID(); id > 0 {
		request["driver_id"] = id
	} else if cycleUsedSet {
		request["current_cycle_used_hours"] = cycleUsedHours
	}
	if startDate != "" {
		request["start_date"] = startDate
	}
	if startTime != "" {
		request["start_time"] = startTime
	}

	client := newServerClient()
	ctx, cancel := context.WithTimeout(context.Background(), client.http.Timeout)
	defer cancel()

	var plan commands.PlanTripResponse
	if err := client.post(ctx, "/plan-trip/", request, &plan); err != nil {
		return fmt.Errorf("failed to plan trip: %w", err)
	}

	if jsonOut {
		fmt.Println(prettyPrint(plan))
		return nil
	}

	displayPlan(&plan)
	return nil
}

// displayPlan formats and displays a trip plan
func displayPlan(plan *commands.PlanTripResponse) {
	fmt.Printf("\nTRIP PLAN (%.1f mi, %.1f h driving, %d day(s))\n",
		plan.TotalDistance, plan.TotalDuration, len(plan.DailyLogs))
	fmt.Println("─────────────────────────────────────────────────────────────────────────────")

	if plan.HOSCompliance.IsCompliant {
		fmt.Println("✓ Schedule complies with FMCSA Hours of Service rules")
	} else {
		fmt.Println("✗ Schedule has HOS violations:")
		for _, v := range plan.HOSCompliance.Violations {
			fmt.Printf("  - %s\n", v)
		}
	}
	for _, w := range plan.HOSCompliance.Warnings {
		fmt.Printf("  ! %s\n", w)
	}

	for i, day := range plan.DailyLogs {
		fmt.Printf("\nDAY %d: %s (driving %.1fh, on duty %.1fh, off duty %.1fh)\n",
			i+1, day.Date,
			day.Totals.DrivingHours, day.Totals.OnDutyHours, day.Totals.OffDutyHours)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  Start\tEnd\tStatus\tActivity")
		fmt.Fprintln(w, "  ─────\t───\t──────\t────────")
		for _, entry := range day.Entries {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n",
				entry.StartTime, entry.EndTime, entry.Status, entry.Location)
		}
		w.Flush()
	}

	if len(plan.RestStops) > 0 {
		fmt.Printf("\nREST STOPS\n")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  Mile\tHours In\tAmenities")
		fmt.Fprintln(w, "  ────\t────────\t─────────")
		for _, stop := range plan.RestStops {
			fmt.Fprintf(w, "  %.0f\t%.1f\t%v\n",
				stop.DistanceMiles, stop.TimeFromStart, stop.Amenities)
		}
		w.Flush()
	}

	if len(plan.RouteSegments) > 1 {
		fmt.Printf("\nROUTE SEGMENTS\n")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  #\tFrom Mile\tTo Mile\tMiles\tHours")
		fmt.Fprintln(w, "  ─\t─────────\t───────\t─────\t─────")
		for _, seg := range plan.RouteSegments {
			fmt.Fprintf(w, "  %d\t%.0f\t%.0f\t%.1f\t%.1f\n",
				seg.SegmentNumber, seg.StartDistance, seg.EndDistance,
				seg.DistanceMiles, seg.DurationHours)
		}
		w.Flush()
	}

	fmt.Println()
}

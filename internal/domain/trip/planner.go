package trip

import (
	"fmt"

	"github.com/haulpath/tripplan/internal/domain/hos"
	"github.com/haulpath/tripplan/internal/domain/routing"
)

// Activity durations and labels used when decomposing a route into planned
// segments. The scheduler refines the shape; the planner only chooses it.
const (
	PickupHours      = 1.0
	DropoffHours     = 1.0
	FuelingStopHours = 0.5

	// FuelingIntervalMiles is how far the truck runs between fueling stops
	// on a single-tour trip.
	FuelingIntervalMiles = 1000.0

	LocationPickup      = "Pickup"
	LocationDropoff     = "Drop-off"
	LocationFuelingStop = "Fueling Stop"
	LocationPlannerRest = "Rest Break"
)

// Planner turns a computed route plus pickup/drop-off obligations into the
// ordered activity sequence the HOS scheduler consumes.
type Planner struct{}

// NewPlanner creates a segment planner
func NewPlanner() *Planner {
	return &Planner{}
}

// Plan decomposes a route into planned segments. The output always begins
// with a one-hour pickup and ends with a one-hour drop-off. Trips that fit a
// single 11-hour driving tour get fueling stops every 1,000 miles; longer
// trips alternate 11-hour driving chunks with 10-hour rest breaks.
func (p *Planner) Plan(route *routing.Route) []hos.PlannedSegment {
	segments := []hos.PlannedSegment{
		{Type: hos.SegmentOnDuty, DurationHours: PickupHours, Location: LocationPickup},
	}

	if route.DurationHours <= hos.MaxTourDriving {
		segments = append(segments, p.shortTrip(route)...)
	} else {
		segments = append(segments, p.longTrip(route)...)
	}

	segments = append(segments, hos.PlannedSegment{
		Type:          hos.SegmentOnDuty,
		DurationHours: DropoffHours,
		Location:      LocationDropoff,
	})
	return segments
}

// shortTrip walks the route in 1,000-mile slabs, each slab driven in one
// segment with a half-hour fueling stop before the next.
func (p *Planner) shortTrip(route *routing.Route) []hos.PlannedSegment {
	var segments []hos.PlannedSegment

	covered := 0.0
	number := 1
	for covered < route.DistanceMiles {
		slab := min(route.DistanceMiles-covered, FuelingIntervalMiles)
		driveTime := (slab / route.DistanceMiles) * route.DurationHours

		segments = append(segments, hos.PlannedSegment{
			Type:          hos.SegmentDrive,
			DurationHours: driveTime,
			Location:      fmt.Sprintf("Route Segment %d (%.1f mi)", number, slab),
		})
		covered += slab
		number++

		if covered < route.DistanceMiles {
			segments = append(segments, hos.PlannedSegment{
				Type:          hos.SegmentOnDuty,
				DurationHours: FuelingStopHours,
				Location:      LocationFuelingStop,
			})
		}
	}
	return segments
}

// longTrip alternates maximal driving chunks with ten-hour rest breaks until
// the route duration is exhausted. No trailing break after the last chunk.
func (p *Planner) longTrip(route *routing.Route) []hos.PlannedSegment {
	var segments []hos.PlannedSegment

	remaining := route.DurationHours
	number := 1
	for remaining > 0 {
		chunk := min(remaining, hos.MaxTourDriving)
		miles := route.DistanceMiles * (chunk / route.DurationHours)

		segments = append(segments, hos.PlannedSegment{
			Type:          hos.SegmentDrive,
			DurationHours: chunk,
			Location:      fmt.Sprintf("Route Segment %d (%.1f mi)", number, miles),
		})
		remaining -= chunk
		number++

		if remaining > 0 {
			segments = append(segments, hos.PlannedSegment{
				Type:          hos.SegmentOffDuty,
				DurationHours: hos.RestBreakHours,
				Location:      LocationPlannerRest,
			})
		}
	}
	return segments
}

package trip

import (
	"math"

	"github.com/haulpath/tripplan/internal/domain/hos"
	"github.com/haulpath/tripplan/internal/domain/routing"
	"github.com/haulpath/tripplan/internal/domain/shared"
)

// RestStopIntervalHours is how often a recommended rest stop is placed along
// the route.
const RestStopIntervalHours = 8.0

// RestStop is a recommended stopping point along the route, interpolated by
// coordinate-index proportion rather than road distance.
type RestStop struct {
	Location      shared.Coordinate `json:"location"`
	DistanceMiles float64           `json:"distance"`
	TimeFromStart float64           `json:"time_from_start"`
	Amenities     []string          `json:"amenities"`
}

// RouteSegment is one slice of the route geometry for map rendering, sized so
// each slice is at most one driving tour long.
type RouteSegment struct {
	SegmentNumber int                 `json:"segment_number"`
	StartDistance float64             `json:"start_distance"`
	EndDistance   float64             `json:"end_distance"`
	DistanceMiles float64             `json:"distance"`
	DurationHours float64             `json:"duration"`
	Coordinates   []shared.Coordinate `json:"coordinates"`
}

// PlanRestStops places rest stops at 8-hour intervals along the route. A
// route shorter than one interval yields no stops.
func PlanRestStops(route *routing.Route) []RestStop {
	stops := []RestStop{}
	if route.DurationHours <= 0 || len(route.Geometry) == 0 {
		return stops
	}

	intervals := int(route.DurationHours / RestStopIntervalHours)
	for i := 1; i <= intervals; i++ {
		timeFromStart := float64(i) * RestStopIntervalHours
		ratio := timeFromStart / route.DurationHours

		index := min(int(ratio*float64(len(route.Geometry))), len(route.Geometry)-1)
		stops = append(stops, RestStop{
			Location:      route.Geometry[index],
			DistanceMiles: ratio * route.DistanceMiles,
			TimeFromStart: timeFromStart,
			Amenities:     []string{"Fuel", "Food", "Restrooms", "Parking"},
		})
	}
	return stops
}

// SplitRouteSegments partitions the geometry into ⌈duration/11⌉ even slices.
// Slice boundaries are located by distance proportion over the coordinate
// index space.
func SplitRouteSegments(route *routing.Route) []RouteSegment {
	if route.DistanceMiles <= 0 || len(route.Geometry) == 0 {
		return []RouteSegment{{
			SegmentNumber: 1,
			DurationHours: route.DurationHours,
			Coordinates:   route.Geometry,
		}}
	}

	needed := int(math.Ceil(route.DurationHours / hos.MaxTourDriving))
	if needed < 1 {
		needed = 1
	}
	per := route.DistanceMiles / float64(needed)
	points := len(route.Geometry)

	segments := make([]RouteSegment, 0, needed)
	for i := 0; i < needed; i++ {
		start := float64(i) * per
		end := min((float64(i)+1)*per, route.DistanceMiles)

		startIndex := int(start / route.DistanceMiles * float64(points))
		endIndex := min(int(end/route.DistanceMiles*float64(points)), points-1)

		segments = append(segments, RouteSegment{
			SegmentNumber: i + 1,
			StartDistance: start,
			EndDistance:   end,
			DistanceMiles: end - start,
			DurationHours: (end - start) / route.DistanceMiles * route.DurationHours,
			Coordinates:   route.Geometry[startIndex : endIndex+1],
		})
	}
	return segments
}

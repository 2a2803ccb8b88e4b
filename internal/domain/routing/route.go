package routing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/haulpath/tripplan/internal/domain/shared"
)

// LineString is an ordered driving path. It marshals to the GeoJSON object
// form used by the directions providers and the trip response, and accepts
// either the object form or a bare coordinate array when decoding.
type LineString []shared.Coordinate

func (ls LineString) MarshalJSON() ([]byte, error) {
	coords := []shared.Coordinate(ls)
	if coords == nil {
		coords = []shared.Coordinate{}
	}
	return json.Marshal(struct {
		Type        string              `json:"type"`
		Coordinates []shared.Coordinate `json:"coordinates"`
	}{
		Type:        "LineString",
		Coordinates: coords,
	})
}

func (ls *LineString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var coords []shared.Coordinate
		if err := json.Unmarshal(trimmed, &coords); err != nil {
			return err
		}
		*ls = coords
		return nil
	}

	var obj struct {
		Type        string              `json:"type"`
		Coordinates []shared.Coordinate `json:"coordinates"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*ls = obj.Coordinates
	return nil
}

// Route is the product of a directions provider: total distance and duration
// for the leg sequence current → pickup → dropoff, plus the path geometry.
// Immutable once built; consumers read, never mutate.
type Route struct {
	DistanceMiles float64
	DurationHours float64
	Geometry      LineString
	Provider      string
}

// NewRoute creates a route with validation
func NewRoute(distanceMiles, durationHours float64, geometry LineString, provider string) (*Route, error) {
	if math.IsNaN(distanceMiles) || math.IsInf(distanceMiles, 0) || distanceMiles < 0 {
		return nil, shared.NewInvalidInputError("distance", fmt.Sprintf("must be a non-negative number, got %v", distanceMiles))
	}
	if math.IsNaN(durationHours) || math.IsInf(durationHours, 0) || durationHours < 0 {
		return nil, shared.NewInvalidInputError("duration", fmt.Sprintf("must be a non-negative number, got %v", durationHours))
	}
	if len(geometry) < 2 {
		return nil, shared.NewInvalidInputError("geometry", fmt.Sprintf("needs at least two points, got %d", len(geometry)))
	}
	for i, c := range geometry {
		if err := c.Validate(); err != nil {
			return nil, shared.NewInvalidInputError("geometry", fmt.Sprintf("point %d: %v", i, err))
		}
	}

	return &Route{
		DistanceMiles: distanceMiles,
		DurationHours: durationHours,
		Geometry:      geometry,
		Provider:      provider,
	}, nil
}

// AverageSpeedMPH returns the implied average speed, zero when the route has
// no duration.
func (r *Route) AverageSpeedMPH() float64 {
	if r.DurationHours == 0 {
		return 0
	}
	return r.DistanceMiles / r.DurationHours
}

func (r *Route) String() string {
	return fmt.Sprintf("Route(%.1f mi, %.1f h, %d points, via %s)",
		r.DistanceMiles, r.DurationHours, len(r.Geometry), r.Provider)
}

package shared

import (
	"encoding/json"
	"fmt"
	"math"
)

// EarthRadiusMiles is the mean earth radius used for great-circle distances.
const EarthRadiusMiles = 3959.0

// Coordinate represents an immutable (longitude, latitude) pair in decimal degrees
type Coordinate struct {
	Lon float64
	Lat float64
}

// NewCoordinate creates a coordinate with range validation
func NewCoordinate(lon, lat float64) (Coordinate, error) {
	c := Coordinate{Lon: lon, Lat: lat}
	if err := c.Validate(); err != nil {
		return Coordinate{}, err
	}
	return c, nil
}

// Validate checks longitude and latitude ranges
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Lon) || c.Lon < -180 || c.Lon > 180 {
		return NewInvalidInputError("longitude", fmt.Sprintf("must be within [-180, 180], got %v", c.Lon))
	}
	if math.IsNaN(c.Lat) || c.Lat < -90 || c.Lat > 90 {
		return NewInvalidInputError("latitude", fmt.Sprintf("must be within [-90, 90], got %v", c.Lat))
	}
	return nil
}

// HaversineMiles calculates the great-circle distance to another coordinate in miles
func (c Coordinate) HaversineMiles(other Coordinate) float64 {
	lat1 := c.Lat * math.Pi / 180
	lat2 := other.Lat * math.Pi / 180
	dLat := (other.Lat - c.Lat) * math.Pi / 180
	dLon := (other.Lon - c.Lon) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return EarthRadiusMiles * 2 * math.Asin(math.Sqrt(a))
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%g, %g)", c.Lon, c.Lat)
}

// MarshalJSON encodes the coordinate as a GeoJSON-style [lon, lat] array
func (c Coordinate) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{c.Lon, c.Lat})
}

// UnmarshalJSON decodes a [lon, lat] array
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return NewInvalidInputError("coordinate", fmt.Sprintf("expected [lon, lat] pair, got %d elements", len(pair)))
	}
	c.Lon = pair[0]
	c.Lat = pair[1]
	return nil
}

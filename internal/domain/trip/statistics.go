package trip

import "github.com/haulpath/tripplan/internal/domain/routing"

// Cost model constants (flat per-mile estimates).
const (
	FuelCostPerMile = 0.15
	TollCostPerMile = 0.05
)

// Statistics summarizes a route for the trip response.
type Statistics struct {
	TotalDistance     float64 `json:"total_distance"`
	TotalDuration     float64 `json:"total_duration"`
	AverageSpeed      float64 `json:"average_speed"`
	EstimatedFuelCost float64 `json:"estimated_fuel_cost"`
	EstimatedTolls    float64 `json:"estimated_tolls"`
}

// ComputeStatistics derives the route summary. Average speed is zero for a
// zero-duration route.
func ComputeStatistics(route *routing.Route) Statistics {
	return Statistics{
		TotalDistance:     route.DistanceMiles,
		TotalDuration:     route.DurationHours,
		AverageSpeed:      route.AverageSpeedMPH(),
		EstimatedFuelCost: route.DistanceMiles * FuelCostPerMile,
		EstimatedTolls:    route.DistanceMiles * TollCostPerMile,
	}
}

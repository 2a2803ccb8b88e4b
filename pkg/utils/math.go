package utils

import "math"

// Round2 rounds a value to two decimal places, the precision used for
// distances and durations in API responses.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Package directions implements the routing.Provider port against external
// mapping services, plus the deterministic estimator the fallback chain
// terminates on.
package directions

import "time"

const (
	defaultTimeout = 30 * time.Second

	// milesPerMeter converts provider distances to miles.
	milesPerMeter = 0.000621371

	secondsPerHour = 3600.0
)

package routing

import (
	"context"

	"github.com/haulpath/tripplan/internal/domain/shared"
)

// Provider defines operations for computing driving routes through an
// external directions service. Implementations live in adapters/directions.
type Provider interface {
	// Name identifies the provider in logs and metrics ("mapbox", "ors", ...)
	Name() string

	// GetRoute computes a route visiting current → pickup → dropoff.
	// The returned route has strictly positive distance and duration and a
	// geometry containing at least the three input points in order.
	GetRoute(ctx context.Context, current, pickup, dropoff shared.Coordinate) (*Route, error)
}

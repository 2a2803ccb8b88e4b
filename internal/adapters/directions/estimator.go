package directions

import (
	"context"

	"github.com/haulpath/tripplan/internal/domain/routing"
	"github.com/haulpath/tripplan/internal/domain/shared"
	"github.com/haulpath/tripplan/pkg/utils"
)

// estimatorSpeedMPH is the assumed average highway speed when deriving
// duration from great-circle distance.
const estimatorSpeedMPH = 50.0

// Estimator is the terminal provider: a great-circle approximation used when
// no remote provider is configured or every one of them failed. It is total,
// so the fallback chain always produces a route.
type Estimator struct{}

// NewEstimator creates the estimator provider
func NewEstimator() *Estimator {
	return &Estimator{}
}

func (e *Estimator) Name() string {
	return "estimator"
}

// GetRoute sums the haversine legs current→pickup and pickup→dropoff and
// derives duration at a fixed 50 mph. The geometry is the three input points.
func (e *Estimator) GetRoute(ctx context.Context, current, pickup, dropoff shared.Coordinate) (*routing.Route, error) {
	distance := current.HaversineMiles(pickup) + pickup.HaversineMiles(dropoff)
	duration := distance / estimatorSpeedMPH

	return routing.NewRoute(
		utils.Round2(distance),
		utils.Round2(duration),
		routing.LineString{current, pickup, dropoff},
		e.Name(),
	)
}

package directions_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulpath/tripplan/internal/adapters/directions"
	"github.com/haulpath/tripplan/internal/domain/routing"
	"github.com/haulpath/tripplan/internal/domain/shared"
)

type stubProvider struct {
	name  string
	route *routing.Route
	err   error
	calls int
}

func (s *stubProvider) Name() string {
	return s.name
}

func (s *stubProvider) GetRoute(_ context.Context, _, _, _ shared.Coordinate) (*routing.Route, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.route, nil
}

type recordedAttempt struct {
	provider string
	outcome  string
}

type stubRecorder struct {
	attempts []recordedAttempt
}

func (s *stubRecorder) RecordDirectionsAttempt(provider, outcome string, _ float64) {
	s.attempts = append(s.attempts, recordedAttempt{provider: provider, outcome: outcome})
}

func stubRoute(t *testing.T, provider string) *routing.Route {
	t.Helper()
	route, err := routing.NewRoute(100, 2, routing.LineString{
		{Lon: 0, Lat: 0},
		{Lon: 1, Lat: 0},
	}, provider)
	require.NoError(t, err)
	return route
}

func chainCoords() (shared.Coordinate, shared.Coordinate, shared.Coordinate) {
	return shared.Coordinate{Lon: 0, Lat: 0}, shared.Coordinate{Lon: 1, Lat: 0}, shared.Coordinate{Lon: 2, Lat: 0}
}

func TestChain_PrefersFirstProvider(t *testing.T) {
	// Arrange
	first := &stubProvider{name: "mapbox", route: stubRoute(t, "mapbox")}
	second := &stubProvider{name: "ors", route: stubRoute(t, "ors")}
	recorder := &stubRecorder{}
	chain := directions.NewChain([]routing.Provider{first, second}, directions.NewEstimator(), 1000, 10, recorder)
	current, pickup, dropoff := chainCoords()

	// Act
	route, err := chain.GetRoute(context.Background(), current, pickup, dropoff)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "mapbox", route.Provider)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls)
	assert.Equal(t, []recordedAttempt{{provider: "mapbox", outcome: "success"}}, recorder.attempts)
}

func TestChain_FallsThroughOnError(t *testing.T) {
	// Arrange
	first := &stubProvider{name: "mapbox", err: errors.New("boom")}
	second := &stubProvider{name: "ors", route: stubRoute(t, "ors")}
	recorder := &stubRecorder{}
	chain := directions.NewChain([]routing.Provider{first, second}, directions.NewEstimator(), 1000, 10, recorder)
	current, pickup, dropoff := chainCoords()

	// Act
	route, err := chain.GetRoute(context.Background(), current, pickup, dropoff)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "ors", route.Provider)
	assert.Equal(t, []recordedAttempt{
		{provider: "mapbox", outcome: "error"},
		{provider: "ors", outcome: "success"},
	}, recorder.attempts)
}

func TestChain_SettlesOnFallback(t *testing.T) {
	// Arrange
	first := &stubProvider{name: "mapbox", err: errors.New("boom")}
	second := &stubProvider{name: "ors", err: errors.New("boom")}
	recorder := &stubRecorder{}
	chain := directions.NewChain([]routing.Provider{first, second}, directions.NewEstimator(), 1000, 10, recorder)
	current, pickup, dropoff := chainCoords()

	// Act
	route, err := chain.GetRoute(context.Background(), current, pickup, dropoff)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "estimator", route.Provider)
	assert.Greater(t, route.DistanceMiles, 0.0)
	require.Len(t, recorder.attempts, 3)
	assert.Equal(t, recordedAttempt{provider: "estimator", outcome: "success"}, recorder.attempts[2])
}

func TestChain_BreakerShortCircuitsAfterRepeatedFailures(t *testing.T) {
	// Arrange
	flaky := &stubProvider{name: "mapbox", err: errors.New("boom")}
	recorder := &stubRecorder{}
	chain := directions.NewChain([]routing.Provider{flaky}, directions.NewEstimator(), 1000, 20, recorder)
	current, pickup, dropoff := chainCoords()

	// Act - three failures trip the breaker, later calls skip the provider
	for i := 0; i < 5; i++ {
		_, err := chain.GetRoute(context.Background(), current, pickup, dropoff)
		require.NoError(t, err)
	}

	// Assert
	assert.Equal(t, 3, flaky.calls)
	var outcomes []string
	for _, attempt := range recorder.attempts {
		if attempt.provider == "mapbox" {
			outcomes = append(outcomes, attempt.outcome)
		}
	}
	assert.Equal(t, []string{"error", "error", "error", "open", "open"}, outcomes)
}

func TestChain_CancelledContextAborts(t *testing.T) {
	// Arrange
	provider := &stubProvider{name: "mapbox", route: stubRoute(t, "mapbox")}
	chain := directions.NewChain([]routing.Provider{provider}, directions.NewEstimator(), 1000, 10, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	current, pickup, dropoff := chainCoords()

	// Act
	route, err := chain.GetRoute(ctx, current, pickup, dropoff)

	// Assert
	require.Error(t, err)
	assert.Nil(t, route)
	assert.Equal(t, 0, provider.calls)
}

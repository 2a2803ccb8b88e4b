package helpers

import (
	"context"
	"sync"

	"github.com/haulpath/tripplan/internal/domain/routing"
	"github.com/haulpath/tripplan/internal/domain/shared"
)

// MockRouteProvider simulates a route provider for testing
type MockRouteProvider struct {
	mu sync.RWMutex

	distanceMiles float64
	durationHours float64
	err           error

	// Last request captured for assertions
	LastCurrent shared.Coordinate
	LastPickup  shared.Coordinate
	LastDropoff shared.Coordinate
	Calls       int
}

// NewMockRouteProvider creates a mock provider returning a 100 mi / 2 h route
func NewMockRouteProvider() *MockRouteProvider {
	return &MockRouteProvider{
		distanceMiles: 100,
		durationHours: 2,
	}
}

// SetRoute configures the distance and duration of returned routes
func (m *MockRouteProvider) SetRoute(distanceMiles, durationHours float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.distanceMiles = distanceMiles
	m.durationHours = durationHours
}

// SetError configures GetRoute to fail with the given error
func (m *MockRouteProvider) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Name identifies the provider in route metadata
func (m *MockRouteProvider) Name() string {
	return "mock"
}

// GetRoute returns the configured route through the three request points
func (m *MockRouteProvider) GetRoute(_ context.Context, current, pickup, dropoff shared.Coordinate) (*routing.Route, error) {
	m.mu.Lock()
	m.LastCurrent = current
	m.LastPickup = pickup
	m.LastDropoff = dropoff
	m.Calls++
	err := m.err
	distance := m.distanceMiles
	duration := m.durationHours
	m.mu.Unlock()

	if err != nil {
		return nil, err
	}

	return routing.NewRoute(distance, duration, routing.LineString{current, pickup, dropoff}, m.Name())
}

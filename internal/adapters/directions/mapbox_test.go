package directions_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulpath/tripplan/internal/adapters/directions"
	"github.com/haulpath/tripplan/internal/domain/shared"
)

func TestMapboxClient_GetRoute(t *testing.T) {
	// Arrange
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		gotQuery = map[string]string{
			"access_token": query.Get("access_token"),
			"geometries":   query.Get("geometries"),
			"overview":     query.Get("overview"),
			"steps":        query.Get("steps"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"routes": [{
				"distance": 160934.4,
				"duration": 7200,
				"geometry": {
					"type": "LineString",
					"coordinates": [[-87.6298, 41.8781], [-88.9, 40.2], [-90.1994, 38.627]]
				}
			}]
		}`))
	}))
	defer server.Close()

	client := directions.NewMapboxClientWithConfig("test-token", server.URL, 5*time.Second)

	// Act
	route, err := client.GetRoute(context.Background(),
		shared.Coordinate{Lon: -87.6298, Lat: 41.8781},
		shared.Coordinate{Lon: -88.9, Lat: 40.2},
		shared.Coordinate{Lon: -90.1994, Lat: 38.627},
	)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "mapbox", route.Provider)
	assert.InDelta(t, 100.0, route.DistanceMiles, 1e-9)
	assert.InDelta(t, 2.0, route.DurationHours, 1e-9)
	assert.Len(t, route.Geometry, 3)
	assert.Equal(t, "test-token", gotQuery["access_token"])
	assert.Equal(t, "geojson", gotQuery["geometries"])
	assert.Equal(t, "full", gotQuery["overview"])
	assert.Equal(t, "false", gotQuery["steps"])
}

func TestMapboxClient_ErrorResponses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{
			name:    "server error",
			status:  http.StatusUnauthorized,
			body:    `{"message": "Not Authorized"}`,
			wantErr: "status 401",
		},
		{
			name:    "no routes",
			status:  http.StatusOK,
			body:    `{"routes": []}`,
			wantErr: "no routes",
		},
		{
			name:    "malformed body",
			status:  http.StatusOK,
			body:    `{"routes": [`,
			wantErr: "unmarshal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()
			client := directions.NewMapboxClientWithConfig("test-token", server.URL, 5*time.Second)

			// Act
			route, err := client.GetRoute(context.Background(),
				shared.Coordinate{Lon: 0, Lat: 0},
				shared.Coordinate{Lon: 1, Lat: 0},
				shared.Coordinate{Lon: 2, Lat: 0},
			)

			// Assert
			require.Error(t, err)
			assert.Nil(t, route)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

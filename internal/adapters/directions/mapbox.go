package directions

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/haulpath/tripplan/internal/domain/routing"
	"github.com/haulpath/tripplan/internal/domain/shared"
	"github.com/haulpath/tripplan/pkg/utils"
)

const mapboxBaseURL = "https://api.mapbox.com/directions/v5/mapbox/driving"

// MapboxClient implements the routing.Provider port against the Mapbox
// Directions v5 API, driving profile.
type MapboxClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewMapboxClient creates a Mapbox directions client with the default
// endpoint and a 30-second request timeout.
func NewMapboxClient(token string) *MapboxClient {
	return NewMapboxClientWithConfig(token, mapboxBaseURL, defaultTimeout)
}

// NewMapboxClientWithConfig creates a Mapbox client against a custom
// endpoint. An empty baseURL uses the public API.
func NewMapboxClientWithConfig(token, baseURL string, timeout time.Duration) *MapboxClient {
	if baseURL == "" {
		baseURL = mapboxBaseURL
	}
	return &MapboxClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		token:      token,
	}
}

func (c *MapboxClient) Name() string {
	return "mapbox"
}

// GetRoute requests one route visiting the three waypoints in order. Meters
// and seconds from the API are converted to miles and hours and rounded to
// two decimals.
func (c *MapboxClient) GetRoute(ctx context.Context, current, pickup, dropoff shared.Coordinate) (*routing.Route, error) {
	waypoints := fmt.Sprintf("%v,%v;%v,%v;%v,%v",
		current.Lon, current.Lat, pickup.Lon, pickup.Lat, dropoff.Lon, dropoff.Lat)

	query := url.Values{}
	query.Set("access_token", c.token)
	query.Set("geometries", "geojson")
	query.Set("overview", "full")
	query.Set("steps", "false")
	requestURL := fmt.Sprintf("%s/%s?%s", c.baseURL, waypoints, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mapbox request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("mapbox error (status %d): %s", resp.StatusCode, string(body))
	}

	var response struct {
		Routes []struct {
			Distance float64            `json:"distance"` // meters
			Duration float64            `json:"duration"` // seconds
			Geometry routing.LineString `json:"geometry"`
		} `json:"routes"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(response.Routes) == 0 {
		return nil, fmt.Errorf("mapbox returned no routes")
	}

	best := response.Routes[0]
	return routing.NewRoute(
		utils.Round2(best.Distance*milesPerMeter),
		utils.Round2(best.Duration/secondsPerHour),
		best.Geometry,
		c.Name(),
	)
}

package directions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/haulpath/tripplan/internal/domain/routing"
	"github.com/haulpath/tripplan/internal/domain/shared"
	"github.com/haulpath/tripplan/pkg/utils"
)

const orsBaseURL = "https://api.openrouteservice.org/v2/directions/driving-car"

// ORSClient implements the routing.Provider port against the OpenRouteService
// v2 directions API, driving-car profile.
type ORSClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewORSClient creates an OpenRouteService client with the default endpoint
// and a 30-second request timeout.
func NewORSClient(apiKey string) *ORSClient {
	return NewORSClientWithConfig(apiKey, orsBaseURL, defaultTimeout)
}

// NewORSClientWithConfig creates an ORS client against a custom endpoint.
// An empty baseURL uses the public API.
func NewORSClientWithConfig(apiKey, baseURL string, timeout time.Duration) *ORSClient {
	if baseURL == "" {
		baseURL = orsBaseURL
	}
	return &ORSClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

func (c *ORSClient) Name() string {
	return "ors"
}

// GetRoute posts the three waypoints and parses the GeoJSON feature response.
// The summary values go through the same meter/second conversions as Mapbox.
func (c *ORSClient) GetRoute(ctx context.Context, current, pickup, dropoff shared.Coordinate) (*routing.Route, error) {
	payload := struct {
		Coordinates [][]float64 `json:"coordinates"`
		Format      string      `json:"format"`
		Units       string      `json:"units"`
	}{
		Coordinates: [][]float64{
			{current.Lon, current.Lat},
			{pickup.Lon, pickup.Lat},
			{dropoff.Lon, dropoff.Lat},
		},
		Format: "geojson",
		Units:  "mi",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ors request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("ors error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var response struct {
		Features []struct {
			Properties struct {
				Summary struct {
					Distance float64 `json:"distance"`
					Duration float64 `json:"duration"`
				} `json:"summary"`
			} `json:"properties"`
			Geometry routing.LineString `json:"geometry"`
		} `json:"features"`
	}
	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(response.Features) == 0 {
		return nil, fmt.Errorf("ors returned no features")
	}

	feature := response.Features[0]
	return routing.NewRoute(
		utils.Round2(feature.Properties.Summary.Distance*milesPerMeter),
		utils.Round2(feature.Properties.Summary.Duration/secondsPerHour),
		feature.Geometry,
		c.Name(),
	)
}

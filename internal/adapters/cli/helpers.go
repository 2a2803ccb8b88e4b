package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/haulpath/tripplan/internal/infrastructure/config"
)

const defaultServerURL = "http://localhost:8000"

// serverClient is a thin HTTP client for the trip planner server
type serverClient struct {
	baseURL string
	http    *http.Client
}

// newServerClient creates a client for the resolved server URL
func newServerClient() *serverClient {
	return &serverClient{
		baseURL: strings.TrimRight(resolveServerURL(), "/"),
		// Long trips take several provider round-trips to plan
		http: &http.Client{Timeout: 90 * time.Second},
	}
}

// resolveServerURL resolves the server URL from flags or defaults
// Priority: --server flag > user config > built-in default
func resolveServerURL() string {
	if serverURL != "" {
		return serverURL
	}

	if handler, err := config.NewUserConfigHandler(); err == nil {
		if userCfg, err := handler.Load(); err == nil && userCfg.ServerURL != "" {
			return userCfg.ServerURL
		}
	}

	return defaultServerURL
}

// resolveDriverID resolves the driver from flags or user config defaults.
// Returns 0 when no driver is configured anywhere; commands that can run
// detached treat that as "no driver".
func resolveDriverID() uint {
	if driverID > 0 {
		return driverID
	}

	if handler, err := config.NewUserConfigHandler(); err == nil {
		if userCfg, err := handler.Load(); err == nil && userCfg.DefaultDriverID != nil {
			return *userCfg.DefaultDriverID
		}
	}

	return 0
}

// get performs a GET request and decodes the JSON response into out
func (c *serverClient) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// post performs a POST request with a JSON body and decodes the response
func (c *serverClient) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *serverClient) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach server at %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var serverErr struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&serverErr); decodeErr == nil && serverErr.Error != "" {
			return fmt.Errorf("server returned %d: %s", resp.StatusCode, serverErr.Error)
		}
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode server response: %w", err)
	}
	return nil
}

// parseLonLat parses a "lon,lat" flag value into a coordinate pair
func parseLonLat(value string) ([]float64, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("expected \"lon,lat\", got %q", value)
	}

	coords := make([]float64, 2)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q: %w", part, err)
		}
		coords[i] = v
	}
	return coords, nil
}

// prettyPrint formats JSON for display
func prettyPrint(v interface{}) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

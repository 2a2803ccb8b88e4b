package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/haulpath/tripplan/internal/application/common"
	"github.com/haulpath/tripplan/internal/domain/driver"
	"github.com/haulpath/tripplan/internal/domain/shared"
)

// AddDriverCommand registers a new driver. HomeTimezone is an IANA zone
// name; empty defaults to UTC.
type AddDriverCommand struct {
	Name         string `json:"name"`
	HomeTimezone string `json:"home_tz"`
}

// AddDriverResponse is the wire form of the created driver
type AddDriverResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	HomeTimezone string    `json:"home_tz"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AddDriverHandler handles driver registration commands
type AddDriverHandler struct {
	drivers driver.Repository
}

// NewAddDriverHandler creates a new AddDriverHandler
func NewAddDriverHandler(drivers driver.Repository) *AddDriverHandler {
	return &AddDriverHandler{drivers: drivers}
}

// Handle executes the add driver command
func (h *AddDriverHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*AddDriverCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *AddDriverCommand")
	}

	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, shared.NewInvalidInputError("name", "is required")
	}

	// Reject unknown zones at the door: a driver stored with a bad zone
	// would silently plan every trip in UTC.
	if cmd.HomeTimezone != "" {
		if _, err := time.LoadLocation(cmd.HomeTimezone); err != nil {
			return nil, shared.NewInvalidInputError("home_tz",
				fmt.Sprintf("unknown IANA timezone %q", cmd.HomeTimezone))
		}
	}

	d := driver.NewDriver(name, cmd.HomeTimezone)
	if err := h.drivers.Add(ctx, d); err != nil {
		return nil, shared.NewPersistenceError("create driver", err)
	}

	common.LoggerFromContext(ctx).Log("info", "driver registered", map[string]interface{}{
		"driver_id": d.ID,
		"name":      d.Name,
		"home_tz":   d.HomeTimezone,
	})

	return &AddDriverResponse{
		ID:           d.ID,
		Name:         d.Name,
		HomeTimezone: d.HomeTimezone,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}, nil
}

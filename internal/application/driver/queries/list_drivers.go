package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/haulpath/tripplan/internal/application/common"
	"github.com/haulpath/tripplan/internal/domain/driver"
)

// ListDriversQuery requests every registered driver
type ListDriversQuery struct{}

// DriverDTO is the wire form of one driver
type DriverDTO struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	HomeTimezone string    `json:"home_tz"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ListDriversResponse contains all drivers ordered by name
type ListDriversResponse struct {
	Drivers []DriverDTO `json:"drivers"`
}

// ListDriversHandler handles driver listing queries
type ListDriversHandler struct {
	drivers driver.Repository
}

// NewListDriversHandler creates a new ListDriversHandler
func NewListDriversHandler(drivers driver.Repository) *ListDriversHandler {
	return &ListDriversHandler{drivers: drivers}
}

// Handle executes the list drivers query
func (h *ListDriversHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*ListDriversQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListDriversQuery")
	}

	all, err := h.drivers.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]DriverDTO, 0, len(all))
	for _, d := range all {
		dtos = append(dtos, DriverDTO{
			ID:           d.ID,
			Name:         d.Name,
			HomeTimezone: d.HomeTimezone,
			CreatedAt:    d.CreatedAt,
			UpdatedAt:    d.UpdatedAt,
		})
	}

	return &ListDriversResponse{Drivers: dtos}, nil
}

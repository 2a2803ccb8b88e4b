package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/haulpath/tripplan/internal/application/common"
	"github.com/haulpath/tripplan/internal/domain/driver"
	"github.com/haulpath/tripplan/internal/domain/hos"
)

// GetDriverLogsQuery requests the persisted daily logs for one driver
type GetDriverLogsQuery struct {
	DriverID uint
}

// DailyRecordDTO is the wire form of one persisted driver-day
type DailyRecordDTO struct {
	ID           string          `json:"id"`
	Driver       uint            `json:"driver"`
	DriverName   string          `json:"driver_name"`
	Date         string          `json:"date"`
	DrivingHours float64         `json:"driving_hours"`
	OnDutyHours  float64         `json:"on_duty_hours"`
	OffDutyHours float64         `json:"off_duty_hours"`
	Entries      []hos.DutyEntry `json:"entries"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// GetDriverLogsResponse contains the driver's logs, newest date first
type GetDriverLogsResponse struct {
	Records []DailyRecordDTO `json:"records"`
}

// GetDriverLogsHandler handles driver log queries
type GetDriverLogsHandler struct {
	drivers driver.Repository
	records driver.RecordRepository
}

// NewGetDriverLogsHandler creates a new GetDriverLogsHandler
func NewGetDriverLogsHandler(drivers driver.Repository, records driver.RecordRepository) *GetDriverLogsHandler {
	return &GetDriverLogsHandler{drivers: drivers, records: records}
}

// Handle executes the get driver logs query
func (h *GetDriverLogsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetDriverLogsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetDriverLogsQuery")
	}

	// Resolve the driver first so an unknown ID maps to not-found rather
	// than an empty list
	d, err := h.drivers.FindByID(ctx, query.DriverID)
	if err != nil {
		return nil, err
	}

	records, err := h.records.FindByDriver(ctx, d.ID)
	if err != nil {
		return nil, err
	}

	dtos := make([]DailyRecordDTO, 0, len(records))
	for _, record := range records {
		entries := record.Entries
		if entries == nil {
			entries = []hos.DutyEntry{}
		}
		dtos = append(dtos, DailyRecordDTO{
			ID:           record.ID,
			Driver:       record.DriverID,
			DriverName:   d.Name,
			Date:         record.Date,
			DrivingHours: record.DrivingHours,
			OnDutyHours:  record.OnDutyHours,
			OffDutyHours: record.OffDutyHours,
			Entries:      entries,
			CreatedAt:    record.CreatedAt,
			UpdatedAt:    record.UpdatedAt,
		})
	}

	return &GetDriverLogsResponse{Records: dtos}, nil
}

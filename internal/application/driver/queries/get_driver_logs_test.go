package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulpath/tripplan/internal/application/driver/queries"
	"github.com/haulpath/tripplan/internal/domain/driver"
	"github.com/haulpath/tripplan/internal/domain/hos"
	"github.com/haulpath/tripplan/internal/domain/shared"
	"github.com/haulpath/tripplan/test/helpers"
)

func TestGetDriverLogsHandler_NewestDateFirst(t *testing.T) {
	// Arrange
	drivers := helpers.NewMockDriverRepository()
	records := helpers.NewMockRecordRepository()
	d := driver.NewDriver("Maya Torres", "America/Chicago")
	require.NoError(t, drivers.Add(context.Background(), d))

	for _, date := range []string{"2025-03-01", "2025-03-03", "2025-03-02"} {
		records.Seed(&driver.DailyRecord{
			ID:           "rec-" + date,
			DriverID:     d.ID,
			Date:         date,
			DrivingHours: 6,
			OnDutyHours:  8,
			OffDutyHours: 10,
			Entries: []hos.DutyEntry{
				{StartTime: "00:00", EndTime: "08:00", Status: hos.StatusOffDuty, Location: "Off Duty", DurationHours: 8},
			},
		})
	}
	handler := queries.NewGetDriverLogsHandler(drivers, records)

	// Act
	response, err := handler.Handle(context.Background(), &queries.GetDriverLogsQuery{DriverID: d.ID})

	// Assert
	require.NoError(t, err)
	result, ok := response.(*queries.GetDriverLogsResponse)
	require.True(t, ok)
	require.Len(t, result.Records, 3)
	assert.Equal(t, "2025-03-03", result.Records[0].Date)
	assert.Equal(t, "2025-03-02", result.Records[1].Date)
	assert.Equal(t, "2025-03-01", result.Records[2].Date)

	first := result.Records[0]
	assert.Equal(t, d.ID, first.Driver)
	assert.Equal(t, "Maya Torres", first.DriverName)
	assert.InDelta(t, 6.0, first.DrivingHours, 1e-9)
	require.Len(t, first.Entries, 1)
	assert.Equal(t, hos.StatusOffDuty, first.Entries[0].Status)
}

func TestGetDriverLogsHandler_UnknownDriver(t *testing.T) {
	// Arrange
	handler := queries.NewGetDriverLogsHandler(helpers.NewMockDriverRepository(), helpers.NewMockRecordRepository())

	// Act
	_, err := handler.Handle(context.Background(), &queries.GetDriverLogsQuery{DriverID: 42})

	// Assert
	var notFound *shared.DriverNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, uint(42), notFound.DriverID)
}

func TestGetDriverLogsHandler_DriverWithoutLogs(t *testing.T) {
	// Arrange
	drivers := helpers.NewMockDriverRepository()
	d := driver.NewDriver("Alex Kim", "UTC")
	require.NoError(t, drivers.Add(context.Background(), d))
	handler := queries.NewGetDriverLogsHandler(drivers, helpers.NewMockRecordRepository())

	// Act
	response, err := handler.Handle(context.Background(), &queries.GetDriverLogsQuery{DriverID: d.ID})

	// Assert
	require.NoError(t, err)
	result, ok := response.(*queries.GetDriverLogsResponse)
	require.True(t, ok)
	assert.Empty(t, result.Records)
}

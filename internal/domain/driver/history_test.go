package driver_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulpath/tripplan/internal/domain/driver"
)

type fakeRecordRepo struct {
	records  []*driver.DailyRecord
	lastFrom string
	lastTo   string
}

func (f *fakeRecordRepo) Upsert(ctx context.Context, record *driver.DailyRecord) error {
	f.records = append(f.records, record)
	return nil
}

func (f *fakeRecordRepo) FindByDriver(ctx context.Context, driverID uint) ([]*driver.DailyRecord, error) {
	return f.records, nil
}

func (f *fakeRecordRepo) FindByDriverInRange(ctx context.Context, driverID uint, from, to string) ([]*driver.DailyRecord, error) {
	f.lastFrom = from
	f.lastTo = to
	var hit []*driver.DailyRecord
	for _, r := range f.records {
		if r.DriverID == driverID && r.Date >= from && r.Date <= to {
			hit = append(hit, r)
		}
	}
	return hit, nil
}

func TestHistoryService_WeeklyOnDuty(t *testing.T) {
	// Arrange
	repo := &fakeRecordRepo{records: []*driver.DailyRecord{
		{DriverID: 1, Date: "2025-03-02", OnDutyHours: 9},  // inside window
		{DriverID: 1, Date: "2025-03-08", OnDutyHours: 11}, // inside window
		{DriverID: 1, Date: "2025-03-10", OnDutyHours: 8},  // as-of day
		{DriverID: 1, Date: "2025-03-01", OnDutyHours: 14}, // one day too old
		{DriverID: 2, Date: "2025-03-09", OnDutyHours: 10}, // other driver
	}}
	service := driver.NewHistoryService(repo)
	asOf := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

	// Act
	total, err := service.WeeklyOnDuty(context.Background(), 1, asOf)

	// Assert
	require.NoError(t, err)
	assert.InDelta(t, 28.0, total, 1e-9)
	assert.Equal(t, "2025-03-02", repo.lastFrom)
	assert.Equal(t, "2025-03-10", repo.lastTo)
}

func TestHistoryService_NoRecords(t *testing.T) {
	// Arrange
	service := driver.NewHistoryService(&fakeRecordRepo{})

	// Act
	total, err := service.WeeklyOnDuty(context.Background(), 7, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

func TestDriver_LocationFallsBackToUTC(t *testing.T) {
	tests := []struct {
		name string
		zone string
		want string
	}{
		{"valid zone", "America/Denver", "America/Denver"},
		{"empty zone", "", "UTC"},
		{"unknown zone", "Mars/Olympus", "UTC"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := driver.NewDriver("Avery", tc.zone)
			if tc.zone == "" {
				// The constructor substitutes UTC for an empty zone.
				assert.Equal(t, "UTC", d.HomeTimezone)
			}
			assert.Equal(t, tc.want, d.Location().String())
		})
	}
}

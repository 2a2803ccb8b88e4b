package driver

import (
	"time"

	"github.com/haulpath/tripplan/internal/domain/hos"
)

// DailyRecord is the durable record of duty status for one driver-day: the
// three totals plus the full entry list. Unique per (DriverID, Date); a
// re-plan for the same day replaces it.
type DailyRecord struct {
	ID           string
	DriverID     uint
	Date         string // YYYY-MM-DD
	DrivingHours float64
	OnDutyHours  float64
	OffDutyHours float64
	Entries      []hos.DutyEntry
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewDailyRecord builds the persisted form of one scheduled day.
func NewDailyRecord(driverID uint, log hos.DailyLog) *DailyRecord {
	return &DailyRecord{
		DriverID:     driverID,
		Date:         log.Date,
		DrivingHours: log.Totals.DrivingHours,
		OnDutyHours:  log.Totals.OnDutyHours,
		OffDutyHours: log.Totals.OffDutyHours,
		Entries:      log.Entries,
	}
}

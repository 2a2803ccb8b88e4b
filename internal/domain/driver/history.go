package driver

import (
	"context"
	"time"

	"github.com/haulpath/tripplan/internal/domain/hos"
)

// HistoryService answers rolling-window duty questions from persisted
// records. Read-only.
type HistoryService struct {
	records RecordRepository
}

// NewHistoryService creates a history service
func NewHistoryService(records RecordRepository) *HistoryService {
	return &HistoryService{records: records}
}

// WeeklyOnDuty sums a driver's on-duty hours over the rolling 8-day window
// ending at asOf (inclusive on both ends).
func (s *HistoryService) WeeklyOnDuty(ctx context.Context, driverID uint, asOf time.Time) (float64, error) {
	from := asOf.AddDate(0, 0, -hos.WeeklyWindowDays).Format("2006-01-02")
	to := asOf.Format("2006-01-02")

	records, err := s.records.FindByDriverInRange(ctx, driverID, from, to)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for _, record := range records {
		total += record.OnDutyHours
	}
	return total, nil
}

package hos

// DutyStatus is the realized status of one logbook interval
type DutyStatus string

const (
	StatusDriving DutyStatus = "driving"
	StatusOnDuty  DutyStatus = "on_duty"
	StatusOffDuty DutyStatus = "off_duty"
)

// DutyEntry is one interval inside a daily log. Times are local "HH:MM";
// the end time "24:00" is the end-of-day sentinel.
type DutyEntry struct {
	StartTime     string     `json:"start_time"`
	EndTime       string     `json:"end_time"`
	Status        DutyStatus `json:"status"`
	Location      string     `json:"location"`
	DurationHours float64    `json:"duration_hours"`
}

// DailyTotals accumulates the duty hours of one calendar day.
// OnDutyHours measures 14-hour-window usage and therefore includes driving;
// OffDutyHours is the remainder of the 24-hour day.
type DailyTotals struct {
	DrivingHours float64 `json:"driving_hours"`
	OnDutyHours  float64 `json:"on_duty_hours"`
	OffDutyHours float64 `json:"off_duty_hours"`
}

// DailyLog is a driver's record of duty status for one local calendar day,
// covering 00:00 through 24:00 with contiguous entries.
type DailyLog struct {
	Date    string      `json:"date"`
	Entries []DutyEntry `json:"entries"`
	Totals  DailyTotals `json:"totals"`
}

// DrivingHours sums the durations of driving entries
func (l DailyLog) DrivingHours() float64 {
	var total float64
	for _, e := range l.Entries {
		if e.Status == StatusDriving {
			total += e.DurationHours
		}
	}
	return total
}

// EntryHours sums the durations of all entries
func (l DailyLog) EntryHours() float64 {
	var total float64
	for _, e := range l.Entries {
		total += e.DurationHours
	}
	return total
}

package hos

import (
	"fmt"
	"math"
)

// VerifyLogs checks the daily-log invariants the scheduler must uphold:
// contiguous entries covering the full 24 hours, totals consistent with the
// entries, and the daily driving cap. It returns human-readable violations;
// a non-empty result indicates a scheduling bug, never bad user input.
func VerifyLogs(logs []DailyLog) []string {
	var violations []string

	prevDate := ""
	for _, log := range logs {
		if prevDate != "" && log.Date <= prevDate {
			violations = append(violations, fmt.Sprintf("%s: days out of order (previous %s)", log.Date, prevDate))
		}
		prevDate = log.Date

		if len(log.Entries) == 0 {
			violations = append(violations, fmt.Sprintf("%s: no entries", log.Date))
			continue
		}
		if log.Entries[0].StartTime != "00:00" {
			violations = append(violations, fmt.Sprintf("%s: first entry starts at %s, want 00:00", log.Date, log.Entries[0].StartTime))
		}
		if last := log.Entries[len(log.Entries)-1]; last.EndTime != "24:00" {
			violations = append(violations, fmt.Sprintf("%s: last entry ends at %s, want 24:00", log.Date, last.EndTime))
		}

		var sum, driving, onDuty float64
		for i, e := range log.Entries {
			if i > 0 && e.StartTime != log.Entries[i-1].EndTime {
				violations = append(violations, fmt.Sprintf("%s: gap between %s and %s", log.Date, log.Entries[i-1].EndTime, e.StartTime))
			}
			if e.DurationHours <= 0 {
				violations = append(violations, fmt.Sprintf("%s: entry %d has non-positive duration %.4f", log.Date, i, e.DurationHours))
			}
			sum += e.DurationHours
			switch e.Status {
			case StatusDriving:
				driving += e.DurationHours
				onDuty += e.DurationHours
			case StatusOnDuty:
				onDuty += e.DurationHours
			}
		}

		if math.Abs(sum-HoursPerDay) > Epsilon {
			violations = append(violations, fmt.Sprintf("%s: entry durations sum to %.6f, want 24", log.Date, sum))
		}
		if math.Abs(driving-log.Totals.DrivingHours) > Epsilon {
			violations = append(violations, fmt.Sprintf("%s: driving total %.6f does not match entries %.6f", log.Date, log.Totals.DrivingHours, driving))
		}
		if math.Abs(onDuty-log.Totals.OnDutyHours) > Epsilon {
			violations = append(violations, fmt.Sprintf("%s: on-duty total %.6f does not match entries %.6f", log.Date, log.Totals.OnDutyHours, onDuty))
		}
		if remainder := HoursPerDay - driving - onDuty; math.Abs(remainder-log.Totals.OffDutyHours) > Epsilon {
			violations = append(violations, fmt.Sprintf("%s: off-duty total %.6f does not match remainder %.6f", log.Date, log.Totals.OffDutyHours, remainder))
		}
		if log.Totals.DrivingHours > MaxTourDriving+Epsilon {
			violations = append(violations, fmt.Sprintf("%s: driving total %.6f exceeds the %.0f-hour limit", log.Date, log.Totals.DrivingHours, MaxTourDriving))
		}
	}
	return violations
}

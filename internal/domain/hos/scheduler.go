package hos

import (
	"math"
	"time"

	"github.com/haulpath/tripplan/internal/domain/shared"
)

// Entry labels for scheduler-inserted intervals.
const (
	LocationOffDuty    = "Off Duty"
	LocationRestart    = "34-hour Restart"
	LocationRestBreak  = "Rest Break (10 hours)"
	LocationShortBreak = "30-min Break"
	LocationDutyReset  = "14-hour Reset"
)

// Scheduler lays out planned segments on a calendar while enforcing the
// FMCSA hours-of-service limits for property-carrying drivers. It is pure:
// no I/O, no clock reads, equal inputs produce equal outputs.
type Scheduler struct{}

// NewScheduler creates a Scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule converts segments plus an absolute start instant into daily duty
// logs. Days are partitioned by local midnight in loc (UTC when nil);
// weeklyUsed seeds the rolling 8-day on-duty counter. The returned logs run
// from the day containing start through the day containing the final minute
// of the last segment, each day contiguous from 00:00 to 24:00.
func (sch *Scheduler) Schedule(start time.Time, segments []PlannedSegment, weeklyUsed float64, loc *time.Location) ([]DailyLog, error) {
	if start.IsZero() {
		return nil, shared.NewScheduleError("start instant must be set")
	}
	if math.IsNaN(weeklyUsed) || math.IsInf(weeklyUsed, 0) || weeklyUsed < 0 {
		return nil, shared.NewScheduleError("weekly used hours must be finite and non-negative")
	}
	for _, seg := range segments {
		if err := seg.Validate(); err != nil {
			return nil, err
		}
	}
	if loc == nil {
		loc = time.UTC
	}

	st := newSchedState(start.In(loc))
	st.weeklyOnDuty = weeklyUsed

	// Preamble: the stretch from local midnight to the start instant is off
	// duty, and a driver arriving over the weekly limit rests before working.
	if st.cur.After(st.dayStart) {
		st.appendEntry(st.dayStart, st.cur, StatusOffDuty, LocationOffDuty, st.cur.Sub(st.dayStart).Hours())
	}
	if weeklyUsed > MaxWeeklyOnDuty {
		st.insertBreak(RestartHours, LocationRestart)
	}

	for _, seg := range segments {
		st.processSegment(seg)
	}

	st.finish()
	return st.logs, nil
}

// schedState tracks the open day and the running regulatory counters.
//
// All instants live in a fixed frame holding the wall-clock positions of the
// driver's zone, so every local day spans exactly 24 hours; on days with a
// DST transition the trailing off-duty entry absorbs the shift.
type schedState struct {
	cur      time.Time
	dayStart time.Time
	entries  []DutyEntry
	logs     []DailyLog

	dailyDriving float64
	dailyOnDuty  float64

	tourDriving        float64
	tourOnDuty         float64
	consecutiveDriving float64
	weeklyOnDuty       float64
	contiguousOffDuty  float64
}

func newSchedState(localStart time.Time) *schedState {
	cur := time.Date(localStart.Year(), localStart.Month(), localStart.Day(),
		localStart.Hour(), localStart.Minute(), localStart.Second(), localStart.Nanosecond(), time.UTC)
	dayStart := time.Date(localStart.Year(), localStart.Month(), localStart.Day(), 0, 0, 0, 0, time.UTC)
	return &schedState{cur: cur, dayStart: dayStart, entries: []DutyEntry{}}
}

// processSegment consumes one segment, inserting mandated rest whenever a
// counter is saturated with work still remaining. Chunks are capped so no
// emission can overshoot a limit or cross midnight; a day whose driving
// allowance is spent idles off duty until the next one opens.
func (s *schedState) processSegment(seg PlannedSegment) {
	remaining := seg.DurationHours
	for remaining > Epsilon {
		s.rollover()
		switch seg.Type {
		case SegmentDrive:
			if s.weeklyOnDuty >= MaxWeeklyOnDuty-Epsilon {
				s.insertBreak(RestartHours, LocationRestart)
				continue
			}
			if s.tourDriving >= MaxTourDriving-Epsilon {
				s.insertBreak(RestBreakHours, LocationRestBreak)
				continue
			}
			if s.tourOnDuty >= MaxTourOnDuty-Epsilon {
				s.insertBreak(RestBreakHours, LocationDutyReset)
				continue
			}
			if s.dailyDriving >= MaxTourDriving-Epsilon {
				// A fresh tour may begin today, but the daily log cannot
				// carry more driving. Idle out the rest of the day.
				s.emit(StatusOffDuty, LocationOffDuty, s.hoursToMidnight())
				continue
			}
			if s.consecutiveDriving >= MaxConsecutiveDriving-Epsilon {
				s.insertBreak(ShortBreakHours, LocationShortBreak)
				continue
			}
			chunk := min(remaining, s.hoursToMidnight(),
				MaxTourDriving-s.tourDriving,
				MaxTourDriving-s.dailyDriving,
				MaxTourOnDuty-s.tourOnDuty,
				MaxConsecutiveDriving-s.consecutiveDriving,
				MaxWeeklyOnDuty-s.weeklyOnDuty)
			s.emit(StatusDriving, seg.Location, chunk)
			s.dailyDriving += chunk
			s.dailyOnDuty += chunk
			s.tourDriving += chunk
			s.tourOnDuty += chunk
			s.consecutiveDriving += chunk
			s.weeklyOnDuty += chunk
			remaining -= chunk
		case SegmentOnDuty:
			if s.weeklyOnDuty >= MaxWeeklyOnDuty-Epsilon {
				s.insertBreak(RestartHours, LocationRestart)
				continue
			}
			if s.tourOnDuty >= MaxTourOnDuty-Epsilon {
				s.insertBreak(RestBreakHours, LocationDutyReset)
				continue
			}
			chunk := min(remaining, s.hoursToMidnight(),
				MaxTourOnDuty-s.tourOnDuty,
				MaxWeeklyOnDuty-s.weeklyOnDuty)
			s.emit(StatusOnDuty, seg.Location, chunk)
			s.dailyOnDuty += chunk
			s.tourOnDuty += chunk
			s.weeklyOnDuty += chunk
			remaining -= chunk
		case SegmentOffDuty:
			chunk := min(remaining, s.hoursToMidnight())
			s.emit(StatusOffDuty, seg.Location, chunk)
			remaining -= chunk
		}
	}
}

// emit appends one chunk entry at the current instant and advances it.
// Callers guarantee the chunk fits within the open day.
func (s *schedState) emit(status DutyStatus, location string, hours float64) {
	end := s.cur.Add(durationOf(hours))
	if dayEnd := s.dayEnd(); dayEnd.Sub(end).Hours() < Epsilon {
		end = dayEnd
	}
	s.appendEntry(s.cur, end, status, location, hours)
	s.cur = end
}

// insertBreak emits a mandated off-duty period of the exact canonical
// duration. The entry is clipped at the end of the open day; time past
// midnight surfaces as the next day's leading Off Duty filler on the
// following rollover.
func (s *schedState) insertBreak(hours float64, label string) {
	end := s.cur.Add(durationOf(hours))
	clip := end
	if dayEnd := s.dayEnd(); clip.After(dayEnd) {
		clip = dayEnd
	}
	s.appendEntry(s.cur, clip, StatusOffDuty, label, clip.Sub(s.cur).Hours())
	s.cur = end
}

// rollover closes finished days before the next emission. Each new day is
// filled at most once: breaks that ran past midnight leave a gap between the
// new day's midnight and the current instant, which becomes that day's
// leading Off Duty filler.
func (s *schedState) rollover() {
	for s.cur.Sub(s.dayStart).Hours() >= HoursPerDay-Epsilon {
		s.closeDay()
		s.dayStart = s.dayStart.Add(24 * time.Hour)
		if s.cur.Before(s.dayStart) {
			s.cur = s.dayStart
		}
		if s.cur.After(s.dayStart) {
			clip := s.cur
			if dayEnd := s.dayEnd(); clip.After(dayEnd) {
				clip = dayEnd
			}
			s.appendEntry(s.dayStart, clip, StatusOffDuty, LocationOffDuty, clip.Sub(s.dayStart).Hours())
		}
	}
}

// finish realizes any remaining break overhang into complete days, fills the
// last day to midnight, and closes it.
func (s *schedState) finish() {
	for s.cur.Sub(s.dayStart).Hours() > HoursPerDay+Epsilon {
		s.closeDay()
		s.dayStart = s.dayStart.Add(24 * time.Hour)
		clip := s.cur
		if dayEnd := s.dayEnd(); clip.After(dayEnd) {
			clip = dayEnd
		}
		s.appendEntry(s.dayStart, clip, StatusOffDuty, LocationOffDuty, clip.Sub(s.dayStart).Hours())
	}
	if gap := s.dayEnd().Sub(s.cur).Hours(); gap > Epsilon {
		s.appendEntry(s.cur, s.dayEnd(), StatusOffDuty, LocationOffDuty, gap)
	}
	s.closeDay()
}

// appendEntry writes one realized interval into the open day, coalescing
// with the previous entry when status and location continue unchanged.
// Every off-duty interval feeds the contiguous off-duty ledger; driving and
// on-duty intervals break it.
func (s *schedState) appendEntry(from, to time.Time, status DutyStatus, location string, hours float64) {
	if hours <= Epsilon {
		return
	}
	if status == StatusOffDuty {
		s.noteOffDuty(hours)
	} else {
		s.contiguousOffDuty = 0
	}
	start := clockLabel(from)
	end := s.endLabel(to)
	if n := len(s.entries); n > 0 {
		last := &s.entries[n-1]
		if last.Status == status && last.Location == location && last.EndTime == start {
			last.EndTime = end
			last.DurationHours += hours
			return
		}
	}
	s.entries = append(s.entries, DutyEntry{
		StartTime:     start,
		EndTime:       end,
		Status:        status,
		Location:      location,
		DurationHours: hours,
	})
}

// noteOffDuty accumulates the current unbroken off-duty stretch and applies
// the resets it has earned: a half hour requalifies consecutive driving, ten
// hours start a fresh duty tour, thirty-four hours clear the weekly counter.
func (s *schedState) noteOffDuty(hours float64) {
	s.contiguousOffDuty += hours
	if s.contiguousOffDuty >= ShortBreakHours-Epsilon {
		s.consecutiveDriving = 0
	}
	if s.contiguousOffDuty >= RestBreakHours-Epsilon {
		s.tourDriving = 0
		s.tourOnDuty = 0
	}
	if s.contiguousOffDuty >= RestartHours-Epsilon {
		s.weeklyOnDuty = 0
	}
}

func (s *schedState) closeDay() {
	s.logs = append(s.logs, DailyLog{
		Date:    s.dayStart.Format("2006-01-02"),
		Entries: s.entries,
		Totals: DailyTotals{
			DrivingHours: s.dailyDriving,
			OnDutyHours:  s.dailyOnDuty,
			OffDutyHours: HoursPerDay - s.dailyDriving - s.dailyOnDuty,
		},
	})
	s.entries = []DutyEntry{}
	s.dailyDriving = 0
	s.dailyOnDuty = 0
}

func (s *schedState) dayEnd() time.Time {
	return s.dayStart.Add(24 * time.Hour)
}

func (s *schedState) hoursToMidnight() float64 {
	return s.dayEnd().Sub(s.cur).Hours()
}

func (s *schedState) endLabel(t time.Time) string {
	if !t.Before(s.dayEnd()) {
		return "24:00"
	}
	return clockLabel(t)
}

func clockLabel(t time.Time) string {
	return t.Format("15:04")
}

func durationOf(hours float64) time.Duration {
	return time.Duration(hours * float64(time.Hour))
}

package hos

// FMCSA limits for property-carrying drivers, in hours.
const (
	// MaxTourDriving is the driving allowed within one duty tour (11-hour rule)
	MaxTourDriving = 11.0
	// MaxTourOnDuty is the on-duty window within one duty tour (14-hour rule)
	MaxTourOnDuty = 14.0
	// MaxConsecutiveDriving is the driving allowed since the last qualifying break (8-hour rule)
	MaxConsecutiveDriving = 8.0
	// MaxWeeklyOnDuty is the on-duty allowed over 8 rolling days (70-hour rule)
	MaxWeeklyOnDuty = 70.0

	// ShortBreakHours is the qualifying break after 8 cumulative driving hours
	ShortBreakHours = 0.5
	// RestBreakHours is the off-duty period that starts a new duty tour
	RestBreakHours = 10.0
	// RestartHours is the off-duty period that clears the 70-hour counter
	RestartHours = 34.0

	// WeeklyWindowDays is the length of the rolling on-duty window
	WeeklyWindowDays = 8

	// HoursPerDay is the civil length of one log day
	HoursPerDay = 24.0

	// Epsilon is the tolerance for floating-point hour comparisons
	Epsilon = 1e-6
)

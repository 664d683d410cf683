package schedule

import "time"

// Schedule defines the expected working window for one user on one weekday.
// A user has at most one schedule row per weekday.
type Schedule struct {
	ID         string
	UserID     string
	DayOfWeek  int        // 0=Sunday ... 6=Saturday, matching time.Weekday
	StartTime  time.Time  // time-of-day; the date part is ignored
	EndTime    time.Time  // time-of-day; rolls to the next day when at or before StartTime
	BreakStart *time.Time // optional time-of-day the break begins
	BreakHours float64    // break length in hours, 0 when no break is configured
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	UserName *string
}

// StartAt resolves the scheduled start as an instant on the given service date.
func (s Schedule) StartAt(date time.Time, loc *time.Location) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		s.StartTime.Hour(), s.StartTime.Minute(), 0, 0,
		loc,
	)
}

// EndAt resolves the scheduled end as an instant on the given service date.
// An end time-of-day at or before the start is an overnight shift and lands
// on the following calendar day.
func (s Schedule) EndAt(date time.Time, loc *time.Location) time.Time {
	end := time.Date(
		date.Year(), date.Month(), date.Day(),
		s.EndTime.Hour(), s.EndTime.Minute(), 0, 0,
		loc,
	)
	if !end.After(s.StartAt(date, loc)) {
		end = end.Add(24 * time.Hour)
	}
	return end
}

// IsOvernight reports whether the shift ends on the day after it starts.
func (s Schedule) IsOvernight() bool {
	endMinutes := s.EndTime.Hour()*60 + s.EndTime.Minute()
	startMinutes := s.StartTime.Hour()*60 + s.StartTime.Minute()
	return endMinutes <= startMinutes
}

// HasBreak reports whether a break is configured for this day.
func (s Schedule) HasBreak() bool {
	return s.BreakStart != nil && s.BreakHours > 0
}

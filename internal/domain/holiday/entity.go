package holiday

import "time"

type HolidayType string

const (
	TypePublic  HolidayType = "public"
	TypeCompany HolidayType = "company"
)

var HolidayTypeValues = []string{
	string(TypePublic),
	string(TypeCompany),
}

// Holiday is a date exempted from absence marking and reminders.
type Holiday struct {
	ID          string
	Name        string
	Date        time.Time
	Type        HolidayType
	IsRecurring bool // matches every year on the same month and day
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Matches reports whether this holiday applies to the given date.
// Recurring holidays ignore the stored year.
func (h Holiday) Matches(date time.Time) bool {
	if h.IsRecurring {
		return h.Date.Month() == date.Month() && h.Date.Day() == date.Day()
	}
	return h.Date.Year() == date.Year() &&
		h.Date.Month() == date.Month() &&
		h.Date.Day() == date.Day()
}

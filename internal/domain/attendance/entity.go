package attendance

import (
	"time"
)

// Attendance statuses. A record is created as present on the first scan
// and only the check-in branch or the end-of-day sweep revise it.
const (
	StatusPresent     = "present"
	StatusLate        = "late"
	StatusAbsent      = "absent"
	StatusNoTimeOut   = "no_time_out"
	StatusUnscheduled = "unscheduled"
)

var StatusValues = []string{
	StatusPresent,
	StatusLate,
	StatusAbsent,
	StatusNoTimeOut,
	StatusUnscheduled,
}

// Attendance is the ledger row: one attendance outcome per user per
// service day. TimeIn/TimeOut are stored as UTC instants; Date is a
// calendar day in the deployment timezone.
type Attendance struct {
	ID          string
	UserID      string
	Date        time.Time
	TimeIn      *time.Time
	TimeOut     *time.Time
	Status      string
	LateMinutes *int
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO
	UserName *string
}

// Complete reports whether the day needs no further reconciliation.
func (a Attendance) Complete() bool {
	return a.TimeOut != nil
}

// DerivedDuration is computed on read from a resolved ledger row and the
// day's schedule. Never persisted.
type DerivedDuration struct {
	TotalHours    float64
	OvertimeHours float64
	IsOvertime    bool
}

// ServiceDate truncates an instant to its calendar day in the given
// location. The service-day boundary is local midnight, not UTC.
func ServiceDate(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// FormatInstant renders a stored UTC instant as local wall-clock text
// for responses, nil-safe for fields not yet recorded.
func FormatInstant(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	v := t.In(loc).Format("2006-01-02 15:04:05")
	return &v
}

package reminder

import (
	"time"

	"github.com/scanpoint/attendance-backend-go/internal/domain/attendance"
	"github.com/scanpoint/attendance-backend-go/internal/domain/notification"
	"github.com/scanpoint/attendance-backend-go/internal/domain/schedule"
)

// Reminder windows. Each is a bounded 15-minute slot so a reminder fires
// at most once per sweep cadence; dedup across cycles belongs to the
// dispatcher, but the bounds stop a rule from re-triggering all day.
const (
	checkInLead       = 15 * time.Minute
	lateCheckInAfter  = 30 * time.Minute
	checkOutLead      = 15 * time.Minute
	missedCheckOutLag = 60 * time.Minute
	windowSize        = 15 * time.Minute
)

// Due holds one reminder decision together with the schedule instant it
// refers to, which the dispatcher includes in the message.
type Due struct {
	Type        notification.ReminderType
	ScheduledAt time.Time
}

// Evaluate decides which reminders are due for a user at now, given the
// shift's schedule anchored on its service date and the attendance
// recorded so far. Pure: no lookups, no writes. A holiday suppresses
// every rule. Overnight shifts resolve their end on the day after date,
// so the caller passes yesterday's date to cover a shift still running
// this morning.
func Evaluate(sched schedule.Schedule, att *attendance.Attendance, date, now time.Time, isHoliday bool, loc *time.Location) []Due {
	if isHoliday {
		return nil
	}

	start := sched.StartAt(date, loc)
	end := sched.EndAt(date, loc)

	checkedIn := att != nil && att.TimeIn != nil
	checkedOut := att != nil && att.TimeOut != nil

	var due []Due

	if !checkedIn {
		if inWindow(now, start.Add(-checkInLead), start) {
			due = append(due, Due{Type: notification.ReminderCheckIn, ScheduledAt: start})
		}
		if inWindow(now, start.Add(lateCheckInAfter), start.Add(lateCheckInAfter+windowSize)) {
			due = append(due, Due{Type: notification.ReminderLateCheckIn, ScheduledAt: start})
		}
	}

	if checkedIn && !checkedOut {
		if inWindow(now, end.Add(-checkOutLead), end) {
			due = append(due, Due{Type: notification.ReminderCheckOut, ScheduledAt: end})
		}
		if inWindow(now, end.Add(missedCheckOutLag), end.Add(missedCheckOutLag+windowSize)) {
			due = append(due, Due{Type: notification.ReminderMissedCheckOut, ScheduledAt: end})
		}
	}

	return due
}

// inWindow reports whether now is in [from, to).
func inWindow(now, from, to time.Time) bool {
	return !now.Before(from) && now.Before(to)
}

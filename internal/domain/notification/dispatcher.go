package notification

import (
	"context"
	"time"
)

// ReminderType identifies which attendance reminder is due.
type ReminderType string

const (
	ReminderCheckIn        ReminderType = "check_in"
	ReminderLateCheckIn    ReminderType = "late_check_in"
	ReminderCheckOut       ReminderType = "check_out"
	ReminderMissedCheckOut ReminderType = "missed_check_out"
)

// Dispatcher delivers a reminder to a user. Fire-and-forget from the
// evaluator's perspective; deduplication across cycles is the
// implementation's concern, not the caller's.
type Dispatcher interface {
	Notify(ctx context.Context, userID string, reminder ReminderType, scheduledAt time.Time) error
}

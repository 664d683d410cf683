package schedule

import (
	"context"
)

// ScheduleRepository defines data access methods for weekly schedules.
type ScheduleRepository interface {
	// Create creates a schedule entry; fails on a (user, day_of_week) conflict
	Create(ctx context.Context, sched Schedule) (Schedule, error)

	// GetByID retrieves a schedule by ID
	GetByID(ctx context.Context, id string) (Schedule, error)

	// GetByUserAndDay retrieves the schedule for a user on a weekday.
	// Returns nil when the user has no schedule that day.
	GetByUserAndDay(ctx context.Context, userID string, dayOfWeek int) (*Schedule, error)

	// ListByUser retrieves all schedule entries for a user ordered by weekday
	ListByUser(ctx context.Context, userID string) ([]Schedule, error)

	// ListByDay retrieves every user's schedule for a weekday.
	// Drives the end-of-day sweep and the reminder sweep.
	ListByDay(ctx context.Context, dayOfWeek int) ([]Schedule, error)

	// Update updates an existing schedule entry
	Update(ctx context.Context, sched Schedule) error

	// Delete removes a schedule entry
	Delete(ctx context.Context, id string) error
}

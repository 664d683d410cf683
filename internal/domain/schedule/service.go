package schedule

import (
	"context"
)

// ScheduleService defines business logic for weekly schedule management
type ScheduleService interface {
	// Create adds a schedule entry for a (user, weekday) pair
	Create(ctx context.Context, req CreateScheduleRequest) (ScheduleResponse, error)

	// Update modifies times or break configuration of an entry
	Update(ctx context.Context, req UpdateScheduleRequest) (ScheduleResponse, error)

	// Delete removes a schedule entry
	Delete(ctx context.Context, id string) error

	// Get retrieves a single schedule entry
	Get(ctx context.Context, id string) (ScheduleResponse, error)

	// ListByUser retrieves a user's weekly schedule
	ListByUser(ctx context.Context, userID string) ([]ScheduleResponse, error)
}

package holiday

import (
	"context"
	"time"
)

// HolidayRepository defines data access methods for the holiday calendar.
type HolidayRepository interface {
	// Create creates a holiday entry
	Create(ctx context.Context, h Holiday) (Holiday, error)

	// GetByID retrieves a holiday by ID
	GetByID(ctx context.Context, id string) (Holiday, error)

	// List retrieves all holidays ordered by date
	List(ctx context.Context) ([]Holiday, error)

	// IsHoliday reports whether the date matches an exact holiday
	// or a recurring month-day holiday.
	IsHoliday(ctx context.Context, date time.Time) (bool, error)

	// Update updates an existing holiday
	Update(ctx context.Context, h Holiday) error

	// Delete removes a holiday
	Delete(ctx context.Context, id string) error
}

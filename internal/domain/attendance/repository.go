package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for the ledger.
// A unique (user_id, date) constraint backs the one-record-per-day
// invariant.
type AttendanceRepository interface {
	// Create inserts a ledger row
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetOrCreateForDate fetches the (user, date) row, inserting it with
	// status present when missing, and locks it for the remainder of the
	// surrounding transaction. Callers must run this inside a transaction;
	// the lock is what serializes concurrent scans for the same day.
	GetOrCreateForDate(ctx context.Context, userID string, date time.Time) (Attendance, error)

	// GetByUserAndDate retrieves the row for a user on a date.
	// Returns nil when no record exists.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Attendance, error)

	// GetByID retrieves a ledger row by ID
	GetByID(ctx context.Context, id string) (Attendance, error)

	// Update updates an existing ledger row
	Update(ctx context.Context, att Attendance) error

	// List retrieves ledger rows with filters and pagination
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// ListByDate retrieves every ledger row for a date
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)
}

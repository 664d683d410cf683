package attendance

import (
	"context"
	"time"
)

// ScanService resolves a single incoming QR scan into a ledger write.
type ScanService interface {
	// Scan resolves the token, decides check-in vs check-out and persists
	// the result. Fails with ErrInvalidToken, ErrNoScheduleToday or
	// ErrAlreadyCheckedOut.
	Scan(ctx context.Context, req ScanRequest) (ScanResponse, error)
}

// ReconcileService closes out incomplete ledger rows for a date.
type ReconcileService interface {
	// Reconcile sweeps all users scheduled on the date's weekday. Safe to
	// run repeatedly for the same date; per-user failures are collected in
	// the summary rather than aborting the batch.
	Reconcile(ctx context.Context, date time.Time) (ReconcileSummary, error)
}

// Service defines read and correction operations over the ledger.
type Service interface {
	// Get retrieves a single ledger row with derived durations
	Get(ctx context.Context, id string) (AttendanceResponse, error)

	// List retrieves ledger rows with filters, pagination and durations
	List(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// DailyReport retrieves every row for a date with durations
	DailyReport(ctx context.Context, date time.Time) ([]AttendanceResponse, error)

	// Update applies an admin data correction to a ledger row
	Update(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)
}

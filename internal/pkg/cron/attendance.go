package cron

import (
	"context"
	"time"

	"github.com/scanpoint/attendance-backend-go/internal/domain/attendance"
)

// ReminderSweeper is the 15-minute reminder pass.
type ReminderSweeper interface {
	Sweep(ctx context.Context) error
}

// RegisterAttendanceJobs wires the attendance sweeps into the scheduler.
//
// Reconciliation for the previous service date runs hourly, not once at
// midnight: the first run after midnight marks absences, and the later
// runs close out overnight shifts whose extended checkout only passes
// during the morning. A daily catch-up re-reconciles the date before
// that, for overnight shifts whose extension crosses the next midnight.
// Reconcile is idempotent, so finalized dates reduce to no-ops.
func RegisterAttendanceJobs(
	s *Scheduler,
	reconcileService attendance.ReconcileService,
	sweeper ReminderSweeper,
	loc *time.Location,
) {
	s.AddJob("end_of_day_reconcile", 1*time.Hour, func(ctx context.Context) error {
		yesterday := attendance.ServiceDate(time.Now().In(loc), loc).AddDate(0, 0, -1)
		_, err := reconcileService.Reconcile(ctx, yesterday)
		return err
	})

	s.AddDailyJob("reconcile_catchup", 0, loc, func(ctx context.Context) error {
		twoDaysAgo := attendance.ServiceDate(time.Now().In(loc), loc).AddDate(0, 0, -2)
		_, err := reconcileService.Reconcile(ctx, twoDaysAgo)
		return err
	})

	s.AddJob("attendance_reminders", 15*time.Minute, func(ctx context.Context) error {
		return sweeper.Sweep(ctx)
	})
}

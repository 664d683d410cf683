package reconcile

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/scanpoint/attendance-backend-go/internal/domain/attendance"
	"github.com/scanpoint/attendance-backend-go/internal/domain/holiday"
	"github.com/scanpoint/attendance-backend-go/internal/domain/schedule"
)

// How long after the scheduled end a forgotten checkout is assumed to
// have actually happened.
const checkoutExtension = 1 * time.Hour

// ReconcileServiceImpl closes out incomplete ledger rows so every
// scheduled user ends a date with a terminal status. Idempotent: a second
// run over the same date finds nothing left to change.
type ReconcileServiceImpl struct {
	scheduleRepo   schedule.ScheduleRepository
	attendanceRepo attendance.AttendanceRepository
	holidayRepo    holiday.HolidayRepository
	loc            *time.Location
	now            func() time.Time
}

func NewReconcileService(
	scheduleRepo schedule.ScheduleRepository,
	attendanceRepo attendance.AttendanceRepository,
	holidayRepo holiday.HolidayRepository,
	loc *time.Location,
) attendance.ReconcileService {
	return &ReconcileServiceImpl{
		scheduleRepo:   scheduleRepo,
		attendanceRepo: attendanceRepo,
		holidayRepo:    holidayRepo,
		loc:            loc,
		now:            time.Now,
	}
}

// Reconcile implements attendance.ReconcileService. Holidays suppress
// absence marking; forgotten checkouts are still closed so worked time on
// a holiday is not lost. Per-user failures land in the summary and the
// sweep moves on.
func (s *ReconcileServiceImpl) Reconcile(ctx context.Context, date time.Time) (attendance.ReconcileSummary, error) {
	date = attendance.ServiceDate(date, s.loc)
	now := s.now()

	summary := attendance.ReconcileSummary{
		Date: date.Format("2006-01-02"),
	}

	isHoliday, err := s.holidayRepo.IsHoliday(ctx, date)
	if err != nil {
		return summary, fmt.Errorf("failed to check holiday calendar: %w", err)
	}

	schedules, err := s.scheduleRepo.ListByDay(ctx, int(date.Weekday()))
	if err != nil {
		return summary, fmt.Errorf("failed to list schedules: %w", err)
	}
	summary.Scheduled = len(schedules)

	for _, sched := range schedules {
		if err := s.reconcileUser(ctx, sched, date, now, isHoliday, &summary); err != nil {
			slog.Error("Reconcile: user failed",
				"user_id", sched.UserID, "date", summary.Date, "error", err)
			summary.Errors = append(summary.Errors, attendance.ReconcileItemError{
				UserID: sched.UserID,
				Reason: err.Error(),
			})
		}
	}

	slog.Info("Reconcile completed",
		"date", summary.Date,
		"scheduled", summary.Scheduled,
		"absent", summary.MarkedAbsent,
		"no_time_out", summary.MarkedNoOut,
		"auto_checkouts", summary.AutoCheckouts,
		"errors", len(summary.Errors))

	return summary, nil
}

func (s *ReconcileServiceImpl) reconcileUser(
	ctx context.Context,
	sched schedule.Schedule,
	date time.Time,
	now time.Time,
	isHoliday bool,
	summary *attendance.ReconcileSummary,
) error {
	rec, err := s.attendanceRepo.GetByUserAndDate(ctx, sched.UserID, date)
	if err != nil {
		return fmt.Errorf("failed to get attendance: %w", err)
	}

	if rec == nil {
		if isHoliday {
			summary.Skipped++
			return nil
		}
		_, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
			UserID: sched.UserID,
			Date:   date,
			Status: attendance.StatusAbsent,
		})
		if err != nil {
			return fmt.Errorf("failed to create absence record: %w", err)
		}
		summary.MarkedAbsent++
		return nil
	}

	if rec.TimeOut != nil {
		// Complete day, nothing to finalize.
		summary.Skipped++
		return nil
	}

	if rec.TimeIn == nil {
		// No-show despite an existing record, e.g. from a prior partial run.
		if isHoliday {
			summary.Skipped++
			return nil
		}
		if rec.Status == attendance.StatusAbsent {
			summary.Skipped++
			return nil
		}
		rec.Status = attendance.StatusAbsent
		if err := s.attendanceRepo.Update(ctx, *rec); err != nil {
			return fmt.Errorf("failed to mark absent: %w", err)
		}
		summary.MarkedAbsent++
		return nil
	}

	// Checked in but never out. Escalate, and once the grace window after
	// the scheduled end has passed, assume the worker left then.
	extendedCheckout := sched.EndAt(date, s.loc).Add(checkoutExtension)

	changed := rec.Status != attendance.StatusNoTimeOut
	rec.Status = attendance.StatusNoTimeOut

	if now.After(extendedCheckout) {
		out := extendedCheckout.UTC()
		rec.TimeOut = &out
		changed = true
	}

	if !changed {
		// Already escalated by an earlier run and the extension instant is
		// still in the future; leave finalization to a later sweep.
		summary.Skipped++
		return nil
	}

	if err := s.attendanceRepo.Update(ctx, *rec); err != nil {
		return fmt.Errorf("failed to mark no-time-out: %w", err)
	}
	summary.MarkedNoOut++
	if rec.TimeOut != nil {
		summary.AutoCheckouts++
	}
	return nil
}

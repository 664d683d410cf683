package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/scanpoint/attendance-backend-go/internal/domain/attendance"
	"github.com/scanpoint/attendance-backend-go/internal/domain/holiday"
	"github.com/scanpoint/attendance-backend-go/internal/domain/notification"
	"github.com/scanpoint/attendance-backend-go/internal/domain/schedule"
)

// Service sweeps all scheduled users and dispatches due reminders. Reads
// schedules and the ledger, never writes either; dispatch is
// fire-and-forget.
type Service struct {
	scheduleRepo   schedule.ScheduleRepository
	attendanceRepo attendance.AttendanceRepository
	holidayRepo    holiday.HolidayRepository
	dispatcher     notification.Dispatcher
	loc            *time.Location
	now            func() time.Time
}

func NewService(
	scheduleRepo schedule.ScheduleRepository,
	attendanceRepo attendance.AttendanceRepository,
	holidayRepo holiday.HolidayRepository,
	dispatcher notification.Dispatcher,
	loc *time.Location,
) *Service {
	return &Service{
		scheduleRepo:   scheduleRepo,
		attendanceRepo: attendanceRepo,
		holidayRepo:    holidayRepo,
		dispatcher:     dispatcher,
		loc:            loc,
		now:            time.Now,
	}
}

// Sweep evaluates every user scheduled today and dispatches whatever is
// due. Yesterday's overnight shifts get a second pass anchored on their
// own service date, since their checkout windows fall this morning.
// Per-user failures are logged and the sweep continues.
func (s *Service) Sweep(ctx context.Context) error {
	now := s.now().In(s.loc)
	today := attendance.ServiceDate(now, s.loc)

	if err := s.sweepDate(ctx, today, now, false); err != nil {
		return err
	}
	return s.sweepDate(ctx, today.AddDate(0, 0, -1), now, true)
}

func (s *Service) sweepDate(ctx context.Context, date, now time.Time, overnightOnly bool) error {
	isHoliday, err := s.holidayRepo.IsHoliday(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to check holiday calendar: %w", err)
	}
	if isHoliday {
		slog.Debug("Reminder sweep skipped, holiday", "date", date.Format("2006-01-02"))
		return nil
	}

	schedules, err := s.scheduleRepo.ListByDay(ctx, int(date.Weekday()))
	if err != nil {
		return fmt.Errorf("failed to list schedules: %w", err)
	}

	dispatched := 0
	for _, sched := range schedules {
		if overnightOnly && !sched.IsOvernight() {
			continue
		}

		att, err := s.attendanceRepo.GetByUserAndDate(ctx, sched.UserID, date)
		if err != nil {
			slog.Error("Reminder sweep: attendance lookup failed",
				"user_id", sched.UserID, "error", err)
			continue
		}

		for _, due := range Evaluate(sched, att, date, now, false, s.loc) {
			if err := s.dispatcher.Notify(ctx, sched.UserID, due.Type, due.ScheduledAt); err != nil {
				slog.Error("Reminder dispatch failed",
					"user_id", sched.UserID, "reminder", due.Type, "error", err)
				continue
			}
			dispatched++
		}
	}

	if dispatched > 0 {
		slog.Info("Reminder sweep completed", "dispatched", dispatched)
	}
	return nil
}

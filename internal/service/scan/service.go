package scan

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/scanpoint/attendance-backend-go/internal/domain/attendance"
	"github.com/scanpoint/attendance-backend-go/internal/domain/schedule"
	"github.com/scanpoint/attendance-backend-go/internal/domain/user"
	"github.com/scanpoint/attendance-backend-go/internal/pkg/database"
)

// Grace period before a check-in counts as late. The boundary is strict:
// exactly 15 minutes after start is still present.
const lateGrace = 15 * time.Minute

type ScanServiceImpl struct {
	tx             database.TxRunner
	userRepo       user.UserRepository
	scheduleRepo   schedule.ScheduleRepository
	attendanceRepo attendance.AttendanceRepository
	loc            *time.Location
	now            func() time.Time
}

func NewScanService(
	tx database.TxRunner,
	userRepo user.UserRepository,
	scheduleRepo schedule.ScheduleRepository,
	attendanceRepo attendance.AttendanceRepository,
	loc *time.Location,
) attendance.ScanService {
	return &ScanServiceImpl{
		tx:             tx,
		userRepo:       userRepo,
		scheduleRepo:   scheduleRepo,
		attendanceRepo: attendanceRepo,
		loc:            loc,
		now:            time.Now,
	}
}

// Scan implements attendance.ScanService. The first scan of the day is a
// check-in, the second a check-out, a third fails. Scans are serialized
// per (user, date) by the row lock GetOrCreateForDate takes inside the
// transaction, so two simultaneous scans cannot both become check-ins.
func (s *ScanServiceImpl) Scan(ctx context.Context, req attendance.ScanRequest) (attendance.ScanResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ScanResponse{}, err
	}

	nowUTC := s.now().UTC()
	nowLocal := nowUTC.In(s.loc)
	date := attendance.ServiceDate(nowLocal, s.loc)

	u, err := s.userRepo.GetByToken(ctx, req.Token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ScanResponse{}, attendance.ErrInvalidToken
		}
		return attendance.ScanResponse{}, fmt.Errorf("failed to resolve badge token: %w", err)
	}
	if !u.IsActive {
		return attendance.ScanResponse{}, attendance.ErrInvalidToken
	}

	sched, err := s.scheduleRepo.GetByUserAndDay(ctx, u.ID, int(nowLocal.Weekday()))
	if err != nil {
		return attendance.ScanResponse{}, fmt.Errorf("failed to get schedule: %w", err)
	}
	if sched == nil {
		// A scan on an unscheduled day is rejected, not silently recorded.
		return attendance.ScanResponse{}, attendance.ErrNoScheduleToday
	}

	resp := attendance.ScanResponse{
		UserID:   u.ID,
		UserName: u.FullName,
		Date:     date.Format("2006-01-02"),
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		rec, err := s.attendanceRepo.GetOrCreateForDate(ctx, u.ID, date)
		if err != nil {
			return fmt.Errorf("failed to get or create attendance: %w", err)
		}

		switch {
		case rec.TimeIn == nil:
			rec.TimeIn = &nowUTC
			lateBy := nowLocal.Sub(sched.StartAt(date, s.loc))
			if lateBy > lateGrace {
				rec.Status = attendance.StatusLate
				mins := int(math.Floor(lateBy.Minutes()))
				rec.LateMinutes = &mins
			} else {
				rec.Status = attendance.StatusPresent
			}

			if err := s.attendanceRepo.Update(ctx, rec); err != nil {
				return fmt.Errorf("failed to record check-in: %w", err)
			}

			resp.Action = attendance.ActionCheckIn
			resp.Status = rec.Status
			resp.TimeIn = attendance.FormatInstant(rec.TimeIn, s.loc)
			resp.LateMinutes = rec.LateMinutes

		case rec.TimeOut == nil:
			// Check-out never revises the late/present classification.
			rec.TimeOut = &nowUTC

			if err := s.attendanceRepo.Update(ctx, rec); err != nil {
				return fmt.Errorf("failed to record check-out: %w", err)
			}

			resp.Action = attendance.ActionCheckOut
			resp.Status = rec.Status
			resp.TimeIn = attendance.FormatInstant(rec.TimeIn, s.loc)
			resp.TimeOut = attendance.FormatInstant(rec.TimeOut, s.loc)

		default:
			return attendance.ErrAlreadyCheckedOut
		}

		return nil
	})
	if err != nil {
		return attendance.ScanResponse{}, err
	}

	return resp, nil
}

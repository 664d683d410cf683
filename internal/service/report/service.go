package report

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/scanpoint/attendance-backend-go/internal/domain/attendance"
	"github.com/scanpoint/attendance-backend-go/internal/domain/schedule"
)

// ReportServiceImpl derives display durations from resolved ledger rows.
// Durations are never persisted; they are recomputed on every read so a
// corrected record always reports consistently.
type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	scheduleRepo   schedule.ScheduleRepository
	loc            *time.Location
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	scheduleRepo schedule.ScheduleRepository,
	loc *time.Location,
) attendance.Service {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		scheduleRepo:   scheduleRepo,
		loc:            loc,
	}
}

// ComputeDuration derives total worked hours and overtime for a ledger row
// against the day's schedule. Returns nil when either scan time is missing
// (the day is incomplete and renders as "-"). A time_out before time_in is
// a data-integrity fault and surfaces as ErrNegativeDuration, never as a
// negative figure.
func ComputeDuration(att attendance.Attendance, sched *schedule.Schedule, loc *time.Location) (*attendance.DerivedDuration, error) {
	if att.TimeIn == nil || att.TimeOut == nil {
		return nil, nil
	}

	raw := att.TimeOut.Sub(*att.TimeIn)
	if raw < 0 {
		return nil, attendance.ErrNegativeDuration
	}

	total := raw.Hours()
	if sched != nil && sched.HasBreak() {
		total -= sched.BreakHours
		if total < 0 {
			total = 0
		}
	}

	var overtime float64
	if sched != nil {
		scheduledEnd := sched.EndAt(att.Date, loc)
		if past := att.TimeOut.Sub(scheduledEnd); past > 0 {
			overtime = past.Hours()
		}
	}

	return &attendance.DerivedDuration{
		TotalHours:    round2(total),
		OvertimeHours: round2(overtime),
		IsOvertime:    overtime > 0,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Get implements attendance.Service.
func (s *ReportServiceImpl) Get(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	att, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return s.toResponse(ctx, att), nil
}

// List implements attendance.Service.
func (s *ReportServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	filter.Normalize()

	attendances, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, s.toResponse(ctx, att))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages,
		Attendances: responses,
	}, nil
}

// DailyReport implements attendance.Service.
func (s *ReportServiceImpl) DailyReport(ctx context.Context, date time.Time) ([]attendance.AttendanceResponse, error) {
	attendances, err := s.attendanceRepo.ListByDate(ctx, attendance.ServiceDate(date, s.loc))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances for date: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, s.toResponse(ctx, att))
	}

	return responses, nil
}

// Update implements attendance.Service. Admin data-correction path: times
// are reinterpreted as time-of-day on the record's date in the configured
// timezone.
func (s *ReportServiceImpl) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	if req.TimeIn != nil {
		in, err := s.instantOnDate(att.Date, *req.TimeIn)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		att.TimeIn = &in
	}

	if req.TimeOut != nil {
		out, err := s.instantOnDate(att.Date, *req.TimeOut)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		att.TimeOut = &out
	}

	if req.Status != nil {
		att.Status = *req.Status
	}

	if req.Notes != nil {
		att.Notes = req.Notes
	}

	if err := s.attendanceRepo.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	updated, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get updated attendance: %w", err)
	}

	return s.toResponse(ctx, updated), nil
}

// instantOnDate combines a time-of-day string with the record's service
// date in the configured timezone, stored back as UTC.
func (s *ReportServiceImpl) instantOnDate(date time.Time, timeOfDay string) (time.Time, error) {
	tod, err := schedule.ParseTimeOfDay(timeOfDay)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time of day %q: %w", timeOfDay, err)
	}
	local := time.Date(
		date.Year(), date.Month(), date.Day(),
		tod.Hour(), tod.Minute(), tod.Second(), 0,
		s.loc,
	)
	return local.UTC(), nil
}

func (s *ReportServiceImpl) toResponse(ctx context.Context, att attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:          att.ID,
		UserID:      att.UserID,
		Date:        att.Date.Format("2006-01-02"),
		TimeIn:      attendance.FormatInstant(att.TimeIn, s.loc),
		TimeOut:     attendance.FormatInstant(att.TimeOut, s.loc),
		Status:      att.Status,
		LateMinutes: att.LateMinutes,
		Notes:       att.Notes,
	}
	if att.UserName != nil {
		resp.UserName = *att.UserName
	}

	sched, err := s.scheduleRepo.GetByUserAndDay(ctx, att.UserID, int(att.Date.Weekday()))
	if err != nil {
		warning := "schedule lookup failed; durations unavailable"
		resp.Warning = &warning
		return resp
	}

	duration, err := ComputeDuration(att, sched, s.loc)
	if err != nil {
		// Data-integrity fault: surfaced, never coerced to zero or hidden.
		warning := err.Error()
		resp.Warning = &warning
		return resp
	}

	if duration != nil {
		resp.TotalHours = &duration.TotalHours
		resp.Overtime = &duration.OvertimeHours
		resp.IsOvertime = duration.IsOvertime
	}

	return resp
}

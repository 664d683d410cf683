package attendance

import (
	"time"

	"github.com/scanpoint/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// SCAN DTOs
// ========================================

const (
	ActionCheckIn  = "check_in"
	ActionCheckOut = "check_out"
)

type ScanRequest struct {
	Token string `json:"token"`
}

func (r *ScanRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Token) {
		errs = append(errs, validator.ValidationError{
			Field:   "token",
			Message: "token is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ScanResponse struct {
	Action      string  `json:"action"` // check_in or check_out
	UserID      string  `json:"user_id"`
	UserName    string  `json:"user_name"`
	Status      string  `json:"status"`
	Date        string  `json:"date"`
	TimeIn      *string `json:"time_in,omitempty"`
	TimeOut     *string `json:"time_out,omitempty"`
	LateMinutes *int    `json:"late_minutes,omitempty"`
}

// ========================================
// REPORTING DTOs
// ========================================

type AttendanceFilter struct {
	UserID   string
	Status   string
	DateFrom *time.Time
	DateTo   *time.Time
	Page     int
	Limit    int
}

func (f *AttendanceFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

type AttendanceResponse struct {
	ID          string   `json:"id"`
	UserID      string   `json:"user_id"`
	UserName    string   `json:"user_name,omitempty"`
	Date        string   `json:"date"`
	TimeIn      *string  `json:"time_in"`
	TimeOut     *string  `json:"time_out"`
	Status      string   `json:"status"`
	LateMinutes *int     `json:"late_minutes,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
	TotalHours  *float64 `json:"total_hours"`    // nil renders as "-"
	Overtime    *float64 `json:"overtime_hours"` // nil when no schedule or incomplete
	IsOvertime  bool     `json:"is_overtime"`
	Warning     *string  `json:"warning,omitempty"` // data-integrity warnings, e.g. negative duration
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Attendances []AttendanceResponse `json:"attendances"`
}

type UpdateAttendanceRequest struct {
	ID      string  `json:"-"`
	TimeIn  *string `json:"time_in,omitempty"`  // "HH:MM" or "HH:MM:SS", on the record's date
	TimeOut *string `json:"time_out,omitempty"` // "HH:MM" or "HH:MM:SS", on the record's date
	Status  *string `json:"status,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.TimeIn != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.TimeIn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "time_in",
				Message: "time_in must be in HH:MM format",
			})
		}
	}

	if r.TimeOut != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.TimeOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "time_out",
				Message: "time_out must be in HH:MM format",
			})
		}
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, late, absent, no_time_out, unscheduled",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// RECONCILIATION DTOs
// ========================================

// ReconcileItemError records a single user's failure during the sweep.
// The sweep continues past failures; the collection is the caller's
// window into what went wrong.
type ReconcileItemError struct {
	UserID string `json:"user_id"`
	Reason string `json:"reason"`
}

type ReconcileSummary struct {
	Date          string               `json:"date"`
	Scheduled     int                  `json:"scheduled"`
	MarkedAbsent  int                  `json:"marked_absent"`
	MarkedNoOut   int                  `json:"marked_no_time_out"`
	AutoCheckouts int                  `json:"auto_checkouts"`
	Skipped       int                  `json:"skipped"`
	Errors        []ReconcileItemError `json:"errors,omitempty"`
}

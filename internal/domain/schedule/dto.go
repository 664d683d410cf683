package schedule

import (
	"time"

	"github.com/scanpoint/attendance-backend-go/internal/pkg/validator"
)

type CreateScheduleRequest struct {
	UserID     string  `json:"user_id"`
	DayOfWeek  int     `json:"day_of_week"`
	StartTime  string  `json:"start_time"` // "HH:MM"
	EndTime    string  `json:"end_time"`   // "HH:MM"
	BreakStart *string `json:"break_start,omitempty"`
	BreakHours float64 `json:"break_hours,omitempty"`
}

func (r *CreateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if !validator.IsValidDayOfWeek(r.DayOfWeek) {
		errs = append(errs, validator.ValidationError{
			Field:   "day_of_week",
			Message: "day_of_week must be between 0 (Sunday) and 6 (Saturday)",
		})
	}

	if _, ok := validator.IsValidTimeOfDay(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}

	if _, ok := validator.IsValidTimeOfDay(r.EndTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if r.BreakStart != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.BreakStart); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "break_start",
				Message: "break_start must be in HH:MM format",
			})
		}
		if r.BreakHours <= 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "break_hours",
				Message: "break_hours must be positive when break_start is set",
			})
		}
	}

	if r.BreakHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_hours",
			Message: "break_hours must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateScheduleRequest struct {
	ID         string   `json:"-"`
	StartTime  *string  `json:"start_time,omitempty"`
	EndTime    *string  `json:"end_time,omitempty"`
	BreakStart *string  `json:"break_start,omitempty"`
	BreakHours *float64 `json:"break_hours,omitempty"`
}

func (r *UpdateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.StartTime != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.StartTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time must be in HH:MM format",
			})
		}
	}

	if r.EndTime != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.EndTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be in HH:MM format",
			})
		}
	}

	if r.BreakStart != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.BreakStart); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "break_start",
				Message: "break_start must be in HH:MM format",
			})
		}
	}

	if r.BreakHours != nil && *r.BreakHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_hours",
			Message: "break_hours must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ScheduleResponse struct {
	ID         string  `json:"id"`
	UserID     string  `json:"user_id"`
	UserName   *string `json:"user_name,omitempty"`
	DayOfWeek  int     `json:"day_of_week"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	BreakStart *string `json:"break_start,omitempty"`
	BreakHours float64 `json:"break_hours"`
	Overnight  bool    `json:"overnight"`
}

// ToResponse converts a Schedule entity to its API form.
func ToResponse(s Schedule) ScheduleResponse {
	var breakStart *string
	if s.BreakStart != nil {
		v := s.BreakStart.Format("15:04")
		breakStart = &v
	}

	return ScheduleResponse{
		ID:         s.ID,
		UserID:     s.UserID,
		UserName:   s.UserName,
		DayOfWeek:  s.DayOfWeek,
		StartTime:  s.StartTime.Format("15:04"),
		EndTime:    s.EndTime.Format("15:04"),
		BreakStart: breakStart,
		BreakHours: s.BreakHours,
		Overnight:  s.IsOvernight(),
	}
}

// ParseTimeOfDay parses "HH:MM" (or "HH:MM:SS") into a time-of-day value.
func ParseTimeOfDay(s string) (time.Time, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return time.Parse("15:04:05", s)
	}
	return t, nil
}

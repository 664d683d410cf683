package response

import (
	"errors"
	"net/http"

	"github.com/scanpoint/attendance-backend-go/internal/domain/attendance"
	"github.com/scanpoint/attendance-backend-go/internal/domain/auth"
	"github.com/scanpoint/attendance-backend-go/internal/domain/holiday"
	"github.com/scanpoint/attendance-backend-go/internal/domain/schedule"
	"github.com/scanpoint/attendance-backend-go/internal/domain/user"
	"github.com/scanpoint/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Scan / attendance domain errors
	case errors.Is(err, attendance.ErrInvalidToken):
		NotFound(w, "Invalid QR Code")
	case errors.Is(err, attendance.ErrNoScheduleToday):
		Conflict(w, "No Schedule for Today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already Checked Out")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)
	case errors.Is(err, attendance.ErrNegativeDuration):
		BadRequest(w, "Correction would produce a negative duration", nil)

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Schedule not found")
	case errors.Is(err, schedule.ErrScheduleDayConflict):
		Conflict(w, "A schedule already exists for this day")
	case errors.Is(err, schedule.ErrScheduleUserNotFound):
		NotFound(w, "User not found")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrInvalidType):
		BadRequest(w, "Invalid holiday type", nil)

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User is inactive")

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrNotConsoleUser):
		Forbidden(w, "User has no console access")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

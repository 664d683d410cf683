package attendance

import "errors"

// Attendance domain errors
var (
	// Scan errors
	ErrInvalidToken      = errors.New("invalid qr code")
	ErrNoScheduleToday   = errors.New("no schedule for today")
	ErrAlreadyCheckedOut = errors.New("already checked out")

	// Reporting errors
	ErrNegativeDuration = errors.New("time out precedes time in")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrInvalidStatus      = errors.New("invalid attendance status")
)

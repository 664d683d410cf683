package schedule

import "errors"

// Schedule domain errors
var (
	ErrScheduleNotFound     = errors.New("schedule not found")
	ErrScheduleDayConflict  = errors.New("a schedule already exists for this day")
	ErrScheduleUserNotFound = errors.New("user for schedule not found")
)

package report

import (
	"testing"
	"time"

	"github.com/scanpoint/attendance-backend-go/internal/domain/attendance"
	"github.com/scanpoint/attendance-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timeOfDay(t *testing.T, s string) time.Time {
	tod, err := schedule.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func instant(loc *time.Location, y int, m time.Month, d, hh, mm int) *time.Time {
	v := time.Date(y, m, d, hh, mm, 0, 0, loc).UTC()
	return &v
}

func TestComputeDuration_OvertimeScenario(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	// Scheduled 09:00-17:00, no break. In at 09:10, out at 17:30.
	sched := &schedule.Schedule{
		StartTime: timeOfDay(t, "09:00"),
		EndTime:   timeOfDay(t, "17:00"),
	}
	att := attendance.Attendance{
		Date:    time.Date(2024, 3, 4, 0, 0, 0, 0, loc),
		TimeIn:  instant(loc, 2024, 3, 4, 9, 10),
		TimeOut: instant(loc, 2024, 3, 4, 17, 30),
		Status:  attendance.StatusPresent,
	}

	d, err := ComputeDuration(att, sched, loc)
	require.NoError(t, err)
	require.NotNil(t, d)

	assert.InDelta(t, 8.33, d.TotalHours, 0.001)
	assert.InDelta(t, 0.5, d.OvertimeHours, 0.001)
	assert.True(t, d.IsOvertime)
}

func TestComputeDuration_NoOvertime(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	sched := &schedule.Schedule{
		StartTime: timeOfDay(t, "09:00"),
		EndTime:   timeOfDay(t, "17:00"),
	}
	att := attendance.Attendance{
		Date:    time.Date(2024, 3, 4, 0, 0, 0, 0, loc),
		TimeIn:  instant(loc, 2024, 3, 4, 9, 0),
		TimeOut: instant(loc, 2024, 3, 4, 16, 30),
	}

	d, err := ComputeDuration(att, sched, loc)
	require.NoError(t, err)
	require.NotNil(t, d)

	assert.InDelta(t, 7.5, d.TotalHours, 0.001)
	assert.Zero(t, d.OvertimeHours)
	assert.False(t, d.IsOvertime)
}

func TestComputeDuration_BreakDeducted(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	breakStart := timeOfDay(t, "12:00")
	sched := &schedule.Schedule{
		StartTime:  timeOfDay(t, "09:00"),
		EndTime:    timeOfDay(t, "17:00"),
		BreakStart: &breakStart,
		BreakHours: 1,
	}
	att := attendance.Attendance{
		Date:    time.Date(2024, 3, 4, 0, 0, 0, 0, loc),
		TimeIn:  instant(loc, 2024, 3, 4, 9, 0),
		TimeOut: instant(loc, 2024, 3, 4, 17, 0),
	}

	d, err := ComputeDuration(att, sched, loc)
	require.NoError(t, err)
	require.NotNil(t, d)

	assert.InDelta(t, 7.0, d.TotalHours, 0.001)
}

func TestComputeDuration_IncompleteDay(t *testing.T) {
	loc := time.UTC

	att := attendance.Attendance{
		Date:   time.Date(2024, 3, 4, 0, 0, 0, 0, loc),
		TimeIn: instant(loc, 2024, 3, 4, 9, 0),
	}

	d, err := ComputeDuration(att, nil, loc)
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestComputeDuration_NegativeDuration(t *testing.T) {
	loc := time.UTC

	att := attendance.Attendance{
		Date:    time.Date(2024, 3, 4, 0, 0, 0, 0, loc),
		TimeIn:  instant(loc, 2024, 3, 4, 17, 0),
		TimeOut: instant(loc, 2024, 3, 4, 9, 0),
	}

	d, err := ComputeDuration(att, nil, loc)
	assert.ErrorIs(t, err, attendance.ErrNegativeDuration)
	assert.Nil(t, d)
}

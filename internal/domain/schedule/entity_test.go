package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTimeOfDay(t *testing.T, s string) time.Time {
	tod, err := ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func TestSchedule_EndAt_SameDay(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	sched := Schedule{
		StartTime: mustTimeOfDay(t, "09:00"),
		EndTime:   mustTimeOfDay(t, "17:00"),
	}

	date := time.Date(2024, 3, 4, 0, 0, 0, 0, loc)

	start := sched.StartAt(date, loc)
	end := sched.EndAt(date, loc)

	assert.Equal(t, time.Date(2024, 3, 4, 9, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2024, 3, 4, 17, 0, 0, 0, loc), end)
	assert.False(t, sched.IsOvernight())
}

func TestSchedule_EndAt_Overnight(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	sched := Schedule{
		StartTime: mustTimeOfDay(t, "22:00"),
		EndTime:   mustTimeOfDay(t, "06:00"),
	}

	date := time.Date(2024, 3, 4, 0, 0, 0, 0, loc)

	end := sched.EndAt(date, loc)

	// End lands on the following calendar day, not earlier the same day.
	assert.Equal(t, time.Date(2024, 3, 5, 6, 0, 0, 0, loc), end)
	assert.True(t, end.After(sched.StartAt(date, loc)))
	assert.True(t, sched.IsOvernight())
}

func TestSchedule_HasBreak(t *testing.T) {
	breakStart := mustTimeOfDay(t, "12:00")

	withBreak := Schedule{BreakStart: &breakStart, BreakHours: 1}
	assert.True(t, withBreak.HasBreak())

	noBreak := Schedule{}
	assert.False(t, noBreak.HasBreak())

	zeroHours := Schedule{BreakStart: &breakStart}
	assert.False(t, zeroHours.HasBreak())
}

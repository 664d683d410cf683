package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/scanpoint/attendance-backend-go/internal/domain/attendance"
	"github.com/scanpoint/attendance-backend-go/internal/domain/holiday"
	"github.com/scanpoint/attendance-backend-go/internal/domain/notification"
	"github.com/scanpoint/attendance-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== IN-MEMORY FAKES =====

type fakeScheduleRepo struct {
	byDay map[int][]schedule.Schedule
}

func (f *fakeScheduleRepo) ListByDay(_ context.Context, day int) ([]schedule.Schedule, error) {
	return f.byDay[day], nil
}

func (f *fakeScheduleRepo) Create(context.Context, schedule.Schedule) (schedule.Schedule, error) {
	panic("unused")
}
func (f *fakeScheduleRepo) GetByID(context.Context, string) (schedule.Schedule, error) {
	panic("unused")
}
func (f *fakeScheduleRepo) GetByUserAndDay(context.Context, string, int) (*schedule.Schedule, error) {
	panic("unused")
}
func (f *fakeScheduleRepo) ListByUser(context.Context, string) ([]schedule.Schedule, error) {
	panic("unused")
}
func (f *fakeScheduleRepo) Update(context.Context, schedule.Schedule) error { panic("unused") }
func (f *fakeScheduleRepo) Delete(context.Context, string) error            { panic("unused") }

type fakeHolidayRepo struct {
	holidays []holiday.Holiday
}

func (f *fakeHolidayRepo) IsHoliday(_ context.Context, date time.Time) (bool, error) {
	for _, h := range f.holidays {
		if h.Matches(date) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeHolidayRepo) Create(context.Context, holiday.Holiday) (holiday.Holiday, error) {
	panic("unused")
}
func (f *fakeHolidayRepo) GetByID(context.Context, string) (holiday.Holiday, error) {
	panic("unused")
}
func (f *fakeHolidayRepo) List(context.Context) ([]holiday.Holiday, error) { panic("unused") }
func (f *fakeHolidayRepo) Update(context.Context, holiday.Holiday) error   { panic("unused") }
func (f *fakeHolidayRepo) Delete(context.Context, string) error            { panic("unused") }

type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance // userID|date
}

func recordKey(userID string, date time.Time) string {
	return userID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) GetByUserAndDate(_ context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	if rec, ok := f.records[recordKey(userID, date)]; ok {
		return &rec, nil
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) Create(context.Context, attendance.Attendance) (attendance.Attendance, error) {
	panic("unused")
}
func (f *fakeAttendanceRepo) Update(context.Context, attendance.Attendance) error { panic("unused") }
func (f *fakeAttendanceRepo) GetOrCreateForDate(context.Context, string, time.Time) (attendance.Attendance, error) {
	panic("unused")
}
func (f *fakeAttendanceRepo) GetByID(context.Context, string) (attendance.Attendance, error) {
	panic("unused")
}
func (f *fakeAttendanceRepo) List(context.Context, attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	panic("unused")
}
func (f *fakeAttendanceRepo) ListByDate(context.Context, time.Time) ([]attendance.Attendance, error) {
	panic("unused")
}

type captureDispatcher struct {
	sent []notification.ReminderType
}

func (d *captureDispatcher) Notify(_ context.Context, _ string, reminder notification.ReminderType, _ time.Time) error {
	d.sent = append(d.sent, reminder)
	return nil
}

// ===== HELPERS =====

func nightSchedule(t *testing.T, userID string, dayOfWeek int) schedule.Schedule {
	t.Helper()
	st, err := schedule.ParseTimeOfDay("22:00")
	require.NoError(t, err)
	en, err := schedule.ParseTimeOfDay("06:00")
	require.NoError(t, err)
	return schedule.Schedule{UserID: userID, DayOfWeek: dayOfWeek, StartTime: st, EndTime: en}
}

func newSweepService(schedules *fakeScheduleRepo, attendances *fakeAttendanceRepo, dispatcher *captureDispatcher, now time.Time) *Service {
	return &Service{
		scheduleRepo:   schedules,
		attendanceRepo: attendances,
		holidayRepo:    &fakeHolidayRepo{},
		dispatcher:     dispatcher,
		loc:            jakarta,
		now:            func() time.Time { return now },
	}
}

// ===== TESTS =====

func TestSweep_OvernightTail(t *testing.T) {
	// u1 works Monday 22:00-06:00, checked in Monday night, still out
	// Tuesday morning. The sweep must pick the Monday shift up from
	// Tuesday's run and remind against Monday's service date.
	schedules := &fakeScheduleRepo{byDay: map[int][]schedule.Schedule{
		1: {nightSchedule(t, "u1", 1)},
	}}
	timeIn := at(22, 5).UTC()
	attendances := &fakeAttendanceRepo{records: map[string]attendance.Attendance{
		recordKey("u1", monday): {
			ID:     "a1",
			UserID: "u1",
			Date:   monday,
			TimeIn: &timeIn,
			Status: attendance.StatusPresent,
		},
	}}

	t.Run("checkout window fires on the next morning", func(t *testing.T) {
		dispatcher := &captureDispatcher{}
		svc := newSweepService(schedules, attendances, dispatcher, nextDayAt(5, 50))

		require.NoError(t, svc.Sweep(context.Background()))
		assert.Equal(t, []notification.ReminderType{notification.ReminderCheckOut}, dispatcher.sent)
	})

	t.Run("missed checkout fires an hour past the end", func(t *testing.T) {
		dispatcher := &captureDispatcher{}
		svc := newSweepService(schedules, attendances, dispatcher, nextDayAt(7, 5))

		require.NoError(t, svc.Sweep(context.Background()))
		assert.Equal(t, []notification.ReminderType{notification.ReminderMissedCheckOut}, dispatcher.sent)
	})
}

func TestSweep_PreviousDayPassSkipsDayShifts(t *testing.T) {
	// A regular Monday day shift must not leak into Tuesday's sweep even
	// when its ledger row is still open.
	st, err := schedule.ParseTimeOfDay("09:00")
	require.NoError(t, err)
	en, err := schedule.ParseTimeOfDay("17:00")
	require.NoError(t, err)
	schedules := &fakeScheduleRepo{byDay: map[int][]schedule.Schedule{
		1: {{UserID: "u1", DayOfWeek: 1, StartTime: st, EndTime: en}},
	}}
	timeIn := at(9, 0).UTC()
	attendances := &fakeAttendanceRepo{records: map[string]attendance.Attendance{
		recordKey("u1", monday): {
			ID:     "a1",
			UserID: "u1",
			Date:   monday,
			TimeIn: &timeIn,
			Status: attendance.StatusNoTimeOut,
		},
	}}

	dispatcher := &captureDispatcher{}
	svc := newSweepService(schedules, attendances, dispatcher, nextDayAt(5, 50))

	require.NoError(t, svc.Sweep(context.Background()))
	assert.Empty(t, dispatcher.sent)
}

func TestSweep_TodayAndTailTogether(t *testing.T) {
	// Tuesday 07:05: u1 never closed Monday's night shift, u2 is about
	// to start a Tuesday day shift. Both reminders go out in one sweep.
	st, err := schedule.ParseTimeOfDay("07:15")
	require.NoError(t, err)
	en, err := schedule.ParseTimeOfDay("15:15")
	require.NoError(t, err)
	schedules := &fakeScheduleRepo{byDay: map[int][]schedule.Schedule{
		1: {nightSchedule(t, "u1", 1)},
		2: {{UserID: "u2", DayOfWeek: 2, StartTime: st, EndTime: en}},
	}}
	timeIn := at(22, 5).UTC()
	attendances := &fakeAttendanceRepo{records: map[string]attendance.Attendance{
		recordKey("u1", monday): {
			ID:     "a1",
			UserID: "u1",
			Date:   monday,
			TimeIn: &timeIn,
			Status: attendance.StatusPresent,
		},
	}}

	dispatcher := &captureDispatcher{}
	svc := newSweepService(schedules, attendances, dispatcher, nextDayAt(7, 5))

	require.NoError(t, svc.Sweep(context.Background()))
	assert.ElementsMatch(t,
		[]notification.ReminderType{notification.ReminderCheckIn, notification.ReminderMissedCheckOut},
		dispatcher.sent)
}

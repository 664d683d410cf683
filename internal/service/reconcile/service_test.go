package reconcile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/scanpoint/attendance-backend-go/internal/domain/attendance"
	"github.com/scanpoint/attendance-backend-go/internal/domain/holiday"
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
	failFor map[string]error                 // userID → forced error
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{
		records: make(map[string]attendance.Attendance),
		failFor: make(map[string]error),
	}
}

func recordKey(userID string, date time.Time) string {
	return userID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) GetByUserAndDate(_ context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	if err, ok := f.failFor[userID]; ok {
		return nil, err
	}
	if rec, ok := f.records[recordKey(userID, date)]; ok {
		return &rec, nil
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	att.ID = recordKey(att.UserID, att.Date)
	f.records[att.ID] = att
	return att, nil
}

func (f *fakeAttendanceRepo) Update(_ context.Context, att attendance.Attendance) error {
	f.records[att.ID] = att
	return nil
}

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

// ===== TEST SETUP =====

var jakarta *time.Location

func init() {
	var err error
	jakarta, err = time.LoadLocation("Asia/Jakarta")
	if err != nil {
		panic(err)
	}
}

// March 4 2024 is a Monday.
var monday = time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

func mondaySchedule(t *testing.T, userID string) schedule.Schedule {
	start, err := schedule.ParseTimeOfDay("09:00")
	require.NoError(t, err)
	end, err := schedule.ParseTimeOfDay("17:00")
	require.NoError(t, err)
	return schedule.Schedule{ID: "s-" + userID, UserID: userID, DayOfWeek: 1, StartTime: start, EndTime: end}
}

func newService(t *testing.T, now time.Time, scheds []schedule.Schedule, holidays []holiday.Holiday) (*ReconcileServiceImpl, *fakeAttendanceRepo) {
	byDay := make(map[int][]schedule.Schedule)
	for _, s := range scheds {
		byDay[s.DayOfWeek] = append(byDay[s.DayOfWeek], s)
	}
	attRepo := newFakeAttendanceRepo()
	svc := &ReconcileServiceImpl{
		scheduleRepo:   &fakeScheduleRepo{byDay: byDay},
		attendanceRepo: attRepo,
		holidayRepo:    &fakeHolidayRepo{holidays: holidays},
		loc:            jakarta,
		now:            func() time.Time { return now },
	}
	return svc, attRepo
}

func localInstant(hh, mm int) *time.Time {
	v := time.Date(2024, 3, 4, hh, mm, 0, 0, jakarta).UTC()
	return &v
}

// ===== RECONCILE SERVICE TESTS =====

func TestReconcile_MarksAbsentWhenNeverScanned(t *testing.T) {
	now := time.Date(2024, 3, 4, 23, 59, 0, 0, jakarta)
	svc, repo := newService(t, now, []schedule.Schedule{mondaySchedule(t, "u1")}, nil)

	summary, err := svc.Reconcile(context.Background(), monday)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Scheduled)
	assert.Equal(t, 1, summary.MarkedAbsent)
	assert.Empty(t, summary.Errors)

	rec, err := repo.GetByUserAndDate(context.Background(), "u1", attendance.ServiceDate(now, jakarta))
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, attendance.StatusAbsent, rec.Status)
	assert.Nil(t, rec.TimeIn)
	assert.Nil(t, rec.TimeOut)
}

func TestReconcile_AutoChecksOutAfterExtension(t *testing.T) {
	// Checked in at 09:00, never out. Scheduled end 17:00, extension 18:00.
	// Run at 18:30: past the extension, checkout is auto-filled at 18:00.
	now := time.Date(2024, 3, 4, 18, 30, 0, 0, jakarta)
	svc, repo := newService(t, now, []schedule.Schedule{mondaySchedule(t, "u1")}, nil)

	date := attendance.ServiceDate(now, jakarta)
	_, err := repo.Create(context.Background(), attendance.Attendance{
		UserID: "u1",
		Date:   date,
		TimeIn: localInstant(9, 0),
		Status: attendance.StatusPresent,
	})
	require.NoError(t, err)

	summary, err := svc.Reconcile(context.Background(), monday)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.MarkedNoOut)
	assert.Equal(t, 1, summary.AutoCheckouts)

	rec, err := repo.GetByUserAndDate(context.Background(), "u1", date)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, attendance.StatusNoTimeOut, rec.Status)
	require.NotNil(t, rec.TimeOut)
	assert.Equal(t, localInstant(18, 0).Unix(), rec.TimeOut.Unix())
}

func TestReconcile_DefersCheckoutBeforeExtension(t *testing.T) {
	// Run at 17:30: before the 18:00 extension instant. Status escalates
	// but time_out stays open for a later sweep.
	now := time.Date(2024, 3, 4, 17, 30, 0, 0, jakarta)
	svc, repo := newService(t, now, []schedule.Schedule{mondaySchedule(t, "u1")}, nil)

	date := attendance.ServiceDate(now, jakarta)
	_, err := repo.Create(context.Background(), attendance.Attendance{
		UserID: "u1",
		Date:   date,
		TimeIn: localInstant(9, 0),
		Status: attendance.StatusPresent,
	})
	require.NoError(t, err)

	summary, err := svc.Reconcile(context.Background(), monday)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.MarkedNoOut)
	assert.Equal(t, 0, summary.AutoCheckouts)

	rec, err := repo.GetByUserAndDate(context.Background(), "u1", date)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, attendance.StatusNoTimeOut, rec.Status)
	assert.Nil(t, rec.TimeOut)
}

func TestReconcile_Idempotent(t *testing.T) {
	now := time.Date(2024, 3, 4, 23, 0, 0, 0, jakarta)
	svc, repo := newService(t, now, []schedule.Schedule{
		mondaySchedule(t, "u1"),
		mondaySchedule(t, "u2"),
	}, nil)

	date := attendance.ServiceDate(now, jakarta)
	// u2 checked in at 09:00 and forgot to check out; u1 never scanned.
	_, err := repo.Create(context.Background(), attendance.Attendance{
		UserID: "u2",
		Date:   date,
		TimeIn: localInstant(9, 0),
		Status: attendance.StatusPresent,
	})
	require.NoError(t, err)

	_, err = svc.Reconcile(context.Background(), monday)
	require.NoError(t, err)

	after1 := make(map[string]attendance.Attendance, len(repo.records))
	for k, v := range repo.records {
		after1[k] = v
	}

	summary2, err := svc.Reconcile(context.Background(), monday)
	require.NoError(t, err)

	// Second run changes nothing already finalized.
	assert.Equal(t, after1, repo.records)
	assert.Equal(t, 0, summary2.MarkedAbsent)
	assert.Equal(t, 0, summary2.AutoCheckouts)
}

func TestReconcile_SkipsCompleteRecords(t *testing.T) {
	now := time.Date(2024, 3, 4, 23, 0, 0, 0, jakarta)
	svc, repo := newService(t, now, []schedule.Schedule{mondaySchedule(t, "u1")}, nil)

	date := attendance.ServiceDate(now, jakarta)
	_, err := repo.Create(context.Background(), attendance.Attendance{
		UserID:  "u1",
		Date:    date,
		TimeIn:  localInstant(9, 0),
		TimeOut: localInstant(17, 5),
		Status:  attendance.StatusPresent,
	})
	require.NoError(t, err)

	summary, err := svc.Reconcile(context.Background(), monday)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 0, summary.MarkedAbsent)
	assert.Equal(t, 0, summary.MarkedNoOut)

	rec, err := repo.GetByUserAndDate(context.Background(), "u1", date)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, rec.Status)
}

func TestReconcile_HolidaySuppressesAbsence(t *testing.T) {
	now := time.Date(2024, 3, 4, 23, 0, 0, 0, jakarta)
	svc, repo := newService(t, now,
		[]schedule.Schedule{mondaySchedule(t, "u1"), mondaySchedule(t, "u2")},
		[]holiday.Holiday{{Name: "Company Day", Date: monday, IsRecurring: false}},
	)

	date := attendance.ServiceDate(now, jakarta)
	// u2 worked the holiday and forgot to check out.
	_, err := repo.Create(context.Background(), attendance.Attendance{
		UserID: "u2",
		Date:   date,
		TimeIn: localInstant(9, 0),
		Status: attendance.StatusPresent,
	})
	require.NoError(t, err)

	summary, err := svc.Reconcile(context.Background(), monday)
	require.NoError(t, err)

	// u1 is not marked absent on a holiday.
	assert.Equal(t, 0, summary.MarkedAbsent)
	rec, err := repo.GetByUserAndDate(context.Background(), "u1", date)
	require.NoError(t, err)
	assert.Nil(t, rec)

	// u2's forgotten checkout is still closed.
	rec, err = repo.GetByUserAndDate(context.Background(), "u2", date)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, attendance.StatusNoTimeOut, rec.Status)
	assert.NotNil(t, rec.TimeOut)
}

func TestReconcile_PartialFailureContinues(t *testing.T) {
	now := time.Date(2024, 3, 4, 23, 0, 0, 0, jakarta)
	svc, repo := newService(t, now, []schedule.Schedule{
		mondaySchedule(t, "u1"),
		mondaySchedule(t, "u2"),
	}, nil)
	repo.failFor["u1"] = errors.New("connection reset")

	summary, err := svc.Reconcile(context.Background(), monday)
	require.NoError(t, err)

	// The failure is collected, not swallowed, and u2 still got swept.
	require.Len(t, summary.Errors, 1)
	assert.Equal(t, "u1", summary.Errors[0].UserID)
	assert.Contains(t, summary.Errors[0].Reason, "connection reset")

	rec, err := repo.GetByUserAndDate(context.Background(), "u2", attendance.ServiceDate(now, jakarta))
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, attendance.StatusAbsent, rec.Status)
}

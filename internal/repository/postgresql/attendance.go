package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/scanpoint/attendance-backend-go/internal/domain/attendance"
	"github.com/scanpoint/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.UserID, &att.Date, &att.TimeIn, &att.TimeOut,
		&att.Status, &att.LateMinutes, &att.Notes, &att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (user_id, date, time_in, time_out, status, late_minutes, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.UserID, att.Date, att.TimeIn, att.TimeOut, att.Status, att.LateMinutes, att.Notes,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetOrCreateForDate implements attendance.AttendanceRepository. Must run
// inside a transaction: the insert races are settled by the unique
// (user_id, date) constraint and the row lock holds until commit, so two
// concurrent scans for the same user and day serialize here.
func (r *attendanceRepository) GetOrCreateForDate(ctx context.Context, userID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	insert := `
		INSERT INTO attendances (user_id, date, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, date) DO NOTHING
	`
	if _, err := q.Exec(ctx, insert, userID, date, attendance.StatusPresent); err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to ensure attendance row: %w", err)
	}

	query := `
		SELECT id, user_id, date, time_in, time_out, status, late_minutes, notes, created_at, updated_at
		FROM attendances
		WHERE user_id = $1 AND date = $2
		FOR UPDATE
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to lock attendance row: %w", err)
	}
	return att, nil
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, time_in, time_out, status, late_minutes, notes, created_at, updated_at
		FROM attendances
		WHERE user_id = $1 AND date = $2
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by user and date: %w", err)
	}
	return &att, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.user_id, a.date, a.time_in, a.time_out, a.status, a.late_minutes, a.notes,
		       a.created_at, a.updated_at, u.full_name
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		WHERE a.id = $1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, id).Scan(
		&att.ID, &att.UserID, &att.Date, &att.TimeIn, &att.TimeOut,
		&att.Status, &att.LateMinutes, &att.Notes, &att.CreatedAt, &att.UpdatedAt,
		&att.UserName,
	)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return att, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET time_in = $2, time_out = $3, status = $4, late_minutes = $5, notes = $6, updated_at = now()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, att.ID, att.TimeIn, att.TimeOut, att.Status, att.LateMinutes, att.Notes)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("attendance %s not found", att.ID)
	}
	return nil
}

// List implements attendance.AttendanceRepository. Filters are ANDed;
// pagination is offset-based on the normalized page and limit.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	argIdx := 1

	addCondition := func(cond string, value interface{}) {
		conditions = append(conditions, fmt.Sprintf(cond, argIdx))
		args = append(args, value)
		argIdx++
	}

	if filter.UserID != "" {
		addCondition("a.user_id = $%d", filter.UserID)
	}
	if filter.Status != "" {
		addCondition("a.status = $%d", filter.Status)
	}
	if filter.DateFrom != nil {
		addCondition("a.date >= $%d", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		addCondition("a.date <= $%d", *filter.DateTo)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf(`SELECT count(*) FROM attendances a %s`, whereClause)

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT a.id, a.user_id, a.date, a.time_in, a.time_out, a.status, a.late_minutes, a.notes,
		       a.created_at, a.updated_at, u.full_name
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		%s
		ORDER BY a.date DESC, u.full_name
		LIMIT $%d OFFSET $%d
	`, whereClause, argIdx, argIdx+1)

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	attendances, err := collectAttendancesWithName(rows)
	if err != nil {
		return nil, 0, err
	}

	return attendances, total, nil
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.user_id, a.date, a.time_in, a.time_out, a.status, a.late_minutes, a.notes,
		       a.created_at, a.updated_at, u.full_name
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		WHERE a.date = $1
		ORDER BY u.full_name
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances by date: %w", err)
	}
	defer rows.Close()

	return collectAttendancesWithName(rows)
}

func collectAttendancesWithName(rows pgx.Rows) ([]attendance.Attendance, error) {
	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.UserID, &att.Date, &att.TimeIn, &att.TimeOut,
			&att.Status, &att.LateMinutes, &att.Notes, &att.CreatedAt, &att.UpdatedAt,
			&att.UserName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}
	return attendances, nil
}

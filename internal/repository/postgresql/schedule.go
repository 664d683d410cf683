package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/scanpoint/attendance-backend-go/internal/domain/schedule"
	"github.com/scanpoint/attendance-backend-go/internal/pkg/database"
)

type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepository{db: db}
}

func scanSchedule(row pgx.Row) (schedule.Schedule, error) {
	var s schedule.Schedule
	err := row.Scan(
		&s.ID, &s.UserID, &s.DayOfWeek, &s.StartTime, &s.EndTime,
		&s.BreakStart, &s.BreakHours, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Create implements schedule.ScheduleRepository.
func (r *scheduleRepository) Create(ctx context.Context, sched schedule.Schedule) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO schedules (user_id, day_of_week, start_time, end_time, break_start, break_hours)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		sched.UserID, sched.DayOfWeek, sched.StartTime, sched.EndTime,
		sched.BreakStart, sched.BreakHours,
	).Scan(&sched.ID, &sched.CreatedAt, &sched.UpdatedAt)
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("failed to create schedule: %w", err)
	}

	return sched, nil
}

// GetByID implements schedule.ScheduleRepository.
func (r *scheduleRepository) GetByID(ctx context.Context, id string) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, day_of_week, start_time, end_time, break_start, break_hours, created_at, updated_at
		FROM schedules
		WHERE id = $1
	`

	s, err := scanSchedule(q.QueryRow(ctx, query, id))
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("failed to get schedule: %w", err)
	}
	return s, nil
}

// GetByUserAndDay implements schedule.ScheduleRepository.
func (r *scheduleRepository) GetByUserAndDay(ctx context.Context, userID string, dayOfWeek int) (*schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, day_of_week, start_time, end_time, break_start, break_hours, created_at, updated_at
		FROM schedules
		WHERE user_id = $1 AND day_of_week = $2
	`

	s, err := scanSchedule(q.QueryRow(ctx, query, userID, dayOfWeek))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get schedule by user and day: %w", err)
	}
	return &s, nil
}

// ListByUser implements schedule.ScheduleRepository.
func (r *scheduleRepository) ListByUser(ctx context.Context, userID string) ([]schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, day_of_week, start_time, end_time, break_start, break_hours, created_at, updated_at
		FROM schedules
		WHERE user_id = $1
		ORDER BY day_of_week
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer rows.Close()

	return collectSchedules(rows)
}

// ListByDay implements schedule.ScheduleRepository. Only active users are
// returned; the sweeps never touch deactivated accounts.
func (r *scheduleRepository) ListByDay(ctx context.Context, dayOfWeek int) ([]schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.user_id, s.day_of_week, s.start_time, s.end_time, s.break_start, s.break_hours, s.created_at, s.updated_at
		FROM schedules s
		JOIN users u ON u.id = s.user_id
		WHERE s.day_of_week = $1 AND u.is_active
		ORDER BY u.full_name
	`

	rows, err := q.Query(ctx, query, dayOfWeek)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules by day: %w", err)
	}
	defer rows.Close()

	return collectSchedules(rows)
}

func collectSchedules(rows pgx.Rows) ([]schedule.Schedule, error) {
	var schedules []schedule.Schedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate schedules: %w", err)
	}
	return schedules, nil
}

// Update implements schedule.ScheduleRepository.
func (r *scheduleRepository) Update(ctx context.Context, sched schedule.Schedule) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE schedules
		SET start_time = $2, end_time = $3, break_start = $4, break_hours = $5, updated_at = now()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, sched.ID, sched.StartTime, sched.EndTime, sched.BreakStart, sched.BreakHours)
	if err != nil {
		return fmt.Errorf("failed to update schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("schedule %s not found", sched.ID)
	}
	return nil
}

// Delete implements schedule.ScheduleRepository.
func (r *scheduleRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("schedule %s not found", id)
	}
	return nil
}

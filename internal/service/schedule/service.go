package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/scanpoint/attendance-backend-go/internal/domain/schedule"
	"github.com/scanpoint/attendance-backend-go/internal/domain/user"
)

type ScheduleServiceImpl struct {
	scheduleRepo schedule.ScheduleRepository
	userRepo     user.UserRepository
}

func NewScheduleService(
	scheduleRepo schedule.ScheduleRepository,
	userRepo user.UserRepository,
) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		scheduleRepo: scheduleRepo,
		userRepo:     userRepo,
	}
}

func (s *ScheduleServiceImpl) Create(ctx context.Context, req schedule.CreateScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.ScheduleResponse{}, schedule.ErrScheduleUserNotFound
		}
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	existing, err := s.scheduleRepo.GetByUserAndDay(ctx, req.UserID, req.DayOfWeek)
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to check existing schedule: %w", err)
	}
	if existing != nil {
		return schedule.ScheduleResponse{}, schedule.ErrScheduleDayConflict
	}

	entity, err := buildSchedule(req)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	created, err := s.scheduleRepo.Create(ctx, entity)
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to create schedule: %w", err)
	}

	return schedule.ToResponse(created), nil
}

func buildSchedule(req schedule.CreateScheduleRequest) (schedule.Schedule, error) {
	start, err := schedule.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("failed to parse start_time: %w", err)
	}
	end, err := schedule.ParseTimeOfDay(req.EndTime)
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("failed to parse end_time: %w", err)
	}

	entity := schedule.Schedule{
		UserID:     req.UserID,
		DayOfWeek:  req.DayOfWeek,
		StartTime:  start,
		EndTime:    end,
		BreakHours: req.BreakHours,
	}
	if req.BreakStart != nil {
		bs, err := schedule.ParseTimeOfDay(*req.BreakStart)
		if err != nil {
			return schedule.Schedule{}, fmt.Errorf("failed to parse break_start: %w", err)
		}
		entity.BreakStart = &bs
	}
	return entity, nil
}

func (s *ScheduleServiceImpl) Update(ctx context.Context, req schedule.UpdateScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	entity, err := s.scheduleRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.ScheduleResponse{}, schedule.ErrScheduleNotFound
		}
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to get schedule: %w", err)
	}

	if req.StartTime != nil {
		start, err := schedule.ParseTimeOfDay(*req.StartTime)
		if err != nil {
			return schedule.ScheduleResponse{}, fmt.Errorf("failed to parse start_time: %w", err)
		}
		entity.StartTime = start
	}
	if req.EndTime != nil {
		end, err := schedule.ParseTimeOfDay(*req.EndTime)
		if err != nil {
			return schedule.ScheduleResponse{}, fmt.Errorf("failed to parse end_time: %w", err)
		}
		entity.EndTime = end
	}
	if req.BreakStart != nil {
		bs, err := schedule.ParseTimeOfDay(*req.BreakStart)
		if err != nil {
			return schedule.ScheduleResponse{}, fmt.Errorf("failed to parse break_start: %w", err)
		}
		entity.BreakStart = &bs
	}
	if req.BreakHours != nil {
		entity.BreakHours = *req.BreakHours
		if *req.BreakHours == 0 {
			entity.BreakStart = nil
		}
	}

	if err := s.scheduleRepo.Update(ctx, entity); err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to update schedule: %w", err)
	}

	return schedule.ToResponse(entity), nil
}

func (s *ScheduleServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.scheduleRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.ErrScheduleNotFound
		}
		return fmt.Errorf("failed to get schedule: %w", err)
	}

	if err := s.scheduleRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	return nil
}

func (s *ScheduleServiceImpl) Get(ctx context.Context, id string) (schedule.ScheduleResponse, error) {
	entity, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.ScheduleResponse{}, schedule.ErrScheduleNotFound
		}
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to get schedule: %w", err)
	}
	return schedule.ToResponse(entity), nil
}

func (s *ScheduleServiceImpl) ListByUser(ctx context.Context, userID string) ([]schedule.ScheduleResponse, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, schedule.ErrScheduleUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	entities, err := s.scheduleRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}

	responses := make([]schedule.ScheduleResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, schedule.ToResponse(entity))
	}
	return responses, nil
}

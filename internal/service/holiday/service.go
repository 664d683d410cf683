package holiday

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/scanpoint/attendance-backend-go/internal/domain/holiday"
)

type HolidayServiceImpl struct {
	holidayRepo holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{holidayRepo: holidayRepo}
}

func (s *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	created, err := s.holidayRepo.Create(ctx, holiday.Holiday{
		Name:        req.Name,
		Date:        date,
		Type:        holiday.HolidayType(req.Type),
		IsRecurring: req.IsRecurring,
	})
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return holiday.ToResponse(created), nil
}

func (s *HolidayServiceImpl) Update(ctx context.Context, req holiday.UpdateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	entity, err := s.holidayRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.HolidayResponse{}, holiday.ErrHolidayNotFound
		}
		return holiday.HolidayResponse{}, fmt.Errorf("failed to get holiday: %w", err)
	}

	if req.Name != nil {
		entity.Name = *req.Name
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return holiday.HolidayResponse{}, fmt.Errorf("failed to parse date: %w", err)
		}
		entity.Date = date
	}
	if req.Type != nil {
		entity.Type = holiday.HolidayType(*req.Type)
	}
	if req.IsRecurring != nil {
		entity.IsRecurring = *req.IsRecurring
	}

	if err := s.holidayRepo.Update(ctx, entity); err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to update holiday: %w", err)
	}

	return holiday.ToResponse(entity), nil
}

func (s *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.holidayRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.ErrHolidayNotFound
		}
		return fmt.Errorf("failed to get holiday: %w", err)
	}

	if err := s.holidayRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	return nil
}

func (s *HolidayServiceImpl) Get(ctx context.Context, id string) (holiday.HolidayResponse, error) {
	entity, err := s.holidayRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.HolidayResponse{}, holiday.ErrHolidayNotFound
		}
		return holiday.HolidayResponse{}, fmt.Errorf("failed to get holiday: %w", err)
	}
	return holiday.ToResponse(entity), nil
}

func (s *HolidayServiceImpl) List(ctx context.Context) ([]holiday.HolidayResponse, error) {
	entities, err := s.holidayRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, holiday.ToResponse(entity))
	}
	return responses, nil
}

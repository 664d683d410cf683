package holiday

import (
	"context"
)

// HolidayService defines business logic for holiday calendar management
type HolidayService interface {
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	Update(ctx context.Context, req UpdateHolidayRequest) (HolidayResponse, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (HolidayResponse, error)
	List(ctx context.Context) ([]HolidayResponse, error)
}

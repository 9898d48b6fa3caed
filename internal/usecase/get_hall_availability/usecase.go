package get_hall_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/seminarhub/hall-booking-service/internal/domain"
	hallRepo "github.com/seminarhub/hall-booking-service/internal/infra/storage/hall"
)

// UseCase use case получения занятости зала на дату
type UseCase struct {
	bookingRepo BookingRepository
	hallRepo    HallRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, hallRepo HallRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		hallRepo:    hallRepo,
		logger:      logger,
	}
}

// Execute возвращает занятые интервалы зала на указанную дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetHallAvailability: hall=%d, date=%s", req.HallID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetHallAvailability: validation failed: %v", err)
		return nil, err
	}

	hall, err := uc.hallRepo.GetByID(ctx, req.HallID)
	if err != nil {
		if errors.Is(err, hallRepo.ErrHallNotFound) {
			uc.logger.Warn("GetHallAvailability: hall id=%d not found", req.HallID)
			return nil, ErrHallNotFound
		}
		uc.logger.Error("GetHallAvailability: failed to get hall id=%d: %v", req.HallID, err)
		return nil, fmt.Errorf("%w: failed to get hall: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.GetActiveByHallAndDate(ctx, req.HallID, req.Date, nil)
	if err != nil {
		uc.logger.Error("GetHallAvailability: failed to get bookings for hall id=%d: %v", req.HallID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// Выборка уже отсортирована по времени начала
	busy := make([]BusySlot, 0, len(bookings))
	for _, booking := range bookings {
		if !booking.BlocksSlot() {
			continue
		}
		busy = append(busy, BusySlot{
			BookingID: booking.ID,
			StartTime: booking.StartTime.String(),
			EndTime:   booking.EndTime.String(),
			Status:    string(booking.Status),
		})
	}

	uc.logger.Info("GetHallAvailability: hall id=%d has %d busy slots on %s",
		req.HallID, len(busy), req.Date.Format(domain.DateFormat))

	return &Response{
		HallID:   hall.ID,
		HallName: hall.Name,
		Date:     req.Date.Format(domain.DateFormat),
		Busy:     busy,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.HallID <= 0 {
		return fmt.Errorf("%w: hallID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}

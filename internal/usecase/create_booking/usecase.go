package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/seminarhub/hall-booking-service/internal/domain"
	hallRepo "github.com/seminarhub/hall-booking-service/internal/infra/storage/hall"
	userClient "github.com/seminarhub/hall-booking-service/internal/integrations/userdirectory"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	hallRepo     HallRepository
	checker      ConflictChecker
	userClient   UserDirectoryClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	hallRepo HallRepository,
	checker ConflictChecker,
	userClient UserDirectoryClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		hallRepo:     hallRepo,
		checker:      checker,
		userClient:   userClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка конфликтов и вставка выполняются в сериализуемой транзакции,
// чтобы два конкурирующих запроса не забронировали пересекающиеся интервалы
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, hall=%d, date=%s, time=%s-%s",
		req.Requester.UserID, req.HallID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация даты относительно текущего дня
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 3. Получаем зал и фиксируем снимок его названия
	hall, err := uc.hallRepo.GetByID(ctx, req.HallID)
	if err != nil {
		if errors.Is(err, hallRepo.ErrHallNotFound) {
			uc.logger.Warn("CreateBooking: hall id=%d not found", req.HallID)
			return nil, ErrHallNotFound
		}
		uc.logger.Error("CreateBooking: failed to get hall id=%d: %v", req.HallID, err)
		return nil, fmt.Errorf("%w: failed to get hall: %v", ErrInternal, err)
	}

	// 4. Получаем профиль преподавателя из справочника
	user, err := uc.userClient.GetUser(ctx, req.Requester.UserID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: user id=%d not found in directory", req.Requester.UserID)
			return nil, ErrFacultyNotFound
		}
		uc.logger.Error("CreateBooking: failed to get user id=%d: %v", req.Requester.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 5. Проверка конфликтов и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Проверяем пересечения с не-отклоненными бронированиями зала
		hasConflict, err := uc.checker.HasConflict(txCtx, req.HallID, req.Date, req.StartTime, req.EndTime, nil)
		if err != nil {
			uc.logger.Error("CreateBooking: conflict check failed: %v", err)
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}
		if hasConflict {
			uc.logger.Warn("CreateBooking: slot %s-%s conflicts for hall=%d date=%s",
				req.StartTime, req.EndTime, req.HallID, req.Date.Format(domain.DateFormat))
			return ErrSlotConflict
		}

		// 5.2. Создаем бронирование со снимками названия зала и имени преподавателя
		booking := &domain.Booking{
			HallID:      req.HallID,
			FacultyID:   req.Requester.UserID,
			Date:        req.Date,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Purpose:     strings.TrimSpace(req.Purpose),
			Status:      domain.StatusPending,
			HallName:    hall.Name,
			FacultyName: user.FullName,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:          result.ID,
		HallID:      result.HallID,
		FacultyID:   result.FacultyID,
		Date:        result.Date,
		StartTime:   result.StartTime,
		EndTime:     result.EndTime,
		Purpose:     result.Purpose,
		Status:      string(result.Status),
		HallName:    result.HallName,
		FacultyName: result.FacultyName,
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}

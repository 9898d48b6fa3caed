package update_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/seminarhub/hall-booking-service/internal/domain"
	bookingRepo "github.com/seminarhub/hall-booking-service/internal/infra/storage/booking"
	"github.com/seminarhub/hall-booking-service/pkg/ptr"
)

// UseCase use case для редактирования бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	checker      ConflictChecker
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	checker ConflictChecker,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		checker:      checker,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case редактирования бронирования
// Преподаватель может редактировать только свои бронирования в статусе
// Pending; администратор - любые. Если патч меняет дату или время,
// объединенный интервал проверяется на конфликты с исключением самого
// бронирования, в сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: booking=%d, user=%d role=%s",
		req.BookingID, req.Requester.UserID, req.Requester.Role)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	patch := req.ToDomainPatch()
	if patch.IsEmpty() {
		uc.logger.Warn("UpdateBooking: empty patch for booking id=%d", req.BookingID)
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	// Нормализуем цель до сохранения
	if patch.Purpose != nil {
		trimmed := strings.TrimSpace(*patch.Purpose)
		patch.Purpose = &trimmed
	}

	now := uc.timeProvider.Now()

	// Переменная для хранения результата
	var result *domain.Booking

	// 2. Чтение, проверка прав и обновление в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем текущее состояние бронирования
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2.2. Проверяем права доступа
		if err := checkEditAccess(booking, req.Requester); err != nil {
			uc.logger.Warn("UpdateBooking: edit denied for user=%d booking id=%d status=%s",
				req.Requester.UserID, req.BookingID, booking.Status)
			return err
		}

		// 2.3. Накладываем патч и валидируем объединенное расписание
		mergedDate := booking.Date
		if patch.Date != nil {
			mergedDate = *patch.Date
		}
		mergedStart := booking.StartTime
		if patch.StartTime != nil {
			mergedStart = *patch.StartTime
		}
		mergedEnd := booking.EndTime
		if patch.EndTime != nil {
			mergedEnd = *patch.EndTime
		}

		if patch.TouchesSchedule() {
			if err := validateMergedSchedule(mergedDate, mergedStart, mergedEnd, now); err != nil {
				uc.logger.Warn("UpdateBooking: merged schedule invalid for booking id=%d: %v", req.BookingID, err)
				return err
			}

			// 2.4. Проверяем конфликты, исключая само бронирование
			hasConflict, err := uc.checker.HasConflict(
				txCtx, booking.HallID, mergedDate, mergedStart, mergedEnd, ptr.Ptr(booking.ID))
			if err != nil {
				uc.logger.Error("UpdateBooking: conflict check failed for booking id=%d: %v", req.BookingID, err)
				return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
			}
			if hasConflict {
				uc.logger.Warn("UpdateBooking: slot %s-%s conflicts for hall=%d date=%s",
					mergedStart, mergedEnd, booking.HallID, mergedDate.Format(domain.DateFormat))
				return ErrSlotConflict
			}
		}

		// 2.5. Сохраняем изменения
		updated, err := uc.bookingRepo.UpdateFields(txCtx, req.BookingID, patch)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%d", result.ID)
	return fromDomain(result), nil
}

// checkEditAccess проверяет права на редактирование бронирования.
// Администратор редактирует любые бронирования; преподаватель только
// свои и только пока администратор их не обработал.
func checkEditAccess(booking *domain.Booking, requester domain.Requester) error {
	if requester.IsAdmin() {
		return nil
	}
	if !booking.IsOwnedBy(requester.UserID) {
		return ErrAccessDenied
	}
	if !booking.IsPending() {
		return ErrNotEditable
	}
	return nil
}

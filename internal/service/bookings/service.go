package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/seminarhub/hall-booking-service/internal/domain"
	bookingRepo "github.com/seminarhub/hall-booking-service/internal/infra/storage/booking"
	"github.com/seminarhub/hall-booking-service/internal/service/bookings/models"
)

// Service сервис чтения и администрирования бронирований.
// Создание и редактирование живут в отдельных usecase-пакетах,
// так как требуют транзакционной проверки конфликтов.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Преподаватель видит только свои бронирования, администратор - любые
func (s *Service) GetByID(ctx context.Context, id int64, requester domain.Requester) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d role=%s", id, requester.UserID, requester.Role)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkReadAccess(booking, requester); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", requester.UserID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// List получает список бронирований с фильтрацией
// Преподаватель видит только собственные бронирования: фильтр по FacultyID
// принудительно сужается до его ID независимо от запрошенного значения.
// Администратор может фильтровать по любому преподавателю или смотреть все.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings for user=%d role=%s", req.Requester.UserID, req.Requester.Role)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter from user=%d: %v", req.Requester.UserID, err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if !req.Requester.IsAdmin() {
		ownID := req.Requester.UserID
		filter.FacultyID = &ownID
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", req.Requester.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings for user=%d", len(bookings), req.Requester.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus меняет статус бронирования (подтверждение или отклонение)
// Доступно только администраторам. Повторная проверка конфликтов при
// подтверждении не выполняется: слот удерживается с момента создания,
// так как Pending-бронирования тоже блокируют пересекающиеся интервалы.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d",
		bookingID, req.Status, req.Requester.UserID)

	if !req.Requester.IsAdmin() {
		s.logger.Warn("UpdateStatus: access denied for user=%d role=%s", req.Requester.UserID, req.Requester.Role)
		return nil, ErrAccessDenied
	}

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to re-read booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return models.FromDomainBooking(booking), nil
}

// Delete удаляет бронирование
// Преподаватель может удалить только своё бронирование (в любом статусе),
// администратор - любое. Удаление физическое: отклоненная или удаленная
// запись больше не удерживает слот.
func (s *Service) Delete(ctx context.Context, bookingID int64, requester domain.Requester) error {
	s.logger.Info("Delete: deleting booking id=%d by user=%d role=%s", bookingID, requester.UserID, requester.Role)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.checkReadAccess(booking, requester); err != nil {
		s.logger.Warn("Delete: access denied for user=%d to booking id=%d", requester.UserID, bookingID)
		return err
	}

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found during deletion", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", bookingID)
	return nil
}

// Вспомогательные методы

// checkReadAccess проверяет, что пользователь имеет доступ к бронированию.
// Владелец и администратор имеют доступ, остальные - нет.
func (s *Service) checkReadAccess(booking *domain.Booking, requester domain.Requester) error {
	if requester.IsAdmin() {
		return nil
	}
	if booking.IsOwnedBy(requester.UserID) {
		return nil
	}
	return ErrAccessDenied
}

package create_booking

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/seminarhub/hall-booking-service/internal/domain"
	"github.com/seminarhub/hall-booking-service/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Requester.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.HallID <= 0 {
		return fmt.Errorf("%w: hallID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	if err := validateTimeRange(req.StartTime, req.EndTime); err != nil {
		return err
	}

	if err := validatePurpose(req.Purpose); err != nil {
		return err
	}

	return nil
}

// validateTimeRange проверяет, что время окончания строго позже времени начала.
// Сравнение выполняется в минутах от полуночи, а не лексикографически.
func validateTimeRange(start, end types.TimeString) error {
	startMin, err := start.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	endMin, err := end.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	if endMin <= startMin {
		return ErrInvalidTimeRange
	}

	return nil
}

// validatePurpose проверяет длину цели бронирования.
// Длина считается в символах, а не в байтах.
func validatePurpose(purpose string) error {
	trimmed := strings.TrimSpace(purpose)
	length := utf8.RuneCountInString(trimmed)
	if length < domain.MinPurposeLength || length > domain.MaxPurposeLength {
		return fmt.Errorf("%w: purpose length must be between %d and %d characters",
			ErrInvalidPurpose, domain.MinPurposeLength, domain.MaxPurposeLength)
	}
	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом.
// Обе даты приводятся к началу суток в зоне серверного времени,
// чтобы зона входной даты не влияла на сравнение.
func validateDate(bookingDate time.Time, now time.Time) error {
	dateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, now.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}

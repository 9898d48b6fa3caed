package update_booking

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/seminarhub/hall-booking-service/internal/domain"
	"github.com/seminarhub/hall-booking-service/pkg/types"
)

// validateRequest валидирует входные данные запроса.
// Проверяются только форматы указанных полей; согласованность интервала
// проверяется позже, на объединении патча с текущим состоянием.
func validateRequest(req *Request) error {
	if req.Requester.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.StartTime != nil {
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
		}
	}
	if req.EndTime != nil {
		if err := req.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
		}
	}

	if req.Purpose != nil {
		if err := validatePurpose(*req.Purpose); err != nil {
			return err
		}
	}

	return nil
}

// validateMergedSchedule проверяет согласованность расписания после
// наложения патча: дата не в прошлом, конец строго позже начала.
func validateMergedSchedule(date time.Time, start, end types.TimeString, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}

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

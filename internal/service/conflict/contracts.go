package conflict

import (
	"context"
	"time"

	"github.com/seminarhub/hall-booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований.
// Чекеру нужна только выборка не-отклоненных бронирований зала на день.
type BookingRepository interface {
	GetActiveByHallAndDate(ctx context.Context, hallID int64, date time.Time, excludeID *int64) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

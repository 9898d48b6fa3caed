package create_booking

import (
	"context"
	"time"

	"github.com/seminarhub/hall-booking-service/internal/domain"
	"github.com/seminarhub/hall-booking-service/internal/integrations/userdirectory"
	"github.com/seminarhub/hall-booking-service/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// HallRepository интерфейс репозитория залов
type HallRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hall, error)
}

// ConflictChecker интерфейс проверки конфликтов бронирований
type ConflictChecker interface {
	HasConflict(ctx context.Context, hallID int64, date time.Time, startTime, endTime types.TimeString, excludeBookingID *int64) (bool, error)
}

// UserDirectoryClient интерфейс клиента справочника пользователей
type UserDirectoryClient interface {
	GetUser(ctx context.Context, userID int64) (*userdirectory.User, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

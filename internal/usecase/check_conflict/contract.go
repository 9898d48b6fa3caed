package check_conflict

import (
	"context"
	"time"

	"github.com/seminarhub/hall-booking-service/pkg/types"
)

// ConflictChecker интерфейс проверки конфликтов бронирований
type ConflictChecker interface {
	HasConflict(ctx context.Context, hallID int64, date time.Time, startTime, endTime types.TimeString, excludeBookingID *int64) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

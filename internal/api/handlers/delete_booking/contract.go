package delete_booking

import (
	"context"

	"github.com/seminarhub/hall-booking-service/internal/domain"
)

type BookingService interface {
	Delete(ctx context.Context, bookingID int64, requester domain.Requester) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

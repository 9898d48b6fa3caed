package delete_hall

import (
	"context"

	"github.com/seminarhub/hall-booking-service/internal/domain"
)

type HallService interface {
	Delete(ctx context.Context, id int64, requester domain.Requester) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

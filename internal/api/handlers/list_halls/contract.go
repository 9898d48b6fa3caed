package list_halls

import (
	"context"

	"github.com/seminarhub/hall-booking-service/internal/service/halls/models"
)

type HallService interface {
	List(ctx context.Context) (*models.HallListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package update_hall

import (
	"context"

	"github.com/seminarhub/hall-booking-service/internal/service/halls/models"
)

type HallService interface {
	Update(ctx context.Context, id int64, req *models.UpdateHallRequest) (*models.HallResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

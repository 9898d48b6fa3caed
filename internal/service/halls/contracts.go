package halls

import (
	"context"

	"github.com/seminarhub/hall-booking-service/internal/domain"
)

// HallRepository интерфейс репозитория залов
type HallRepository interface {
	Create(ctx context.Context, hall *domain.Hall) (*domain.Hall, error)
	GetByID(ctx context.Context, id int64) (*domain.Hall, error)
	List(ctx context.Context) ([]*domain.Hall, error)
	Update(ctx context.Context, id int64, patch domain.HallPatch) (*domain.Hall, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

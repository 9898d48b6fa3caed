package create_booking

import (
	"time"

	"github.com/seminarhub/hall-booking-service/internal/domain"
	"github.com/seminarhub/hall-booking-service/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Requester domain.Requester // Кто создает бронирование
	HallID    int64            // ID зала
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Время начала (например, "10:00")
	EndTime   types.TimeString // Время окончания (например, "12:00")
	Purpose   string           // Цель бронирования
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64            // ID созданного бронирования
	HallID    int64            // ID зала
	FacultyID int64            // ID преподавателя
	Date      time.Time        // Дата бронирования
	StartTime types.TimeString // Время начала
	EndTime   types.TimeString // Время окончания
	Purpose   string           // Цель бронирования
	Status    string           // Статус бронирования

	// Снимки на момент создания
	HallName    string // Название зала
	FacultyName string // Имя преподавателя

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

package update_booking

import (
	"time"

	"github.com/seminarhub/hall-booking-service/internal/domain"
	"github.com/seminarhub/hall-booking-service/pkg/types"
)

// Request модель запроса на редактирование бронирования.
// Неуказанные поля (nil) остаются без изменений.
type Request struct {
	Requester domain.Requester  // Кто редактирует бронирование
	BookingID int64             // ID бронирования
	Date      *time.Time        // Новая дата (опционально)
	StartTime *types.TimeString // Новое время начала (опционально)
	EndTime   *types.TimeString // Новое время окончания (опционально)
	Purpose   *string           // Новая цель (опционально)
}

// ToDomainPatch конвертирует request в domain патч
func (r *Request) ToDomainPatch() domain.BookingPatch {
	return domain.BookingPatch{
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Purpose:   r.Purpose,
	}
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID        int64            // ID бронирования
	HallID    int64            // ID зала
	FacultyID int64            // ID преподавателя
	Date      time.Time        // Дата бронирования
	StartTime types.TimeString // Время начала
	EndTime   types.TimeString // Время окончания
	Purpose   string           // Цель бронирования
	Status    string           // Статус бронирования

	HallName    string // Название зала (снимок)
	FacultyName string // Имя преподавателя (снимок)

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

// fromDomain конвертирует domain модель в response
func fromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:          b.ID,
		HallID:      b.HallID,
		FacultyID:   b.FacultyID,
		Date:        b.Date,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Purpose:     b.Purpose,
		Status:      string(b.Status),
		HallName:    b.HallName,
		FacultyName: b.FacultyName,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

package check_conflict

import (
	"time"

	"github.com/seminarhub/hall-booking-service/pkg/types"
)

// Request модель запроса на проверку конфликта.
// ExcludeBookingID позволяет проверить новый интервал существующего
// бронирования, не считая конфликтом его самого.
type Request struct {
	HallID           int64            // ID зала
	Date             time.Time        // Дата (без времени)
	StartTime        types.TimeString // Время начала
	EndTime          types.TimeString // Время окончания
	ExcludeBookingID *int64           // Исключаемое бронирование (опционально)
}

// Response модель ответа проверки конфликта
type Response struct {
	HasConflict bool // Пересекается ли интервал с существующим бронированием
}

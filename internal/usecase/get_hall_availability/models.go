package get_hall_availability

import "time"

// Request модель запроса занятости зала на дату
type Request struct {
	HallID int64     // ID зала
	Date   time.Time // Дата (без времени)
}

// BusySlot занятый интервал в зале
type BusySlot struct {
	BookingID int64  // ID бронирования, удерживающего интервал
	StartTime string // Время начала, "10:00"
	EndTime   string // Время окончания, "12:00"
	Status    string // Статус бронирования (Pending или Approved)
}

// Response модель ответа с занятостью зала.
// Слоты отсортированы по времени начала; отклоненные бронирования
// интервалы не удерживают и в список не попадают.
type Response struct {
	HallID   int64      // ID зала
	HallName string     // Название зала
	Date     string     // Дата, "2026-09-15"
	Busy     []BusySlot // Занятые интервалы
}

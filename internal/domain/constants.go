package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinPurposeLength = 5
	MaxPurposeLength = 500

	MinHallNameLength = 2
	MaxHallNameLength = 120
	MinHallCapacity   = 1
	MaxHallCapacity   = 2000
)

// BlockingStatuses статусы, при которых бронирование занимает слот.
// Используется при проверке конфликтов: отклоненные заявки слот освобождают.
var BlockingStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
}

// ValidStatuses все допустимые статусы бронирования
var ValidStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
	StatusRejected,
}

package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав на изменение
	ErrAccessDenied = errors.New("update_booking: access denied")

	// ErrNotEditable возвращается при попытке преподавателя изменить
	// бронирование, которое уже обработано администратором
	ErrNotEditable = errors.New("update_booking: only pending bookings can be edited")

	// ErrInvalidDate возвращается, когда новая дата бронирования в прошлом
	ErrInvalidDate = errors.New("update_booking: invalid booking date")

	// ErrInvalidTimeRange возвращается, когда время окончания не позже времени начала
	ErrInvalidTimeRange = errors.New("update_booking: end time must be after start time")

	// ErrInvalidPurpose возвращается при некорректной цели бронирования
	ErrInvalidPurpose = errors.New("update_booking: invalid purpose")

	// ErrSlotConflict возвращается, когда новый интервал пересекается с чужим бронированием
	ErrSlotConflict = errors.New("update_booking: time slot conflicts with an existing booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)

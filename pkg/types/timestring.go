package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString время суток в формате "HH:MM" (24-часовой формат, с ведущими нулями).
// Все сравнения выполняются через минуты с начала суток, поэтому "9:00" и "09:00"
// не могут дать разный порядок: невалидные строки отбрасываются на входе.
type TimeString string

var (
	// ErrInvalidTimeString возвращается при некорректном формате строки времени
	ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

	// ErrTimeOutOfRange возвращается, когда результат операции выходит за пределы суток
	ErrTimeOutOfRange = errors.New("time is out of day range")
)

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString создает TimeString из строки с валидацией и нормализацией.
// Принимает "9:05" и "09:05", всегда возвращает вид с ведущим нулём.
func NewTimeStringFromString(s string) (TimeString, error) {
	hours, minutes, err := parseHoursMinutes(s)
	if err != nil {
		return "", err
	}
	return TimeString(fmt.Sprintf("%02d:%02d", hours, minutes)), nil
}

// FromMinutes создает TimeString из количества минут с начала суток
func FromMinutes(total int) (TimeString, error) {
	if total < 0 || total >= 24*60 {
		return "", ErrTimeOutOfRange
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// Validate проверяет, что строка времени имеет корректный формат
func (t TimeString) Validate() error {
	_, _, err := parseHoursMinutes(string(t))
	return err
}

// IsZero возвращает true, если значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// Minutes возвращает количество минут с начала суток
func (t TimeString) Minutes() (int, error) {
	hours, minutes, err := parseHoursMinutes(string(t))
	if err != nil {
		return 0, err
	}
	return hours*60 + minutes, nil
}

// AddMinutes возвращает время, сдвинутое на m минут вперёд
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return FromMinutes(total + m)
}

// IsBefore возвращает true, если t строго раньше other.
// Невалидные значения считаются "минус бесконечностью" и никогда не позже валидных.
func (t TimeString) IsBefore(other TimeString) bool {
	return t.minutesOrNegative() < other.minutesOrNegative()
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.minutesOrNegative() > other.minutesOrNegative()
}

// Equal возвращает true, если оба значения обозначают одну и ту же минуту
func (t TimeString) Equal(other TimeString) bool {
	return t.minutesOrNegative() == other.minutesOrNegative()
}

// Value реализует driver.Valuer для сохранения в БД как строки
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan реализует sql.Scanner.
// Поддерживает string, []byte и time.Time (колонки TEXT/VARCHAR и TIME).
func (t *TimeString) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeString", value)
	}
}

func (t TimeString) minutesOrNegative() int {
	total, err := t.Minutes()
	if err != nil {
		return -1
	}
	return total
}

func parseHoursMinutes(s string) (int, int, error) {
	// Допустимы "H:MM" и "HH:MM", все символы кроме двоеточия - цифры
	if len(s) < 4 || len(s) > 5 || s[len(s)-3] != ':' {
		return 0, 0, ErrInvalidTimeString
	}

	hours := 0
	for _, c := range s[:len(s)-3] {
		if c < '0' || c > '9' {
			return 0, 0, ErrInvalidTimeString
		}
		hours = hours*10 + int(c-'0')
	}

	minutes := 0
	for _, c := range s[len(s)-2:] {
		if c < '0' || c > '9' {
			return 0, 0, ErrInvalidTimeString
		}
		minutes = minutes*10 + int(c-'0')
	}

	if hours > 23 || minutes > 59 {
		return 0, 0, ErrInvalidTimeString
	}
	return hours, minutes, nil
}

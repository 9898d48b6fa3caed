package domain

import (
	"time"

	"github.com/seminarhub/hall-booking-service/pkg/types"
)

// BookingStatus represents the status of a hall booking
type BookingStatus string

const (
	StatusPending  BookingStatus = "Pending"
	StatusApproved BookingStatus = "Approved"
	StatusRejected BookingStatus = "Rejected"
)

// Booking represents a seminar hall reservation.
// The time range [StartTime, EndTime) is half-open: a booking ending at 11:00
// and a booking starting at 11:00 do not collide.
type Booking struct {
	ID     int64
	HallID int64

	FacultyID int64

	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Purpose   string
	Status    BookingStatus

	// Denormalized snapshots taken at creation time.
	// Not kept in sync with later hall or user renames.
	HallName    string
	FacultyName string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlocksSlot returns true if the booking occupies its time slot.
// Rejected bookings free the slot and are ignored by conflict checks.
func (b *Booking) BlocksSlot() bool {
	return b.Status != StatusRejected
}

// IsOwnedBy returns true if the booking belongs to the given user
func (b *Booking) IsOwnedBy(userID int64) bool {
	return b.FacultyID == userID
}

// IsPending returns true while the booking awaits an admin decision
func (b *Booking) IsPending() bool {
	return b.Status == StatusPending
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	HallID          *int64         // Фильтр по залу (опционально)
	FacultyID       *int64         // Фильтр по владельцу (опционально)
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeRejected bool           // Включать ли отклоненные бронирования
}

// BookingPatch частичное обновление полей бронирования.
// Только эти четыре поля изменяемы через update; статус меняется
// отдельной операцией, зал и владелец неизменяемы после создания.
type BookingPatch struct {
	Date      *time.Time
	StartTime *types.TimeString
	EndTime   *types.TimeString
	Purpose   *string
}

// IsEmpty возвращает true, если патч не содержит ни одного поля
func (p *BookingPatch) IsEmpty() bool {
	return p.Date == nil && p.StartTime == nil && p.EndTime == nil && p.Purpose == nil
}

// TouchesSchedule возвращает true, если патч меняет дату или время,
// то есть требует повторной проверки конфликтов
func (p *BookingPatch) TouchesSchedule() bool {
	return p.Date != nil || p.StartTime != nil || p.EndTime != nil
}

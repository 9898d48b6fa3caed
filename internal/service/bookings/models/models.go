package models

import (
	"errors"
	"time"

	"github.com/seminarhub/hall-booking-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// UpdateStatusRequest запрос на изменение статуса бронирования
type UpdateStatusRequest struct {
	Requester domain.Requester `json:"-"`
	Status    string           `json:"status"`
}

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	Requester       domain.Requester `json:"-"`
	HallID          *int64           `json:"hallId,omitempty"`          // Фильтр по залу (опционально)
	FacultyID       *int64           `json:"facultyId,omitempty"`       // Фильтр по преподавателю (опционально)
	StartDate       *time.Time       `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time       `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string          `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeRejected bool             `json:"includeRejected,omitempty"` // Включить отклоненные бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		HallID:          r.HallID,
		FacultyID:       r.FacultyID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeRejected: r.IncludeRejected,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования.
// Имена полей зафиксированы контрактом хранения и не меняются.
type BookingResponse struct {
	ID        int64  `json:"id"`
	HallID    int64  `json:"hallId"`
	FacultyID int64  `json:"facultyId"`
	Date      string `json:"date"`      // "2026-09-15"
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "12:00"
	Purpose   string `json:"purpose"`
	Status    string `json:"status"`

	// Денормализованные снимки на момент создания
	HallName    string `json:"hallName"`
	FacultyName string `json:"facultyName"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:          b.ID,
		HallID:      b.HallID,
		FacultyID:   b.FacultyID,
		Date:        b.Date.Format(domain.DateFormat),
		StartTime:   b.StartTime.String(),
		EndTime:     b.EndTime.String(),
		Purpose:     b.Purpose,
		Status:      string(b.Status),
		HallName:    b.HallName,
		FacultyName: b.FacultyName,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией.
// Значения чувствительны к регистру: "pending" не является допустимым статусом.
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	for _, valid := range domain.ValidStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}

package create_booking

import (
	"time"

	"github.com/seminarhub/hall-booking-service/internal/domain"
	createBooking "github.com/seminarhub/hall-booking-service/internal/usecase/create_booking"
	"github.com/seminarhub/hall-booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	HallID    int64  `json:"hallId"`
	Date      string `json:"date"`      // "2026-09-15"
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "12:00"
	Purpose   string `json:"purpose"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64  `json:"id"`
	HallID      int64  `json:"hallId"`
	FacultyID   int64  `json:"facultyId"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Purpose     string `json:"purpose"`
	Status      string `json:"status"`
	HallName    string `json:"hallName"`
	FacultyName string `json:"facultyName"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(requester domain.Requester) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Requester: requester,
		HallID:    r.HallID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		Purpose:   r.Purpose,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		HallID:      resp.HallID,
		FacultyID:   resp.FacultyID,
		Date:        resp.Date.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		EndTime:     resp.EndTime.String(),
		Purpose:     resp.Purpose,
		Status:      resp.Status,
		HallName:    resp.HallName,
		FacultyName: resp.FacultyName,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}

package update_booking

import (
	"time"

	"github.com/seminarhub/hall-booking-service/internal/domain"
	updateBooking "github.com/seminarhub/hall-booking-service/internal/usecase/update_booking"
	"github.com/seminarhub/hall-booking-service/pkg/types"
)

// UpdateBookingRequest HTTP request model.
// Все поля опциональны, отсутствующие не изменяются.
type UpdateBookingRequest struct {
	Date      *string `json:"date,omitempty"`      // "2026-09-15"
	StartTime *string `json:"startTime,omitempty"` // "10:00"
	EndTime   *string `json:"endTime,omitempty"`   // "12:00"
	Purpose   *string `json:"purpose,omitempty"`
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
func (r *UpdateBookingRequest) ToUseCaseRequest(requester domain.Requester, bookingID int64) (*updateBooking.Request, error) {
	req := &updateBooking.Request{
		Requester: requester,
		BookingID: bookingID,
		Purpose:   r.Purpose,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if r.StartTime != nil {
		startTime, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = &startTime
	}

	if r.EndTime != nil {
		endTime, err := types.NewTimeStringFromString(*r.EndTime)
		if err != nil {
			return nil, err
		}
		req.EndTime = &endTime
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *BookingResponse {
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

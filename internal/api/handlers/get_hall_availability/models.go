package get_hall_availability

import (
	getHallAvailability "github.com/seminarhub/hall-booking-service/internal/usecase/get_hall_availability"
)

// BusySlot занятый интервал в HTTP ответе
type BusySlot struct {
	BookingID int64  `json:"bookingId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	HallID   int64      `json:"hallId"`
	HallName string     `json:"hallName"`
	Date     string     `json:"date"`
	Busy     []BusySlot `json:"busy"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getHallAvailability.Response) *AvailabilityResponse {
	busy := make([]BusySlot, len(resp.Busy))
	for i, slot := range resp.Busy {
		busy[i] = BusySlot{
			BookingID: slot.BookingID,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			Status:    slot.Status,
		}
	}

	return &AvailabilityResponse{
		HallID:   resp.HallID,
		HallName: resp.HallName,
		Date:     resp.Date,
		Busy:     busy,
	}
}

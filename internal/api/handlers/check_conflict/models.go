package check_conflict

import (
	"time"

	"github.com/seminarhub/hall-booking-service/internal/domain"
	checkConflict "github.com/seminarhub/hall-booking-service/internal/usecase/check_conflict"
	"github.com/seminarhub/hall-booking-service/pkg/types"
)

// CheckConflictRequest HTTP request model
type CheckConflictRequest struct {
	HallID           int64  `json:"hallId"`
	Date             string `json:"date"`      // "2026-09-15"
	StartTime        string `json:"startTime"` // "10:00"
	EndTime          string `json:"endTime"`   // "12:00"
	ExcludeBookingID *int64 `json:"excludeBookingId,omitempty"`
}

// CheckConflictResponse HTTP response model
type CheckConflictResponse struct {
	HasConflict bool `json:"hasConflict"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckConflictRequest) ToUseCaseRequest() (*checkConflict.Request, error) {
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

	return &checkConflict.Request{
		HallID:           r.HallID,
		Date:             date,
		StartTime:        startTime,
		EndTime:          endTime,
		ExcludeBookingID: r.ExcludeBookingID,
	}, nil
}

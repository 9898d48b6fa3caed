package list_bookings

import (
	"net/url"
	"strconv"
	"time"

	"github.com/seminarhub/hall-booking-service/internal/domain"
	"github.com/seminarhub/hall-booking-service/internal/service/bookings/models"
)

// parseQuery разбирает query-параметры списка бронирований.
// Поддерживаются hallId, facultyId, startDate, endDate, status
// и includeRejected; все параметры опциональны.
func parseQuery(values url.Values, requester domain.Requester) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{
		Requester: requester,
	}

	if raw := values.Get("hallId"); raw != "" {
		hallID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.HallID = &hallID
	}

	if raw := values.Get("facultyId"); raw != "" {
		facultyID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.FacultyID = &facultyID
	}

	if raw := values.Get("startDate"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if raw := values.Get("endDate"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if raw := values.Get("status"); raw != "" {
		req.Status = &raw
	}

	if raw := values.Get("includeRejected"); raw != "" {
		includeRejected, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		req.IncludeRejected = includeRejected
	}

	return req, nil
}

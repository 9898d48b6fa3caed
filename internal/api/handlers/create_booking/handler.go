package create_booking

import (
	"errors"
	"net/http"

	"github.com/seminarhub/hall-booking-service/internal/api/handlers"
	"github.com/seminarhub/hall-booking-service/internal/api/middleware"
	createBooking "github.com/seminarhub/hall-booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUser        = "отсутствуют данные пользователя"
	msgSlotConflict       = "временной интервал пересекается с существующим бронированием"
	msgHallNotFound       = "зал не найден"
	msgFacultyNotFound    = "преподаватель не найден"
	msgInvalidDate        = "дата бронирования не может быть в прошлом"
	msgInvalidTimeRange   = "время окончания должно быть позже времени начала"
	msgInvalidPurpose     = "цель бронирования должна содержать от 5 до 500 символов"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requester, ok := middleware.GetRequester(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing requester in context")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(requester)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: user_id=%d, hall_id=%d", requester.UserID, req.HallID)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createBooking.ErrHallNotFound):
			h.logger.Warn("POST /bookings - Hall not found: hall_id=%d", req.HallID)
			handlers.RespondNotFound(w, msgHallNotFound)

		case errors.Is(err, createBooking.ErrFacultyNotFound):
			h.logger.Warn("POST /bookings - Faculty not found: user_id=%d", requester.UserID)
			handlers.RespondNotFound(w, msgFacultyNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: user_id=%d, hall_id=%d", requester.UserID, req.HallID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrInvalidTimeRange):
			h.logger.Warn("POST /bookings - Invalid time range: user_id=%d, hall_id=%d", requester.UserID, req.HallID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createBooking.ErrInvalidPurpose):
			h.logger.Warn("POST /bookings - Invalid purpose: user_id=%d, hall_id=%d", requester.UserID, req.HallID)
			handlers.RespondBadRequest(w, msgInvalidPurpose)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", requester.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, hall_id=%d, error=%v",
				requester.UserID, req.HallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, hall_id=%d",
		result.ID, requester.UserID, req.HallID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

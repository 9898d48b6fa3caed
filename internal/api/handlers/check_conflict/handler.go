package check_conflict

import (
	"errors"
	"net/http"

	"github.com/seminarhub/hall-booking-service/internal/api/handlers"
	checkConflict "github.com/seminarhub/hall-booking-service/internal/usecase/check_conflict"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidTimeRange   = "время окончания должно быть позже времени начала"
)

type Handler struct {
	useCase CheckConflictUseCase
	logger  Logger
}

func NewHandler(useCase CheckConflictUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/check-conflict
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckConflictRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/check-conflict - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/check-conflict - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkConflict.ErrInvalidTimeRange):
			h.logger.Warn("POST /bookings/check-conflict - Invalid time range: hall_id=%d", req.HallID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, checkConflict.ErrInvalidInput):
			h.logger.Warn("POST /bookings/check-conflict - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings/check-conflict - Check failed: hall_id=%d, error=%v", req.HallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/check-conflict - Checked: hall_id=%d, has_conflict=%t",
		req.HallID, result.HasConflict)
	handlers.RespondJSON(w, http.StatusOK, CheckConflictResponse{HasConflict: result.HasConflict})
}

package get_hall_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/seminarhub/hall-booking-service/internal/api/handlers"
	"github.com/seminarhub/hall-booking-service/internal/domain"
	getHallAvailability "github.com/seminarhub/hall-booking-service/internal/usecase/get_hall_availability"
)

const (
	msgInvalidHallID = "некорректный ID зала"
	msgInvalidDate   = "некорректный параметр date, ожидается YYYY-MM-DD"
	msgHallNotFound  = "зал не найден"
)

type Handler struct {
	useCase GetHallAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetHallAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/halls/{hallId}/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hallID, err := strconv.ParseInt(vars["hallId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /halls/{id}/availability - Invalid hall ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHallID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /halls/{id}/availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getHallAvailability.Request{
		HallID: hallID,
		Date:   date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getHallAvailability.ErrHallNotFound):
			h.logger.Warn("GET /halls/{id}/availability - Hall not found: hall_id=%d", hallID)
			handlers.RespondNotFound(w, msgHallNotFound)

		case errors.Is(err, getHallAvailability.ErrInvalidInput):
			h.logger.Warn("GET /halls/{id}/availability - Invalid input: hall_id=%d, error=%v", hallID, err)
			handlers.RespondBadRequest(w, msgInvalidHallID)

		default:
			h.logger.Error("GET /halls/{id}/availability - Failed: hall_id=%d, error=%v", hallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /halls/{id}/availability - Retrieved %d busy slots: hall_id=%d, date=%s",
		len(result.Busy), hallID, result.Date)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

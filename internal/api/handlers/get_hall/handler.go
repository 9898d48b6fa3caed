package get_hall

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/seminarhub/hall-booking-service/internal/api/handlers"
	"github.com/seminarhub/hall-booking-service/internal/service/halls"
)

const (
	msgInvalidHallID = "некорректный ID зала"
	msgNotFound      = "зал не найден"
)

type Handler struct {
	service HallService
	logger  Logger
}

func NewHandler(service HallService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/halls/{hallId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hallID, err := strconv.ParseInt(vars["hallId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /halls/{id} - Invalid hall ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHallID)
		return
	}

	hall, err := h.service.GetByID(r.Context(), hallID)
	if err != nil {
		switch {
		case errors.Is(err, halls.ErrHallNotFound):
			h.logger.Warn("GET /halls/{id} - Hall not found: hall_id=%d", hallID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /halls/{id} - Failed to get hall: hall_id=%d, error=%v", hallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /halls/{id} - Hall retrieved successfully: hall_id=%d", hallID)
	handlers.RespondJSON(w, http.StatusOK, hall)
}

package delete_hall

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/seminarhub/hall-booking-service/internal/api/handlers"
	"github.com/seminarhub/hall-booking-service/internal/api/middleware"
	"github.com/seminarhub/hall-booking-service/internal/service/halls"
)

const (
	msgInvalidHallID = "некорректный ID зала"
	msgMissingUser   = "отсутствуют данные пользователя"
	msgNotFound      = "зал не найден"
	msgForbidden     = "управление залами доступно только администраторам"
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

// Handle DELETE /api/v1/halls/{hallId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hallID, err := strconv.ParseInt(vars["hallId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /halls/{id} - Invalid hall ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHallID)
		return
	}

	requester, ok := middleware.GetRequester(r.Context())
	if !ok {
		h.logger.Warn("DELETE /halls/{id} - Missing requester in context")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	if err := h.service.Delete(r.Context(), hallID, requester); err != nil {
		switch {
		case errors.Is(err, halls.ErrHallNotFound):
			h.logger.Warn("DELETE /halls/{id} - Hall not found: hall_id=%d", hallID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, halls.ErrAccessDenied):
			h.logger.Warn("DELETE /halls/{id} - Access denied: hall_id=%d, user_id=%d", hallID, requester.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /halls/{id} - Failed to delete hall: hall_id=%d, error=%v", hallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /halls/{id} - Hall deleted successfully: hall_id=%d, user_id=%d",
		hallID, requester.UserID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

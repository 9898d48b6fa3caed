package list_halls

import (
	"net/http"

	"github.com/seminarhub/hall-booking-service/internal/api/handlers"
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

// Handle GET /api/v1/halls
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /halls - Failed to list halls: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /halls - Listed %d halls", len(result.Halls))
	handlers.RespondJSON(w, http.StatusOK, result)
}

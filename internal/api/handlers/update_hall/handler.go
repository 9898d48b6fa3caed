package update_hall

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/seminarhub/hall-booking-service/internal/api/handlers"
	"github.com/seminarhub/hall-booking-service/internal/api/middleware"
	"github.com/seminarhub/hall-booking-service/internal/service/halls"
	"github.com/seminarhub/hall-booking-service/internal/service/halls/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidHallID      = "некорректный ID зала"
	msgMissingUser        = "отсутствуют данные пользователя"
	msgNotFound           = "зал не найден"
	msgForbidden          = "управление залами доступно только администраторам"
	msgAlreadyExists      = "зал с таким названием уже существует"
	msgInvalidInput       = "некорректные данные зала"
)

// UpdateHallRequest HTTP request model.
// Все поля опциональны, отсутствующие не изменяются.
type UpdateHallRequest struct {
	Name      *string   `json:"name,omitempty"`
	Capacity  *int      `json:"capacity,omitempty"`
	Equipment *[]string `json:"equipment,omitempty"`
	ImageURL  *string   `json:"imageUrl,omitempty"`
}

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

// Handle PATCH /api/v1/halls/{hallId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hallID, err := strconv.ParseInt(vars["hallId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /halls/{id} - Invalid hall ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHallID)
		return
	}

	requester, ok := middleware.GetRequester(r.Context())
	if !ok {
		h.logger.Warn("PATCH /halls/{id} - Missing requester in context")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req UpdateHallRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /halls/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), hallID, &models.UpdateHallRequest{
		Requester: requester,
		Name:      req.Name,
		Capacity:  req.Capacity,
		Equipment: req.Equipment,
		ImageURL:  req.ImageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, halls.ErrHallNotFound):
			h.logger.Warn("PATCH /halls/{id} - Hall not found: hall_id=%d", hallID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, halls.ErrAccessDenied):
			h.logger.Warn("PATCH /halls/{id} - Access denied: hall_id=%d, user_id=%d", hallID, requester.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, halls.ErrHallAlreadyExists):
			h.logger.Warn("PATCH /halls/{id} - Name already taken: hall_id=%d", hallID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyExists)

		case errors.Is(err, halls.ErrInvalidInput):
			h.logger.Warn("PATCH /halls/{id} - Invalid input: hall_id=%d, error=%v", hallID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /halls/{id} - Failed to update hall: hall_id=%d, error=%v", hallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /halls/{id} - Hall updated successfully: hall_id=%d", hallID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package create_hall

import (
	"errors"
	"net/http"

	"github.com/seminarhub/hall-booking-service/internal/api/handlers"
	"github.com/seminarhub/hall-booking-service/internal/api/middleware"
	"github.com/seminarhub/hall-booking-service/internal/service/halls"
	"github.com/seminarhub/hall-booking-service/internal/service/halls/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUser        = "отсутствуют данные пользователя"
	msgForbidden          = "управление залами доступно только администраторам"
	msgAlreadyExists      = "зал с таким названием уже существует"
	msgInvalidInput       = "некорректные данные зала"
)

// CreateHallRequest HTTP request model
type CreateHallRequest struct {
	Name      string   `json:"name"`
	Capacity  int      `json:"capacity"`
	Equipment []string `json:"equipment,omitempty"`
	ImageURL  *string  `json:"imageUrl,omitempty"`
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

// Handle POST /api/v1/halls
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requester, ok := middleware.GetRequester(r.Context())
	if !ok {
		h.logger.Warn("POST /halls - Missing requester in context")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req CreateHallRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /halls - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &models.CreateHallRequest{
		Requester: requester,
		Name:      req.Name,
		Capacity:  req.Capacity,
		Equipment: req.Equipment,
		ImageURL:  req.ImageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, halls.ErrAccessDenied):
			h.logger.Warn("POST /halls - Access denied: user_id=%d", requester.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, halls.ErrHallAlreadyExists):
			h.logger.Warn("POST /halls - Hall already exists: name=%q", req.Name)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyExists)

		case errors.Is(err, halls.ErrInvalidInput):
			h.logger.Warn("POST /halls - Invalid input: name=%q, error=%v", req.Name, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /halls - Failed to create hall: name=%q, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /halls - Hall created successfully: hall_id=%d, name=%q", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

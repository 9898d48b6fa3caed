package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/seminarhub/hall-booking-service/internal/api/handlers"
	"github.com/seminarhub/hall-booking-service/internal/domain"
)

type contextKey string

const requesterKey contextKey = "requester"

const (
	// HeaderUserID заголовок с ID аутентифицированного пользователя.
	// Заголовки проставляет API-гейтвей после проверки учетных данных.
	HeaderUserID = "X-User-ID"

	// HeaderUserRole заголовок с ролью пользователя (admin или faculty)
	HeaderUserRole = "X-User-Role"
)

// Auth middleware аутентификации по заголовкам гейтвея.
// Запросы без корректных X-User-ID и X-User-Role отклоняются.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(HeaderUserID)
		if userIDStr == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок X-User-ID")
			return
		}

		role, err := domain.ParseRole(r.Header.Get(HeaderUserRole))
		if err != nil {
			handlers.RespondUnauthorized(w, "некорректный заголовок X-User-Role")
			return
		}

		requester := domain.Requester{
			UserID: userID,
			Role:   role,
		}

		ctx := context.WithValue(r.Context(), requesterKey, requester)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequester извлекает аутентифицированного пользователя из контекста
func GetRequester(ctx context.Context) (domain.Requester, bool) {
	requester, ok := ctx.Value(requesterKey).(domain.Requester)
	return requester, ok
}

package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/plastinin/catalog/internal/adapter/http/dto"
	"go.uber.org/zap"
)

type userIDKey struct{}

// WithUserID кладёт id пользователя в контекст
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromContext возвращает id пользователя, выставленный NewUserMiddleware
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	return id, ok && id != uuid.Nil
}

// NewUserMiddleware читает id пользователя из заголовка, который выставляет
// auth-прокси перед сервисом. Запросы без корректного id отклоняются с 401.
func NewUserMiddleware(header string, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get(header))
			id, err := uuid.Parse(raw)
			if err != nil || id == uuid.Nil {
				logger.Debug("Rejected request without user",
					zap.String("path", r.URL.Path),
					zap.String("header", header),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(dto.NewErrorResponse("unauthorized", "User ID header is missing or invalid"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), id)))
		})
	}
}

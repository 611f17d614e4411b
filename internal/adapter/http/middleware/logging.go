package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// StatusClientClosedRequest клиент закрыл соединение до ответа
const StatusClientClosedRequest = 499

// NewLoggingMiddleware логирует HTTP запросы.
// userHeader заголовок с id пользователя, попадает в лог как user_id.
func NewLoggingMiddleware(logger *zap.Logger, userHeader string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Оборачиваем ResponseWriter для получения статуса
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				level := zapcore.InfoLevel
				switch {
				case ww.Status() >= http.StatusInternalServerError:
					level = zapcore.ErrorLevel
				case ww.Status() == StatusClientClosedRequest:
					level = zapcore.WarnLevel
				}

				logger.Log(level, "HTTP request",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("query", r.URL.RawQuery),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("duration", time.Since(start)),
					zap.String("request_id", middleware.GetReqID(r.Context())),
					zap.String("user_id", r.Header.Get(userHeader)),
					zap.String("remote_addr", r.RemoteAddr),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

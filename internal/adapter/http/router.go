package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/plastinin/catalog/internal/adapter/http/handler"
	httpmiddleware "github.com/plastinin/catalog/internal/adapter/http/middleware"
	"go.uber.org/zap"
)

// NewRouter создаёт и настраивает HTTP роутер.
// userHeader заголовок с id пользователя от auth-прокси.
func NewRouter(
	catalogHandler *handler.CatalogHandler,
	healthHandler *handler.HealthHandler,
	userHeader string,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httpmiddleware.NewLoggingMiddleware(logger, userHeader))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	// Health check (вне версионирования API)
	r.Get("/health", healthHandler.Check)
	r.Get("/ready", healthHandler.Ready)

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(httpmiddleware.NewUserMiddleware(userHeader, logger))

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", catalogHandler.ListCategories)
			r.Get("/{id}", catalogHandler.GetCategory)
		})

		r.Route("/items", func(r chi.Router) {
			r.Get("/", catalogHandler.ListItems)
			r.Get("/recent", catalogHandler.RecentItems)
		})
	})

	return r
}

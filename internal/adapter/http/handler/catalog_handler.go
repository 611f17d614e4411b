package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/plastinin/catalog/internal/adapter/http/dto"
	"github.com/plastinin/catalog/internal/adapter/http/middleware"
	"github.com/plastinin/catalog/internal/domain"
	"github.com/plastinin/catalog/internal/listing"
	"go.uber.org/zap"
)

// CatalogService запросы каталога, которые обслуживает CatalogHandler
type CatalogService interface {
	ListCategories(ctx context.Context, q domain.CategoryListQuery) (*listing.Page[domain.CategoryView], error)
	GetCategory(ctx context.Context, q domain.CategoryQuery) (*domain.CategoryView, error)
	ListItems(ctx context.Context, q domain.ItemListQuery) (*listing.Page[domain.ItemView], error)
	RecentItems(ctx context.Context, q domain.RecentItemsQuery) ([]domain.ItemView, error)
}

// CatalogHandler обработчик HTTP запросов каталога
type CatalogHandler struct {
	catalog CatalogService
	limits  dto.Limits
	logger  *zap.Logger
}

// NewCatalogHandler создаёт новый CatalogHandler
func NewCatalogHandler(catalog CatalogService, limits dto.Limits, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		limits:  limits,
		logger:  logger,
	}
}

// ListCategories возвращает категории пользователя
// GET /api/v1/categories?page=1&count=5&ordering=desc&type=films&search=star
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var params dto.CategoryListParams
	if err := dto.DecodeQuery(&params, r.URL.Query()); err != nil {
		h.handleError(w, r, err)
		return
	}
	q, err := params.Query(userID, h.limits)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	page, err := h.catalog.ListCategories(r.Context(), q)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.CategoryListFromDomain(page))
}

// GetCategory возвращает категорию со всеми элементами
// GET /api/v1/categories/{id}
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.respondError(w, http.StatusBadRequest, "invalid_id", "Invalid category ID format")
		return
	}

	category, err := h.catalog.GetCategory(r.Context(), domain.CategoryQuery{ID: id, UserID: userID})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.CategoryDetailsFromDomain(category))
}

// ListItems возвращает элементы пользователя
// GET /api/v1/items?page=1&count=5&ordering=asc&categoryId=1&tier=S
func (h *CatalogHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var params dto.ItemListParams
	if err := dto.DecodeQuery(&params, r.URL.Query()); err != nil {
		h.handleError(w, r, err)
		return
	}
	q, err := params.Query(userID, h.limits)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	page, err := h.catalog.ListItems(r.Context(), q)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.ItemListFromDomain(page))
}

// RecentItems возвращает последние элементы пользователя
// GET /api/v1/items/recent?page=1&count=5&categoryId=1
func (h *CatalogHandler) RecentItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var params dto.RecentItemsParams
	if err := dto.DecodeQuery(&params, r.URL.Query()); err != nil {
		h.handleError(w, r, err)
		return
	}
	q, err := params.Query(userID, h.limits)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	list, err := h.catalog.RecentItems(r.Context(), q)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.ItemsFromDomain(list))
}

func (h *CatalogHandler) userID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "unauthorized", "User ID is required")
	}
	return id, ok
}

// handleError сопоставляет ошибку со статусом ответа
func (h *CatalogHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, dto.ErrInvalidParams),
		errors.Is(err, domain.ErrInvalidTier),
		errors.Is(err, domain.ErrInvalidCategoryType),
		errors.Is(err, listing.ErrInvalidOrdering):
		h.respondError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, domain.ErrUserRequired):
		h.respondError(w, http.StatusUnauthorized, "unauthorized", "User ID is required")
	case errors.Is(err, domain.ErrCategoryNotFound):
		h.respondError(w, http.StatusNotFound, "not_found", "Category not found")
	case listing.IsCanceled(r.Context(), err):
		h.respondError(w, middleware.StatusClientClosedRequest, "canceled", "Request canceled")
	default:
		h.logger.Error("Catalog request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		h.respondError(w, http.StatusInternalServerError, "internal_error", "Failed to load catalog")
	}
}

// respondJSON отправляет JSON ответ
func (h *CatalogHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

// respondError отправляет ответ с ошибкой
func (h *CatalogHandler) respondError(w http.ResponseWriter, status int, errCode string, message string) {
	h.respondJSON(w, status, dto.NewErrorResponse(errCode, message))
}

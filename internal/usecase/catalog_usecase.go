package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/plastinin/catalog/internal/domain"
	"github.com/plastinin/catalog/internal/listing"
	"go.uber.org/zap"
)

// CatalogUseCase запросы чтения каталога
type CatalogUseCase struct {
	categories CategoryRepository
	items      ItemRepository
	images     ImageLinker
	logger     *zap.Logger
}

// NewCatalogUseCase создаёт новый экземпляр CatalogUseCase.
// images может быть nil, тогда src возвращается без изменений.
func NewCatalogUseCase(
	categories CategoryRepository,
	items ItemRepository,
	images ImageLinker,
	logger *zap.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		categories: categories,
		items:      items,
		images:     images,
		logger:     logger,
	}
}

// ListCategories возвращает страницу категорий пользователя
func (uc *CatalogUseCase) ListCategories(ctx context.Context, q domain.CategoryListQuery) (*listing.Page[domain.CategoryView], error) {
	if q.UserID == uuid.Nil {
		return nil, domain.ErrUserRequired
	}

	page, err := uc.categories.List(ctx, q)
	if err != nil {
		uc.logFailure(ctx, "Failed to list categories", q.UserID, err)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	for i := range page.List {
		uc.resolveSrc(ctx, &page.List[i].Src)
	}

	uc.logger.Debug("Categories listed",
		zap.String("user_id", q.UserID.String()),
		zap.Int("page", q.Page),
		zap.Int("count", len(page.List)),
		zap.Int("total", page.Total),
	)

	return page, nil
}

// GetCategory возвращает категорию со всеми элементами
func (uc *CatalogUseCase) GetCategory(ctx context.Context, q domain.CategoryQuery) (*domain.CategoryView, error) {
	if q.UserID == uuid.Nil {
		return nil, domain.ErrUserRequired
	}

	category, err := uc.categories.GetByID(ctx, q)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return nil, err
		}
		uc.logFailure(ctx, "Failed to get category", q.UserID, err)
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	uc.resolveSrc(ctx, &category.Src)
	for i := range category.Items {
		uc.resolveSrc(ctx, &category.Items[i].Src)
	}

	return category, nil
}

// ListItems возвращает страницу элементов пользователя
func (uc *CatalogUseCase) ListItems(ctx context.Context, q domain.ItemListQuery) (*listing.Page[domain.ItemView], error) {
	if q.UserID == uuid.Nil {
		return nil, domain.ErrUserRequired
	}

	page, err := uc.items.List(ctx, q)
	if err != nil {
		uc.logFailure(ctx, "Failed to list items", q.UserID, err)
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	for i := range page.List {
		uc.resolveSrc(ctx, &page.List[i].Src)
	}

	return page, nil
}

// RecentItems возвращает последние элементы пользователя
func (uc *CatalogUseCase) RecentItems(ctx context.Context, q domain.RecentItemsQuery) ([]domain.ItemView, error) {
	if q.UserID == uuid.Nil {
		return nil, domain.ErrUserRequired
	}

	list, err := uc.items.Recent(ctx, q)
	if err != nil {
		uc.logFailure(ctx, "Failed to list recent items", q.UserID, err)
		return nil, fmt.Errorf("failed to list recent items: %w", err)
	}

	for i := range list {
		uc.resolveSrc(ctx, &list[i].Src)
	}

	return list, nil
}

// resolveSrc заменяет src ссылкой для клиента.
// При ошибке сохраняется исходное значение.
func (uc *CatalogUseCase) resolveSrc(ctx context.Context, src *string) {
	if uc.images == nil || *src == "" {
		return
	}

	link, err := uc.images.Resolve(ctx, *src)
	if err != nil {
		uc.logger.Warn("Failed to resolve image link",
			zap.String("src", *src),
			zap.Error(err),
		)
		return
	}
	*src = link
}

// logFailure отмена запроса клиентом не является ошибкой сервиса
func (uc *CatalogUseCase) logFailure(ctx context.Context, msg string, userID uuid.UUID, err error) {
	if listing.IsCanceled(ctx, err) {
		uc.logger.Info(msg,
			zap.String("user_id", userID.String()),
			zap.String("reason", "canceled"),
		)
		return
	}
	uc.logger.Error(msg,
		zap.String("user_id", userID.String()),
		zap.Error(err),
	)
}

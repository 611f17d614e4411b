package usecase

import (
	"context"

	"github.com/plastinin/catalog/internal/domain"
	"github.com/plastinin/catalog/internal/listing"
)

// CategoryRepository интерфейс чтения категорий
type CategoryRepository interface {
	List(ctx context.Context, q domain.CategoryListQuery) (*listing.Page[domain.CategoryView], error)
	GetByID(ctx context.Context, q domain.CategoryQuery) (*domain.CategoryView, error)
}

// ItemRepository интерфейс чтения элементов
type ItemRepository interface {
	List(ctx context.Context, q domain.ItemListQuery) (*listing.Page[domain.ItemView], error)
	Recent(ctx context.Context, q domain.RecentItemsQuery) ([]domain.ItemView, error)
}

// ImageLinker интерфейс выдачи ссылок на изображения (S3)
type ImageLinker interface {
	Resolve(ctx context.Context, src string) (string, error)
}

package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/plastinin/catalog/internal/domain"
	"github.com/plastinin/catalog/internal/listing"
)

var (
	itemsTable = listing.Table[domain.Item]{Name: "items"}

	itemProjection = listing.Projection[domain.Item, domain.ItemView]{
		Columns: []string{
			"items.id",
			"items.category_id",
			"items.title",
			"items.description",
			"items.tier",
			"items.src",
		},
		Scan: func(row listing.Scanner) (domain.ItemView, error) {
			var v domain.ItemView
			err := row.Scan(&v.ID, &v.CategoryID, &v.Title, &v.Description, &v.Tier, &v.Src)
			return v, err
		},
	}
)

// ItemRepository запросы чтения элементов
type ItemRepository struct {
	list   *listing.Lister[domain.ItemListQuery, domain.Item, domain.ItemView]
	recent *listing.Lister[domain.RecentItemsQuery, domain.Item, domain.ItemView]
}

// NewItemRepository создаёт новый экземпляр ItemRepository
func NewItemRepository(db listing.Queryer, format sq.PlaceholderFormat) *ItemRepository {
	return &ItemRepository{
		list: newItemLister(db, format),
		recent: listing.New(db, format, listing.Config[domain.RecentItemsQuery, domain.Item, domain.ItemView]{
			Table:      itemsTable,
			Projection: itemProjection,
			Filter:     filterRecentItems,
			Strategy:   listing.OwnerRecent,
		}),
	}
}

func newItemLister(db listing.Queryer, format sq.PlaceholderFormat) *listing.Lister[domain.ItemListQuery, domain.Item, domain.ItemView] {
	return listing.New(db, format, listing.Config[domain.ItemListQuery, domain.Item, domain.ItemView]{
		Table:      itemsTable,
		Projection: itemProjection,
		Filter:     filterItems,
		Strategy:   listing.Global,
	})
}

// List возвращает страницу элементов пользователя с общим количеством
func (r *ItemRepository) List(ctx context.Context, q domain.ItemListQuery) (*listing.Page[domain.ItemView], error) {
	return r.list.Page(ctx, q)
}

// Recent возвращает последние элементы пользователя, новые первыми
func (r *ItemRepository) Recent(ctx context.Context, q domain.RecentItemsQuery) ([]domain.ItemView, error) {
	return r.recent.List(ctx, q)
}

func filterItems(_ context.Context, query sq.SelectBuilder, req domain.ItemListQuery) (sq.SelectBuilder, error) {
	query = query.Where(sq.Expr("items.user_id = ?", req.UserID.String()))

	if req.CategoryID != nil {
		query = query.Where(sq.Eq{"items.category_id": *req.CategoryID})
	}
	if req.Tier != nil {
		if !req.Tier.IsValid() {
			return query, domain.ErrInvalidTier
		}
		query = query.Where(sq.Eq{"items.tier": int(*req.Tier)})
	}

	return query, nil
}

// Владелец уже ограничен стратегией OwnerRecent
func filterRecentItems(_ context.Context, query sq.SelectBuilder, req domain.RecentItemsQuery) (sq.SelectBuilder, error) {
	if req.CategoryID != nil {
		query = query.Where(sq.Eq{"items.category_id": *req.CategoryID})
	}
	return query, nil
}

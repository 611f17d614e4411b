package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/plastinin/catalog/internal/domain"
	"github.com/plastinin/catalog/internal/listing"
)

var (
	categoriesTable = listing.Table[domain.Category]{Name: "categories"}

	categoryProjection = listing.Projection[domain.Category, domain.CategoryView]{
		Columns: []string{
			"categories.id",
			"categories.title",
			"categories.description",
			"categories.category_type",
			"categories.src",
			"(SELECT COUNT(*) FROM items WHERE items.category_id = categories.id) AS items_count",
		},
		Scan: func(row listing.Scanner) (domain.CategoryView, error) {
			var v domain.CategoryView
			err := row.Scan(&v.ID, &v.Title, &v.Description, &v.CategoryType, &v.Src, &v.ItemsCount)
			return v, err
		},
	}
)

// CategoryRepository запросы чтения категорий
type CategoryRepository struct {
	db      listing.Queryer
	builder sq.StatementBuilderType
	list    *listing.Lister[domain.CategoryListQuery, domain.Category, domain.CategoryView]
	items   *listing.Lister[domain.ItemListQuery, domain.Item, domain.ItemView]
}

// NewCategoryRepository создаёт новый экземпляр CategoryRepository.
// Для PostgreSQL format = sq.Dollar.
func NewCategoryRepository(db listing.Queryer, format sq.PlaceholderFormat) *CategoryRepository {
	return &CategoryRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(format),
		list: listing.New(db, format, listing.Config[domain.CategoryListQuery, domain.Category, domain.CategoryView]{
			Table:      categoriesTable,
			Projection: categoryProjection,
			Filter:     filterCategories,
			Strategy:   listing.Global,
		}),
		items: newItemLister(db, format),
	}
}

// List возвращает страницу категорий пользователя
func (r *CategoryRepository) List(ctx context.Context, q domain.CategoryListQuery) (*listing.Page[domain.CategoryView], error) {
	return r.list.Page(ctx, q)
}

// GetByID возвращает категорию пользователя вместе со всеми её элементами
func (r *CategoryRepository) GetByID(ctx context.Context, q domain.CategoryQuery) (*domain.CategoryView, error) {
	sqlStr, args, err := r.builder.
		Select(categoryProjection.Columns...).
		From(categoriesTable.Name).
		Where(sq.Expr("categories.id = ?", q.ID)).
		Where(sq.Expr("categories.user_id = ?", q.UserID.String())).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build category query: %w", err)
	}

	category, err := categoryProjection.Scan(r.db.QueryRowContext(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, listing.WrapError(ctx, "failed to get category", err)
	}

	// Page = 0: все элементы категории по возрастанию id
	items, err := r.items.List(ctx, domain.ItemListQuery{
		Request:    listing.Request{UserID: q.UserID},
		CategoryID: &category.ID,
	})
	if err != nil {
		return nil, err
	}
	category.Items = items

	return &category, nil
}

func filterCategories(_ context.Context, query sq.SelectBuilder, req domain.CategoryListQuery) (sq.SelectBuilder, error) {
	query = query.Where(sq.Expr("categories.user_id = ?", req.UserID.String()))

	if req.CategoryType != nil {
		if !req.CategoryType.IsValid() {
			return query, domain.ErrInvalidCategoryType
		}
		query = query.Where(sq.Eq{"categories.category_type": int(*req.CategoryType)})
	}

	if search := strings.TrimSpace(req.Search); search != "" {
		pattern := "%" + escapeLike(strings.ToLower(search)) + "%"
		query = query.Where(sq.Expr(`LOWER(categories.title) LIKE ? ESCAPE '\'`, pattern))
	}

	return query, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

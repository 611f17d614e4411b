package repository

import (
	"context"
	"database/sql"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/plastinin/catalog/internal/domain"
	"github.com/plastinin/catalog/internal/listing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// Схема повторяет migrations/*.sql в диалекте SQLite
const testSchema = `
CREATE TABLE categories (
	id            INTEGER PRIMARY KEY,
	user_id       TEXT NOT NULL,
	title         TEXT NOT NULL,
	description   TEXT NOT NULL DEFAULT '',
	category_type INTEGER NOT NULL DEFAULT 0,
	src           TEXT NOT NULL DEFAULT ''
);
CREATE TABLE items (
	id          INTEGER PRIMARY KEY,
	user_id     TEXT NOT NULL,
	category_id INTEGER NOT NULL REFERENCES categories (id),
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	tier        INTEGER NOT NULL DEFAULT 0,
	src         TEXT NOT NULL DEFAULT ''
);`

type fixture struct {
	db         *sql.DB
	owner      uuid.UUID
	other      uuid.UUID
	categories *CategoryRepository
	items      *ItemRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(testSchema)
	require.NoError(t, err)

	f := &fixture{
		db:         db,
		owner:      uuid.New(),
		other:      uuid.New(),
		categories: NewCategoryRepository(db, sq.Question),
		items:      NewItemRepository(db, sq.Question),
	}

	f.category(t, 1, f.owner, "Star Wars", domain.CategoryTypeFilms)
	f.category(t, 2, f.owner, "Dune books", domain.CategoryTypeBooks)
	f.category(t, 3, f.owner, "Witcher games", domain.CategoryTypeGames)
	f.category(t, 4, f.owner, "100% hits", domain.CategoryTypeNone)
	f.category(t, 5, f.other, "Star Trek", domain.CategoryTypeFilms)

	f.item(t, 1, f.owner, 1, "A New Hope", domain.TierS)
	f.item(t, 2, f.owner, 1, "The Phantom Menace", domain.TierA)
	f.item(t, 3, f.owner, 1, "The Empire Strikes Back", domain.TierS)
	f.item(t, 4, f.owner, 2, "Dune Messiah", domain.TierB)
	f.item(t, 5, f.other, 5, "Wrath of Khan", domain.TierS)

	return f
}

func (f *fixture) category(t *testing.T, id int64, owner uuid.UUID, title string, ct domain.CategoryType) {
	t.Helper()
	_, err := f.db.Exec(
		`INSERT INTO categories (id, user_id, title, category_type, src) VALUES (?, ?, ?, ?, ?)`,
		id, owner.String(), title, int(ct), "covers/category.png",
	)
	require.NoError(t, err)
}

func (f *fixture) item(t *testing.T, id int64, owner uuid.UUID, categoryID int64, title string, tier domain.Tier) {
	t.Helper()
	_, err := f.db.Exec(
		`INSERT INTO items (id, user_id, category_id, title, tier) VALUES (?, ?, ?, ?, ?)`,
		id, owner.String(), categoryID, title, int(tier),
	)
	require.NoError(t, err)
}

func categoryIDs(list []domain.CategoryView) []int64 {
	ids := make([]int64, 0, len(list))
	for _, c := range list {
		ids = append(ids, c.ID)
	}
	return ids
}

func itemIDs(list []domain.ItemView) []int64 {
	ids := make([]int64, 0, len(list))
	for _, i := range list {
		ids = append(ids, i.ID)
	}
	return ids
}

func TestCategoryRepository_List(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("all categories of the user", func(t *testing.T) {
		page, err := f.categories.List(ctx, domain.CategoryListQuery{Request: listing.Request{UserID: f.owner}})
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2, 3, 4}, categoryIDs(page.List))
		assert.Equal(t, 4, page.Total)

		counts := make([]int, 0, len(page.List))
		for _, c := range page.List {
			counts = append(counts, c.ItemsCount)
		}
		assert.Equal(t, []int{3, 1, 0, 0}, counts)
		assert.Equal(t, "Star Wars", page.List[0].Title)
		assert.Equal(t, domain.CategoryTypeFilms, page.List[0].CategoryType)
		assert.Equal(t, "covers/category.png", page.List[0].Src)
	})

	t.Run("second page descending", func(t *testing.T) {
		page, err := f.categories.List(ctx, domain.CategoryListQuery{
			Request: listing.Request{Page: 2, Count: 2, Ordering: listing.Descending, UserID: f.owner},
		})
		require.NoError(t, err)
		assert.Equal(t, []int64{2, 1}, categoryIDs(page.List))
		assert.Equal(t, 4, page.Total)
	})

	t.Run("by type", func(t *testing.T) {
		films := domain.CategoryTypeFilms
		page, err := f.categories.List(ctx, domain.CategoryListQuery{
			Request:      listing.Request{Page: 1, Count: 5, UserID: f.owner},
			CategoryType: &films,
		})
		require.NoError(t, err)
		assert.Equal(t, []int64{1}, categoryIDs(page.List))
		assert.Equal(t, 1, page.Total)
	})

	t.Run("search ignores case and other users", func(t *testing.T) {
		page, err := f.categories.List(ctx, domain.CategoryListQuery{
			Request: listing.Request{Page: 1, Count: 5, UserID: f.owner},
			Search:  "STAR",
		})
		require.NoError(t, err)
		assert.Equal(t, []int64{1}, categoryIDs(page.List))
		assert.Equal(t, 1, page.Total)
	})

	t.Run("search treats wildcards literally", func(t *testing.T) {
		page, err := f.categories.List(ctx, domain.CategoryListQuery{
			Request: listing.Request{UserID: f.owner},
			Search:  "%",
		})
		require.NoError(t, err)
		assert.Equal(t, []int64{4}, categoryIDs(page.List))
	})

	t.Run("invalid type", func(t *testing.T) {
		bad := domain.CategoryType(9)
		_, err := f.categories.List(ctx, domain.CategoryListQuery{
			Request:      listing.Request{UserID: f.owner},
			CategoryType: &bad,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCategoryType)
	})
}

func TestCategoryRepository_GetByID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	category, err := f.categories.GetByID(ctx, domain.CategoryQuery{ID: 1, UserID: f.owner})
	require.NoError(t, err)
	assert.Equal(t, "Star Wars", category.Title)
	assert.Equal(t, 3, category.ItemsCount)
	assert.Equal(t, []int64{1, 2, 3}, itemIDs(category.Items))

	empty, err := f.categories.GetByID(ctx, domain.CategoryQuery{ID: 3, UserID: f.owner})
	require.NoError(t, err)
	assert.Empty(t, empty.Items)

	_, err = f.categories.GetByID(ctx, domain.CategoryQuery{ID: 5, UserID: f.owner})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	_, err = f.categories.GetByID(ctx, domain.CategoryQuery{ID: 99, UserID: f.owner})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestItemRepository_List(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("unpaged", func(t *testing.T) {
		page, err := f.items.List(ctx, domain.ItemListQuery{Request: listing.Request{UserID: f.owner}})
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2, 3, 4}, itemIDs(page.List))
		assert.Equal(t, 4, page.Total)
	})

	t.Run("by category and tier", func(t *testing.T) {
		categoryID := int64(1)
		tier := domain.TierS
		page, err := f.items.List(ctx, domain.ItemListQuery{
			Request:    listing.Request{Page: 1, Count: 1, Ordering: listing.Descending, UserID: f.owner},
			CategoryID: &categoryID,
			Tier:       &tier,
		})
		require.NoError(t, err)
		assert.Equal(t, []int64{3}, itemIDs(page.List))
		assert.Equal(t, 2, page.Total)
		assert.Equal(t, domain.TierS, page.List[0].Tier)
		assert.Equal(t, int64(1), page.List[0].CategoryID)
	})

	t.Run("invalid tier", func(t *testing.T) {
		tier := domain.Tier(7)
		_, err := f.items.List(ctx, domain.ItemListQuery{Request: listing.Request{UserID: f.owner}, Tier: &tier})
		assert.ErrorIs(t, err, domain.ErrInvalidTier)
	})
}

func TestItemRepository_Recent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	list, err := f.items.Recent(ctx, domain.RecentItemsQuery{Request: listing.Request{Page: 1, Count: 5, UserID: f.owner}})
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 3, 2, 1}, itemIDs(list))

	list, err = f.items.Recent(ctx, domain.RecentItemsQuery{Request: listing.Request{Page: 2, Count: 5, UserID: f.owner}})
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 2, 1}, itemIDs(list))

	categoryID := int64(1)
	list, err = f.items.Recent(ctx, domain.RecentItemsQuery{
		Request:    listing.Request{Page: 1, Count: 2, UserID: f.owner},
		CategoryID: &categoryID,
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 2}, itemIDs(list))

	list, err = f.items.Recent(ctx, domain.RecentItemsQuery{Request: listing.Request{Page: 1, Count: 5, UserID: f.other}})
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, itemIDs(list))
}

func TestRepositories_Canceled(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.categories.List(ctx, domain.CategoryListQuery{Request: listing.Request{UserID: f.owner}})
	assert.ErrorIs(t, err, listing.ErrCanceled)

	_, err = f.categories.GetByID(ctx, domain.CategoryQuery{ID: 1, UserID: f.owner})
	assert.ErrorIs(t, err, listing.ErrCanceled)

	_, err = f.items.Recent(ctx, domain.RecentItemsQuery{Request: listing.Request{Page: 1, Count: 5, UserID: f.owner}})
	assert.ErrorIs(t, err, listing.ErrCanceled)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off\_sale\\x`, escapeLike(`50% off_sale\x`))
}

// Package listing реализует обобщённый обработчик списочных запросов:
// фильтрация, подсчёт, сортировка по id, пагинация и проекция в модель чтения.
package listing

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Queryer минимальный интерфейс выполнения запросов (*sql.DB, *sql.Tx, *sql.Conn)
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Scanner строка результата
type Scanner interface {
	Scan(dest ...any) error
}

// Table описывает таблицу хранимых записей типа E
type Table[E any] struct {
	Name        string
	IDColumn    string
	OwnerColumn string
}

func (t Table[E]) column(name string) string {
	return t.Name + "." + name
}

func (t Table[E]) idColumn() string {
	if t.IDColumn == "" {
		return t.column("id")
	}
	return t.column(t.IDColumn)
}

func (t Table[E]) ownerColumn() string {
	if t.OwnerColumn == "" {
		return t.column("user_id")
	}
	return t.column(t.OwnerColumn)
}

// Projection явное преобразование записи E в модель чтения T.
// Columns выбираются самим SQL запросом, Scan собирает T из строки.
type Projection[E, T any] struct {
	Columns []string
	Scan    func(row Scanner) (T, error)
}

// FilterFunc точка расширения для фильтров конкретной сущности.
// Вызывается после ограничения по владельцу и до подсчёта и сортировки.
type FilterFunc[R Requester] func(ctx context.Context, query sq.SelectBuilder, req R) (sq.SelectBuilder, error)

// NoFilter фильтр по умолчанию, возвращает запрос без изменений
func NoFilter[R Requester](_ context.Context, query sq.SelectBuilder, _ R) (sq.SelectBuilder, error) {
	return query, nil
}

// Config настройки Lister
type Config[R Requester, E, T any] struct {
	Table      Table[E]
	Projection Projection[E, T]
	Filter     FilterFunc[R]
	Strategy   Strategy
}

// Lister обобщённый обработчик списка записей E с проекцией в T
type Lister[R Requester, E, T any] struct {
	db         Queryer
	builder    sq.StatementBuilderType
	table      Table[E]
	projection Projection[E, T]
	filter     FilterFunc[R]
	strategy   Strategy
}

// New создаёт Lister. format задаёт стиль плейсхолдеров (sq.Dollar для PostgreSQL).
func New[R Requester, E, T any](db Queryer, format sq.PlaceholderFormat, cfg Config[R, E, T]) *Lister[R, E, T] {
	filter := cfg.Filter
	if filter == nil {
		filter = NoFilter[R]
	}
	strategy := cfg.Strategy
	if strategy.Skip == nil {
		strategy = Global
	}
	return &Lister[R, E, T]{
		db:         db,
		builder:    sq.StatementBuilder.PlaceholderFormat(format),
		table:      cfg.Table,
		projection: cfg.Projection,
		filter:     filter,
		strategy:   strategy,
	}
}

// Page возвращает страницу результатов и общее число записей после фильтров
func (l *Lister[R, E, T]) Page(ctx context.Context, req R) (*Page[T], error) {
	query, err := l.base(ctx, req)
	if err != nil {
		return nil, err
	}

	total, err := l.count(ctx, query)
	if err != nil {
		return nil, err
	}

	list, err := l.fetch(ctx, query, req.ListRequest())
	if err != nil {
		return nil, err
	}

	return &Page[T]{List: list, Total: total}, nil
}

// List возвращает только записи, без общего количества
func (l *Lister[R, E, T]) List(ctx context.Context, req R) ([]T, error) {
	query, err := l.base(ctx, req)
	if err != nil {
		return nil, err
	}
	return l.fetch(ctx, query, req.ListRequest())
}

// base строит запрос без колонок: таблица, владелец, фильтры
func (l *Lister[R, E, T]) base(ctx context.Context, req R) (sq.SelectBuilder, error) {
	query := l.builder.Select().From(l.table.Name)

	if l.strategy.OwnerScoped {
		query = query.Where(sq.Expr(l.table.ownerColumn()+" = ?", req.ListRequest().UserID.String()))
	}

	query, err := l.filter(ctx, query, req)
	if err != nil {
		return query, fmt.Errorf("failed to apply %s filters: %w", l.table.Name, err)
	}
	return query, nil
}

func (l *Lister[R, E, T]) count(ctx context.Context, query sq.SelectBuilder) (int, error) {
	sqlStr, args, err := query.Columns("COUNT(*)").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build %s count query: %w", l.table.Name, err)
	}

	var total int
	if err := l.db.QueryRowContext(ctx, sqlStr, args...).Scan(&total); err != nil {
		return 0, WrapError(ctx, "failed to count "+l.table.Name, err)
	}
	return total, nil
}

func (l *Lister[R, E, T]) fetch(ctx context.Context, query sq.SelectBuilder, req Request) ([]T, error) {
	direction := "ASC"
	if l.strategy.Descending(req) {
		direction = "DESC"
	}
	query = query.
		Columns(l.projection.Columns...).
		OrderBy(l.table.idColumn() + " " + direction)

	if w := l.strategy.Window(req); w.Paged {
		query = query.Limit(w.Limit).Offset(w.Offset)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s list query: %w", l.table.Name, err)
	}

	rows, err := l.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, WrapError(ctx, "failed to query "+l.table.Name, err)
	}
	defer rows.Close()

	list := make([]T, 0)
	for rows.Next() {
		item, err := l.projection.Scan(rows)
		if err != nil {
			return nil, WrapError(ctx, "failed to scan "+l.table.Name, err)
		}
		list = append(list, item)
	}
	if err := rows.Err(); err != nil {
		return nil, WrapError(ctx, "rows iteration error", err)
	}
	// Отмена во время чтения не должна превращаться в усечённый список
	if err := ctx.Err(); err != nil {
		return nil, WrapError(ctx, "failed to list "+l.table.Name, err)
	}

	return list, nil
}

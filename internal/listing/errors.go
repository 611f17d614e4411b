package listing

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrCanceled запрос прерван отменой контекста или сервером БД.
	// Частичный результат в этом случае никогда не возвращается.
	ErrCanceled        = errors.New("list query canceled")
	ErrInvalidOrdering = errors.New("invalid ordering")
)

// IsCanceled проверяет, что ошибка вызвана отменой запроса
func IsCanceled(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrCanceled) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.QueryCanceled {
		return true
	}
	return ctx != nil && ctx.Err() != nil
}

// WrapError оборачивает ошибку доступа к данным операцией op.
// Отмена дополнительно помечается ErrCanceled, исходная причина сохраняется.
func WrapError(ctx context.Context, op string, err error) error {
	if IsCanceled(ctx, err) {
		if errors.Is(err, ErrCanceled) {
			return fmt.Errorf("%s: %w", op, err)
		}
		return fmt.Errorf("%s: %w: %w", op, ErrCanceled, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

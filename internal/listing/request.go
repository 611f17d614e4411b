package listing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Ordering направление сортировки по идентификатору
type Ordering int

const (
	Ascending Ordering = iota
	Descending
)

// ParseOrdering разбирает направление сортировки из строки запроса.
// Пустая строка означает Ascending.
func ParseOrdering(s string) (Ordering, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	n, err := strconv.Atoi(s)
	if err == nil && (n == int(Ascending) || n == int(Descending)) {
		return Ordering(n), nil
	}
	return Ascending, fmt.Errorf("%w: %q", ErrInvalidOrdering, s)
}

func (o Ordering) String() string {
	if o == Descending {
		return "desc"
	}
	return "asc"
}

// Request общие параметры любого списочного запроса.
// Конкретные запросы встраивают его и добавляют свои поля фильтрации.
type Request struct {
	// Page номер страницы, начиная с 1. Page <= 0 отключает пагинацию
	// для стратегий, которые это допускают.
	Page int
	// Count размер страницы
	Count    int
	Ordering Ordering
	// UserID пользователь, от имени которого выполняется запрос.
	// Заполняется до вызова обработчика и считается уже авторизованным.
	UserID uuid.UUID
}

// ListRequest возвращает параметры пагинации запроса
func (r Request) ListRequest() Request {
	return r
}

// Requester ограничение типа для запросов, которые понимает Lister
type Requester interface {
	ListRequest() Request
}

// Page страница результатов и общее число записей после фильтрации
type Page[T any] struct {
	List  []T `json:"list"`
	Total int `json:"total"`
}

package listing

import "math"

// SkipFormula вычисляет, сколько записей пропустить перед страницей page
type SkipFormula func(page, count int) int

// SkipWholePages пропускает целые страницы: count * (page - 1).
// При переполнении возвращает math.MaxInt: такая страница всегда пуста.
func SkipWholePages(page, count int) int {
	if page > 1 && count > 0 && page-1 > math.MaxInt/count {
		return math.MaxInt
	}
	return count * (page - 1)
}

// SkipPageNumber пропускает page - 1 записей независимо от размера страницы.
// Так исторически работает список последних записей пользователя.
// TODO: confirm with product whether recent lists should switch to SkipWholePages.
func SkipPageNumber(page, _ int) int {
	return page - 1
}

// Strategy описывает вариант пагинации списка
type Strategy struct {
	Name string
	Skip SkipFormula
	// AllowUnpaged: Page <= 0 возвращает все отфильтрованные записи
	AllowUnpaged bool
	// OwnerScoped: записи ограничиваются владельцем UserID до фильтров
	OwnerScoped bool
	// ForceDescending: сортировка всегда по убыванию id, Ordering игнорируется
	ForceDescending bool
}

var (
	// Global постраничный список с общим количеством
	Global = Strategy{
		Name:         "global",
		Skip:         SkipWholePages,
		AllowUnpaged: true,
	}

	// OwnerRecent последние записи пользователя, новые первыми
	OwnerRecent = Strategy{
		Name:            "owner-recent",
		Skip:            SkipPageNumber,
		OwnerScoped:     true,
		ForceDescending: true,
	}
)

// Window окно выборки OFFSET/LIMIT
type Window struct {
	Paged  bool
	Offset uint64
	Limit  uint64
}

// Window рассчитывает окно выборки для запроса
func (s Strategy) Window(req Request) Window {
	if req.Page <= 0 && s.AllowUnpaged {
		return Window{}
	}

	skip := s.Skip
	if skip == nil {
		skip = SkipWholePages
	}

	w := Window{Paged: true}
	if offset := skip(req.Page, req.Count); offset > 0 {
		w.Offset = uint64(offset)
	}
	if req.Count > 0 {
		w.Limit = uint64(req.Count)
	}
	return w
}

// Descending сообщает итоговое направление сортировки для запроса
func (s Strategy) Descending(req Request) bool {
	if s.ForceDescending {
		return true
	}
	return req.Ordering != Ascending
}

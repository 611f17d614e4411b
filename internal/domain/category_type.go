package domain

import (
	"errors"
	"strconv"
	"strings"
)

var ErrInvalidCategoryType = errors.New("invalid category type")

// CategoryType тип содержимого категории
type CategoryType int

const (
	CategoryTypeNone  CategoryType = iota
	CategoryTypeGames              // Игры
	CategoryTypeBooks              // Книги
	CategoryTypeFilms              // Фильмы
)

func (c CategoryType) IsValid() bool {
	return c >= CategoryTypeNone && c <= CategoryTypeFilms
}

func (c CategoryType) String() string {
	switch c {
	case CategoryTypeNone:
		return "none"
	case CategoryTypeGames:
		return "games"
	case CategoryTypeBooks:
		return "books"
	case CategoryTypeFilms:
		return "films"
	}
	return "CategoryType(" + strconv.Itoa(int(c)) + ")"
}

// ParseCategoryType разбирает тип категории по имени или числу
func ParseCategoryType(s string) (CategoryType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if c := CategoryType(n); c.IsValid() {
			return c, nil
		}
		return CategoryTypeNone, ErrInvalidCategoryType
	}
	for c := CategoryTypeNone; c <= CategoryTypeFilms; c++ {
		if c.String() == s {
			return c, nil
		}
	}
	return CategoryTypeNone, ErrInvalidCategoryType
}

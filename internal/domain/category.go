package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/plastinin/catalog/internal/listing"
)

// Category категория пользователя, хранимая запись
type Category struct {
	ID           int64
	UserID       uuid.UUID
	Title        string
	Description  string
	CategoryType CategoryType
	Src          string // внешний URL или ключ объекта в S3
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CategoryView модель чтения категории
type CategoryView struct {
	ID           int64        `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	CategoryType CategoryType `json:"categoryType"`
	Src          string       `json:"src"`
	ItemsCount   int          `json:"itemsCount"`
	Items        []ItemView   `json:"items,omitempty"`
}

// CategoryListQuery список категорий пользователя
type CategoryListQuery struct {
	listing.Request
	CategoryType *CategoryType
	// Search подстрока названия без учёта регистра
	Search string
}

// CategoryQuery одна категория вместе со всеми её элементами
type CategoryQuery struct {
	ID     int64
	UserID uuid.UUID
}

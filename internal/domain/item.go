package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/plastinin/catalog/internal/listing"
)

// Item элемент категории (игра, книга, фильм)
type Item struct {
	ID          int64
	UserID      uuid.UUID
	CategoryID  int64
	Title       string
	Description string
	Tier        Tier
	Src         string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ItemView модель чтения элемента
type ItemView struct {
	ID          int64  `json:"id"`
	CategoryID  int64  `json:"categoryId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Tier        Tier   `json:"tier"`
	Src         string `json:"src"`
}

// ItemListQuery список элементов пользователя
type ItemListQuery struct {
	listing.Request
	CategoryID *int64
	Tier       *Tier
}

// RecentItemsQuery последние добавленные элементы пользователя
type RecentItemsQuery struct {
	listing.Request
	CategoryID *int64
}

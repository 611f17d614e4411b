package dto

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/plastinin/catalog/internal/domain"
	"github.com/plastinin/catalog/internal/listing"
)

// Limits ограничения размера страницы
type Limits struct {
	DefaultCount int
	MaxCount     int
}

// ListParams общие параметры списков
// GET ...?page=1&count=5&ordering=desc
type ListParams struct {
	Page     *int   `schema:"page"`
	Count    *int   `schema:"count" validate:"omitempty,gte=1"`
	Ordering string `schema:"ordering"`
}

// request собирает listing.Request. defaultPage используется, если page не передан.
func (p ListParams) request(userID uuid.UUID, defaultPage int, limits Limits) (listing.Request, error) {
	req := listing.Request{
		Page:   defaultPage,
		Count:  limits.DefaultCount,
		UserID: userID,
	}
	if p.Page != nil {
		req.Page = *p.Page
	}
	if p.Count != nil {
		if limits.MaxCount > 0 && *p.Count > limits.MaxCount {
			return req, fmt.Errorf("%w: count must not exceed %d", ErrInvalidParams, limits.MaxCount)
		}
		req.Count = *p.Count
	}

	ordering, err := listing.ParseOrdering(p.Ordering)
	if err != nil {
		return req, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	req.Ordering = ordering

	return req, nil
}

// CategoryListParams параметры GET /api/v1/categories
type CategoryListParams struct {
	ListParams
	Type   string `schema:"type"`
	Search string `schema:"search" validate:"max=100"`
}

// Query преобразует параметры в запрос списка категорий. Без page список не разбивается на страницы.
func (p CategoryListParams) Query(userID uuid.UUID, limits Limits) (domain.CategoryListQuery, error) {
	req, err := p.request(userID, 0, limits)
	if err != nil {
		return domain.CategoryListQuery{}, err
	}

	q := domain.CategoryListQuery{Request: req, Search: p.Search}
	if p.Type != "" {
		ct, err := domain.ParseCategoryType(p.Type)
		if err != nil {
			return q, fmt.Errorf("%w: %v", ErrInvalidParams, err)
		}
		q.CategoryType = &ct
	}
	return q, nil
}

// ItemListParams параметры GET /api/v1/items
type ItemListParams struct {
	ListParams
	CategoryID *int64 `schema:"categoryId" validate:"omitempty,gt=0"`
	Tier       string `schema:"tier"`
}

// Query преобразует параметры в запрос списка элементов
func (p ItemListParams) Query(userID uuid.UUID, limits Limits) (domain.ItemListQuery, error) {
	req, err := p.request(userID, 0, limits)
	if err != nil {
		return domain.ItemListQuery{}, err
	}

	q := domain.ItemListQuery{Request: req, CategoryID: p.CategoryID}
	if p.Tier != "" {
		tier, err := domain.ParseTier(p.Tier)
		if err != nil {
			return q, fmt.Errorf("%w: %v", ErrInvalidParams, err)
		}
		q.Tier = &tier
	}
	return q, nil
}

// RecentItemsParams параметры GET /api/v1/items/recent.
// Порядок всегда по убыванию, ordering игнорируется.
type RecentItemsParams struct {
	ListParams
	CategoryID *int64 `schema:"categoryId" validate:"omitempty,gt=0"`
}

// Query преобразует параметры в запрос последних элементов. Без page возвращается первая страница.
func (p RecentItemsParams) Query(userID uuid.UUID, limits Limits) (domain.RecentItemsQuery, error) {
	p.Ordering = ""
	req, err := p.request(userID, 1, limits)
	if err != nil {
		return domain.RecentItemsQuery{}, err
	}
	return domain.RecentItemsQuery{Request: req, CategoryID: p.CategoryID}, nil
}

// ItemResponse элемент каталога
type ItemResponse struct {
	ID          int64  `json:"id"`
	CategoryID  int64  `json:"categoryId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Tier        int    `json:"tier"`
	TierName    string `json:"tierName"`
	Src         string `json:"src"`
}

// ItemFromDomain конвертирует модель чтения в DTO
func ItemFromDomain(v domain.ItemView) ItemResponse {
	return ItemResponse{
		ID:          v.ID,
		CategoryID:  v.CategoryID,
		Title:       v.Title,
		Description: v.Description,
		Tier:        int(v.Tier),
		TierName:    v.Tier.String(),
		Src:         v.Src,
	}
}

// ItemsFromDomain никогда не возвращает nil, пустой список кодируется как []
func ItemsFromDomain(list []domain.ItemView) []ItemResponse {
	out := make([]ItemResponse, len(list))
	for i, v := range list {
		out[i] = ItemFromDomain(v)
	}
	return out
}

// CategoryResponse категория каталога
type CategoryResponse struct {
	ID               int64  `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	CategoryType     int    `json:"categoryType"`
	CategoryTypeName string `json:"categoryTypeName"`
	Src              string `json:"src"`
	ItemsCount       int    `json:"itemsCount"`
}

// CategoryFromDomain конвертирует модель чтения в DTO
func CategoryFromDomain(v *domain.CategoryView) *CategoryResponse {
	return &CategoryResponse{
		ID:               v.ID,
		Title:            v.Title,
		Description:      v.Description,
		CategoryType:     int(v.CategoryType),
		CategoryTypeName: v.CategoryType.String(),
		Src:              v.Src,
		ItemsCount:       v.ItemsCount,
	}
}

// CategoryDetailsResponse категория со всеми элементами
type CategoryDetailsResponse struct {
	*CategoryResponse
	Items []ItemResponse `json:"items"`
}

// CategoryDetailsFromDomain конвертирует категорию с элементами в DTO
func CategoryDetailsFromDomain(v *domain.CategoryView) *CategoryDetailsResponse {
	return &CategoryDetailsResponse{
		CategoryResponse: CategoryFromDomain(v),
		Items:            ItemsFromDomain(v.Items),
	}
}

// ListResponse страница списка
type ListResponse[T any] struct {
	List  []T `json:"list"`
	Total int `json:"total"`
}

// CategoryListFromDomain конвертирует страницу категорий в DTO
func CategoryListFromDomain(page *listing.Page[domain.CategoryView]) *ListResponse[*CategoryResponse] {
	list := make([]*CategoryResponse, len(page.List))
	for i := range page.List {
		list[i] = CategoryFromDomain(&page.List[i])
	}
	return &ListResponse[*CategoryResponse]{List: list, Total: page.Total}
}

// ItemListFromDomain конвертирует страницу элементов в DTO
func ItemListFromDomain(page *listing.Page[domain.ItemView]) *ListResponse[ItemResponse] {
	return &ListResponse[ItemResponse]{List: ItemsFromDomain(page.List), Total: page.Total}
}

package domain

import "errors"

// Ошибки домена
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrUserRequired     = errors.New("user id is required")
)

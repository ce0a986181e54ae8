package reference

import (
	"context"
	"errors"
	"postcms/internal/core/category"
	"postcms/internal/core/user"
)

//go:generate mockgen -source=resolver.go -destination=./mocks/resolver_mock.go -package=mocks

// ErrNotFound مرجع (کاربر یا دسته‌بندی) پیدا نشد
var ErrNotFound = errors.New("reference not found")

// ErrCacheMiss در کش موجود نیست
var ErrCacheMiss = errors.New("projection cache miss")

type AuthorProjection struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

type CategoryProjection struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Resolver نمایش نویسنده و دسته‌بندی را برمی‌گرداند و هرگز خطا نمی‌دهد
type Resolver interface {
	ResolveAuthor(ctx context.Context, authorID string) *AuthorProjection
	ResolveCategory(ctx context.Context, categoryID string) *CategoryProjection
}

type UserRepository interface {
	FindByID(ctx context.Context, id string) (*user.User, error)
}

type CategoryRepository interface {
	FindByID(ctx context.Context, id string) (*category.Category, error)
}

type ProjectionCache interface {
	GetAuthor(ctx context.Context, authorID string) (*AuthorProjection, error)
	SetAuthor(ctx context.Context, a *AuthorProjection) error
	GetCategory(ctx context.Context, categoryID string) (*CategoryProjection, error)
	SetCategory(ctx context.Context, c *CategoryProjection) error
}

package post

import (
	"context"
	"postcms/internal/core/post"
	referencePort "postcms/internal/ports/reference"

	"github.com/gofrs/uuid"
)

//go:generate mockgen -source=repository.go -destination=./mocks/repository_mock.go -package=mocks

// PostRepository پورت برای ذخیره‌سازی و بازیابی پست‌ها
//
// Create و Update در صورت تکراری بودن عنوان post.ErrConflict برمی‌گردانند؛
// یکتایی عنوان باید در خود انباره تضمین شود.
type PostRepository interface {
	Create(ctx context.Context, p *post.Post) (*post.Post, error)
	FindByID(ctx context.Context, id uuid.UUID) (*post.Post, error)
	FindByAuthor(ctx context.Context, authorID string) ([]*post.Post, error)
	Update(ctx context.Context, id uuid.UUID, patch post.Patch) (*post.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DTOها برای UseCase
type CreatePostRequest struct {
	Title    string `json:"title" validate:"required,max=255"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category" validate:"max=64"`
	Status   string `json:"status" validate:"max=32"`
}

type UpdatePostRequest struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Category *string `json:"category,omitempty"`
	Status   *string `json:"status,omitempty"`
}

type PostDTO struct {
	ID         string                            `json:"id"`
	Title      string                            `json:"title"`
	Content    string                            `json:"content"`
	AuthorID   string                            `json:"author_id"`
	Author     *referencePort.AuthorProjection   `json:"author,omitempty"`
	CategoryID string                            `json:"category_id,omitempty"`
	Category   *referencePort.CategoryProjection `json:"category,omitempty"`
	Status     string                            `json:"status"`
	CreatedAt  string                            `json:"created_at"`
	UpdatedAt  string                            `json:"updated_at"`
}

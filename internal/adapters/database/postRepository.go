package database

import (
	"context"
	"errors"
	"fmt"

	"postcms/internal/core/post"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

// کد خطای MySQL برای نقض ایندکس یکتا
const mysqlDuplicateEntry = 1062

// PostRepositoryDatabase پیاده‌سازی PostRepository برای دیتابیس
type PostRepositoryDatabase struct {
	DB *gorm.DB
}

// NewPostRepositoryDatabase سازنده PostRepositoryDatabase
func NewPostRepositoryDatabase(db *gorm.DB) *PostRepositoryDatabase {
	return &PostRepositoryDatabase{DB: db}
}

// Create یکتایی عنوان را به ایندکس uniq_post_title می‌سپارد
func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := repo.DB.WithContext(ctx).Create(p).Error; err != nil {
		return nil, translateError("insert post", err)
	}
	return p, nil
}

func (repo *PostRepositoryDatabase) FindByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	var p post.Post
	if err := repo.DB.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, translateError("select post", err)
	}
	return &p, nil
}

func (repo *PostRepositoryDatabase) FindByAuthor(ctx context.Context, authorID string) ([]*post.Post, error) {
	var posts []*post.Post
	err := repo.DB.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, translateError("select posts by author", err)
	}
	return posts, nil
}

// Update بدون تراکنش: نوشتن و سپس خواندن دوباره؛ حذف همزمان به صورت ErrNotFound دیده می‌شود
func (repo *PostRepositoryDatabase) Update(ctx context.Context, id uuid.UUID, patch post.Patch) (*post.Post, error) {
	err := repo.DB.WithContext(ctx).
		Model(&post.Post{}).
		Where("id = ?", id).
		Updates(patch.Columns()).Error
	if err != nil {
		return nil, translateError("update post", err)
	}
	return repo.FindByID(ctx, id)
}

func (repo *PostRepositoryDatabase) Delete(ctx context.Context, id uuid.UUID) error {
	res := repo.DB.WithContext(ctx).Where("id = ?", id).Delete(&post.Post{})
	if res.Error != nil {
		return translateError("delete post", res.Error)
	}
	if res.RowsAffected == 0 {
		return post.ErrNotFound
	}
	return nil
}

func translateError(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return post.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return post.ErrConflict
	}
	var myErr *mysqlDriver.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
		return post.ErrConflict
	}
	return fmt.Errorf("%s: %w", op, err)
}

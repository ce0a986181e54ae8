package post

import (
	"time"

	"github.com/gofrs/uuid"
)

// DefaultStatus وضعیت پیش‌فرض پست در صورت عدم ارسال
const DefaultStatus = "draft"

type Post struct {
	ID         uuid.UUID `gorm:"primaryKey;type:char(36)"`
	Title      string    `gorm:"type:varchar(255) COLLATE utf8mb4_0900_bin;not null;uniqueIndex:uniq_post_title"`
	Content    string    `gorm:"type:text;not null"`
	AuthorID   string    `gorm:"type:varchar(64);not null;index"`
	CategoryID string    `gorm:"type:varchar(64);not null;default:''"`
	Status     string    `gorm:"type:varchar(32);not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

// Patch فیلدهای قابل تغییر در به‌روزرسانی؛ nil یعنی بدون تغییر
type Patch struct {
	Title      *string
	Content    *string
	CategoryID *string
	Status     *string
}

func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.CategoryID == nil && p.Status == nil
}

// Apply last-writer-wins
func (p Patch) Apply(dst *Post) {
	if p.Title != nil {
		dst.Title = *p.Title
	}
	if p.Content != nil {
		dst.Content = *p.Content
	}
	if p.CategoryID != nil {
		dst.CategoryID = *p.CategoryID
	}
	if p.Status != nil {
		dst.Status = *p.Status
	}
}

// Columns ستون‌های تغییر یافته برای UPDATE
func (p Patch) Columns() map[string]any {
	cols := make(map[string]any, 4)
	if p.Title != nil {
		cols["title"] = *p.Title
	}
	if p.Content != nil {
		cols["content"] = *p.Content
	}
	if p.CategoryID != nil {
		cols["category_id"] = *p.CategoryID
	}
	if p.Status != nil {
		cols["status"] = *p.Status
	}
	return cols
}

// IsOwnedBy مالکیت پست
func (p *Post) IsOwnedBy(identity string) bool {
	return identity != "" && p.AuthorID == identity
}

package category

import "time"

// Category دسته‌بندی پست؛ مدیریت آن خارج از این سرویس است
type Category struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)"`
	Name      string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

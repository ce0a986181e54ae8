package user

import (
	"time"
)

// User فقط برای نمایش نویسنده خوانده می‌شود؛ ثبت‌نام در سرویس احراز هویت است
type User struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

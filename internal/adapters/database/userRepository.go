package database

import (
	"context"
	"errors"
	"fmt"

	"postcms/internal/core/user"
	referencePort "postcms/internal/ports/reference"

	"gorm.io/gorm"
)

// UserRepositoryDatabase فقط خواندن کاربر برای نمایش نویسنده
type UserRepositoryDatabase struct {
	DB *gorm.DB
}

// NewUserRepositoryDatabase سازنده UserRepositoryDatabase
func NewUserRepositoryDatabase(db *gorm.DB) *UserRepositoryDatabase {
	return &UserRepositoryDatabase{DB: db}
}

func (repo *UserRepositoryDatabase) FindByID(ctx context.Context, id string) (*user.User, error) {
	var u user.User
	if err := repo.DB.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, referencePort.ErrNotFound
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	return &u, nil
}

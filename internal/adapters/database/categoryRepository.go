package database

import (
	"context"
	"errors"
	"fmt"

	"postcms/internal/core/category"
	referencePort "postcms/internal/ports/reference"

	"gorm.io/gorm"
)

type CategoryRepositoryDatabase struct {
	DB *gorm.DB
}

func NewCategoryRepositoryDatabase(db *gorm.DB) *CategoryRepositoryDatabase {
	return &CategoryRepositoryDatabase{DB: db}
}

func (repo *CategoryRepositoryDatabase) FindByID(ctx context.Context, id string) (*category.Category, error) {
	var c category.Category
	if err := repo.DB.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, referencePort.ErrNotFound
		}
		return nil, fmt.Errorf("select category: %w", err)
	}
	return &c, nil
}

package referenceapp

import (
	"context"
	"errors"

	referencePort "postcms/internal/ports/reference"

	"go.uber.org/zap"
)

const (
	UnknownAuthorName = "Unknown author"
	UncategorizedName = "Uncategorized"
)

// ResolverService نمایش نویسنده/دسته‌بندی را به ترتیب از کش، دایرکتوری و در نهایت placeholder می‌سازد
type ResolverService struct {
	Users      referencePort.UserRepository
	Categories referencePort.CategoryRepository
	Cache      referencePort.ProjectionCache // می‌تواند nil باشد
	Logger     *zap.Logger
}

func NewResolverService(
	users referencePort.UserRepository,
	categories referencePort.CategoryRepository,
	cache referencePort.ProjectionCache,
	logger *zap.Logger,
) *ResolverService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResolverService{
		Users:      users,
		Categories: categories,
		Cache:      cache,
		Logger:     logger,
	}
}

func (s *ResolverService) ResolveAuthor(ctx context.Context, authorID string) *referencePort.AuthorProjection {
	if s.Cache != nil {
		a, err := s.Cache.GetAuthor(ctx, authorID)
		if err == nil {
			return a
		}
		if !errors.Is(err, referencePort.ErrCacheMiss) {
			s.Logger.Warn("author cache read failed", zap.String("authorID", authorID), zap.Error(err))
		}
	}

	if s.Users == nil {
		return &referencePort.AuthorProjection{ID: authorID, Name: UnknownAuthorName}
	}
	u, err := s.Users.FindByID(ctx, authorID)
	if err != nil {
		if !errors.Is(err, referencePort.ErrNotFound) {
			s.Logger.Warn("author lookup failed", zap.String("authorID", authorID), zap.Error(err))
		}
		return &referencePort.AuthorProjection{ID: authorID, Name: UnknownAuthorName}
	}

	a := &referencePort.AuthorProjection{ID: u.ID, Name: u.Name, Email: u.Email}
	if s.Cache != nil {
		if err := s.Cache.SetAuthor(ctx, a); err != nil {
			s.Logger.Warn("author cache write failed", zap.String("authorID", authorID), zap.Error(err))
		}
	}
	return a
}

func (s *ResolverService) ResolveCategory(ctx context.Context, categoryID string) *referencePort.CategoryProjection {
	if categoryID == "" {
		return nil
	}
	if s.Cache != nil {
		c, err := s.Cache.GetCategory(ctx, categoryID)
		if err == nil {
			return c
		}
		if !errors.Is(err, referencePort.ErrCacheMiss) {
			s.Logger.Warn("category cache read failed", zap.String("categoryID", categoryID), zap.Error(err))
		}
	}

	if s.Categories == nil {
		return &referencePort.CategoryProjection{ID: categoryID, Name: UncategorizedName}
	}
	cat, err := s.Categories.FindByID(ctx, categoryID)
	if err != nil {
		if !errors.Is(err, referencePort.ErrNotFound) {
			s.Logger.Warn("category lookup failed", zap.String("categoryID", categoryID), zap.Error(err))
		}
		return &referencePort.CategoryProjection{ID: categoryID, Name: UncategorizedName}
	}

	c := &referencePort.CategoryProjection{ID: cat.ID, Name: cat.Name}
	if s.Cache != nil {
		if err := s.Cache.SetCategory(ctx, c); err != nil {
			s.Logger.Warn("category cache write failed", zap.String("categoryID", categoryID), zap.Error(err))
		}
	}
	return c
}

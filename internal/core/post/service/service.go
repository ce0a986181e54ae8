package postapp

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	postEntity "postcms/internal/core/post"
	postPort "postcms/internal/ports/post"
	referencePort "postcms/internal/ports/reference"

	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

type PostService struct {
	PostRepository postPort.PostRepository
	Resolver       referencePort.Resolver
	Logger         *zap.Logger

	// اگر true باشد فقط نویسنده می‌تواند پست را ویرایش کند
	ownerOnlyUpdate bool
	validate        *validator.Validate
}

type Option func(*PostService)

// WithOwnerOnlyUpdate تعیین می‌کند ویرایش هم مانند حذف فقط برای نویسنده مجاز باشد
func WithOwnerOnlyUpdate(enabled bool) Option {
	return func(s *PostService) { s.ownerOnlyUpdate = enabled }
}

func NewPostService(
	postRepo postPort.PostRepository,
	resolver referencePort.Resolver,
	logger *zap.Logger,
	opts ...Option,
) *PostService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &PostService{
		PostRepository:  postRepo,
		Resolver:        resolver,
		Logger:          logger,
		ownerOnlyUpdate: true,
		validate:        newValidator(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// CreatePost ایجاد پست جدید برای کاربر احراز هویت شده
func (s *PostService) CreatePost(ctx context.Context, identity string, req postPort.CreatePostRequest) (*postPort.PostDTO, error) {
	if identity == "" {
		return nil, postEntity.ErrUnauthorized
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, s.internal("generate post id", err)
	}

	status := req.Status
	if status == "" {
		status = postEntity.DefaultStatus
	}

	created, err := s.PostRepository.Create(ctx, &postEntity.Post{
		ID:         id,
		Title:      req.Title,
		Content:    req.Content,
		AuthorID:   identity,
		CategoryID: req.Category,
		Status:     status,
	})
	if err != nil {
		if errors.Is(err, postEntity.ErrConflict) {
			return nil, postEntity.ErrConflict
		}
		return nil, s.internal("create post", err, zap.String("authorID", identity))
	}

	s.Logger.Info("post created", zap.String("postID", created.ID.String()), zap.String("authorID", identity))
	return toDTO(created), nil
}

// GetPost خواندن عمومی یک پست؛ نیازی به احراز هویت ندارد
func (s *PostService) GetPost(ctx context.Context, rawID string) (*postPort.PostDTO, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, p), nil
}

// ListPostsByAuthor پست‌های خود کاربر؛ لیست خالی به عنوان NotFound برگردانده می‌شود
func (s *PostService) ListPostsByAuthor(ctx context.Context, identity string) ([]*postPort.PostDTO, error) {
	if identity == "" {
		return nil, postEntity.ErrUnauthorized
	}

	posts, err := s.PostRepository.FindByAuthor(ctx, identity)
	if err != nil {
		return nil, s.internal("list posts by author", err, zap.String("authorID", identity))
	}
	if len(posts) == 0 {
		return nil, postEntity.ErrNotFound
	}

	out := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, s.resolve(ctx, p))
	}
	return out, nil
}

func (s *PostService) UpdatePost(ctx context.Context, identity, rawID string, req postPort.UpdatePostRequest) (*postPort.PostDTO, error) {
	if identity == "" {
		return nil, postEntity.ErrUnauthorized
	}
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	existing, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.ownerOnlyUpdate && !existing.IsOwnedBy(identity) {
		return nil, fmt.Errorf("%w: not the post author", postEntity.ErrForbidden)
	}

	patch := postEntity.Patch{
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.Category,
		Status:     req.Status,
	}
	if err := s.validatePatch(patch); err != nil {
		return nil, err
	}

	updated, err := s.PostRepository.Update(ctx, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, postEntity.ErrConflict):
			return nil, postEntity.ErrConflict
		case errors.Is(err, postEntity.ErrNotFound):
			return nil, postEntity.ErrNotFound
		}
		return nil, s.internal("update post", err, zap.String("postID", id.String()))
	}

	s.Logger.Info("post updated", zap.String("postID", id.String()), zap.String("by", identity))
	return s.resolve(ctx, updated), nil
}

// DeletePost حذف دائمی؛ فقط نویسنده مجاز است
func (s *PostService) DeletePost(ctx context.Context, identity, rawID string) error {
	if identity == "" {
		return postEntity.ErrUnauthorized
	}
	id, err := parseID(rawID)
	if err != nil {
		return err
	}

	existing, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if !existing.IsOwnedBy(identity) {
		return fmt.Errorf("%w: not the post author", postEntity.ErrForbidden)
	}

	if err := s.PostRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, postEntity.ErrNotFound) {
			return postEntity.ErrNotFound
		}
		return s.internal("delete post", err, zap.String("postID", id.String()))
	}

	s.Logger.Info("post deleted", zap.String("postID", id.String()), zap.String("by", identity))
	return nil
}

func (s *PostService) find(ctx context.Context, id uuid.UUID) (*postEntity.Post, error) {
	p, err := s.PostRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, postEntity.ErrNotFound) {
			return nil, postEntity.ErrNotFound
		}
		return nil, s.internal("find post", err, zap.String("postID", id.String()))
	}
	return p, nil
}

func (s *PostService) validatePatch(patch postEntity.Patch) error {
	if patch.IsEmpty() {
		return postEntity.NewValidationError("", "no fields to update")
	}
	checks := []struct {
		field string
		value *string
		tag   string
	}{
		{"title", patch.Title, "required,max=255"},
		{"content", patch.Content, "required"},
		{"category", patch.CategoryID, "max=64"},
		{"status", patch.Status, "max=32"},
	}
	for _, c := range checks {
		if c.value == nil {
			continue
		}
		if err := s.validate.Var(*c.value, c.tag); err != nil {
			return fieldError(c.field, err)
		}
	}
	return nil
}

// internal خطای داخلی را کامل لاگ می‌کند و فقط نوع خطا را به بیرون می‌دهد
func (s *PostService) internal(op string, err error, fields ...zap.Field) error {
	s.Logger.Error(op+" failed", append(fields, zap.Error(err))...)
	return fmt.Errorf("%s: %w", op, postEntity.ErrInternal)
}

func (s *PostService) resolve(ctx context.Context, p *postEntity.Post) *postPort.PostDTO {
	dto := toDTO(p)
	if s.Resolver == nil {
		return dto
	}
	dto.Author = s.Resolver.ResolveAuthor(ctx, p.AuthorID)
	if p.CategoryID != "" {
		dto.Category = s.Resolver.ResolveCategory(ctx, p.CategoryID)
	}
	return dto
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.FromString(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, postEntity.ErrInvalidIdentifier
	}
	return id, nil
}

func toDTO(p *postEntity.Post) *postPort.PostDTO {
	return &postPort.PostDTO{
		ID:         p.ID.String(),
		Title:      p.Title,
		Content:    p.Content,
		AuthorID:   p.AuthorID,
		CategoryID: p.CategoryID,
		Status:     p.Status,
		CreatedAt:  p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fieldError(fieldErrs[0].Field(), fieldErrs[0])
	}
	return postEntity.NewValidationError("", err.Error())
}

func fieldError(field string, err error) error {
	var fe validator.FieldError
	if !errors.As(err, &fe) {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe = fieldErrs[0]
		}
	}
	if fe == nil {
		return postEntity.NewValidationError(field, err.Error())
	}
	switch fe.Tag() {
	case "required":
		return postEntity.NewValidationError(field, "is required")
	case "max":
		return postEntity.NewValidationError(field, "must be at most "+fe.Param()+" characters")
	}
	return postEntity.NewValidationError(field, "failed on "+fe.Tag())
}

package postapp

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	postEntity "postcms/internal/core/post"
	postPort "postcms/internal/ports/post"
	"postcms/internal/ports/post/mocks"
	referencePort "postcms/internal/ports/reference"
	referenceMocks "postcms/internal/ports/reference/mocks"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func newService(t *testing.T, opts ...Option) (*PostService, *mocks.MockPostRepository, *referenceMocks.MockResolver) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPostRepository(ctrl)
	resolver := referenceMocks.NewMockResolver(ctrl)
	return NewPostService(repo, resolver, nil, opts...), repo, resolver
}

func TestPostService_CreatePost(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		identity string
		req      postPort.CreatePostRequest
		setup    func(m *mocks.MockPostRepository)
		wantErr  error
		wantFld  string
	}{
		{
			name:     "no identity",
			identity: "",
			req:      postPort.CreatePostRequest{Title: "Hello", Content: "World"},
			setup:    func(_ *mocks.MockPostRepository) {},
			wantErr:  postEntity.ErrUnauthorized,
		},
		{
			name:     "missing title",
			identity: "u1",
			req:      postPort.CreatePostRequest{Content: "World"},
			setup:    func(_ *mocks.MockPostRepository) {},
			wantErr:  postEntity.ErrValidation,
			wantFld:  "title",
		},
		{
			name:     "missing content",
			identity: "u1",
			req:      postPort.CreatePostRequest{Title: "Hello"},
			setup:    func(_ *mocks.MockPostRepository) {},
			wantErr:  postEntity.ErrValidation,
			wantFld:  "content",
		},
		{
			name:     "title too long",
			identity: "u1",
			req:      postPort.CreatePostRequest{Title: strings.Repeat("a", 256), Content: "x"},
			setup:    func(_ *mocks.MockPostRepository) {},
			wantErr:  postEntity.ErrValidation,
			wantFld:  "title",
		},
		{
			name:     "duplicate title",
			identity: "u1",
			req:      postPort.CreatePostRequest{Title: "Hello", Content: "World"},
			setup: func(m *mocks.MockPostRepository) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, postEntity.ErrConflict)
			},
			wantErr: postEntity.ErrConflict,
		},
		{
			name:     "store failure",
			identity: "u1",
			req:      postPort.CreatePostRequest{Title: "Hello", Content: "World"},
			setup: func(m *mocks.MockPostRepository) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("connection reset"))
			},
			wantErr: postEntity.ErrInternal,
		},
		{
			name:     "success",
			identity: "u1",
			req:      postPort.CreatePostRequest{Title: "Hello", Content: "World", Category: "c1"},
			setup: func(m *mocks.MockPostRepository) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *postEntity.Post) (*postEntity.Post, error) {
						if p.ID == uuid.Nil || p.AuthorID != "u1" || p.CategoryID != "c1" || p.Status != postEntity.DefaultStatus {
							return nil, errors.New("unexpected post")
						}
						out := *p
						out.CreatedAt, out.UpdatedAt = now, now
						return &out, nil
					})
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo, _ := newService(t)
			tt.setup(repo)

			got, err := svc.CreatePost(context.Background(), tt.identity, tt.req)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, got)
				if tt.wantFld != "" {
					var verr *postEntity.ValidationError
					require.True(t, errors.As(err, &verr))
					require.Equal(t, tt.wantFld, verr.Field)
				}
				return
			}
			require.NoError(t, err)
			require.Equal(t, "Hello", got.Title)
			require.Equal(t, "u1", got.AuthorID)
			require.Equal(t, "2024-03-01T10:00:00Z", got.CreatedAt)
			require.Nil(t, got.Author)
		})
	}
}

func TestPostService_GetPost(t *testing.T) {
	t.Parallel()

	id := uuid.Must(uuid.NewV4())
	stored := &postEntity.Post{ID: id, Title: "T", Content: "C", AuthorID: "u1", CategoryID: "c1", Status: "draft"}

	t.Run("malformed id", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newService(t)
		_, err := svc.GetPost(context.Background(), "not-an-id")
		require.ErrorIs(t, err, postEntity.ErrInvalidIdentifier)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)
		repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, postEntity.ErrNotFound)
		_, err := svc.GetPost(context.Background(), id.String())
		require.ErrorIs(t, err, postEntity.ErrNotFound)
	})

	t.Run("store failure is internal", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)
		repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, errors.New("boom"))
		_, err := svc.GetPost(context.Background(), id.String())
		require.ErrorIs(t, err, postEntity.ErrInternal)
		require.NotContains(t, err.Error(), "boom")
	})

	t.Run("resolves projections", func(t *testing.T) {
		t.Parallel()
		svc, repo, resolver := newService(t)
		repo.EXPECT().FindByID(gomock.Any(), id).Return(stored, nil)
		resolver.EXPECT().ResolveAuthor(gomock.Any(), "u1").
			Return(&referencePort.AuthorProjection{ID: "u1", Name: "Ana", Email: "ana@example.com"})
		resolver.EXPECT().ResolveCategory(gomock.Any(), "c1").
			Return(&referencePort.CategoryProjection{ID: "c1", Name: "News"})

		got, err := svc.GetPost(context.Background(), id.String())
		require.NoError(t, err)
		require.Equal(t, id.String(), got.ID)
		require.Equal(t, "Ana", got.Author.Name)
		require.Equal(t, "News", got.Category.Name)
	})

	t.Run("no category, no category projection", func(t *testing.T) {
		t.Parallel()
		svc, repo, resolver := newService(t)
		bare := *stored
		bare.CategoryID = ""
		repo.EXPECT().FindByID(gomock.Any(), id).Return(&bare, nil)
		resolver.EXPECT().ResolveAuthor(gomock.Any(), "u1").
			Return(&referencePort.AuthorProjection{ID: "u1", Name: "Ana"})

		got, err := svc.GetPost(context.Background(), id.String())
		require.NoError(t, err)
		require.Nil(t, got.Category)
	})
}

func TestPostService_ListPostsByAuthor(t *testing.T) {
	t.Parallel()

	t.Run("no identity", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newService(t)
		_, err := svc.ListPostsByAuthor(context.Background(), "")
		require.ErrorIs(t, err, postEntity.ErrUnauthorized)
	})

	t.Run("empty is not found", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)
		repo.EXPECT().FindByAuthor(gomock.Any(), "u2").Return(nil, nil)
		_, err := svc.ListPostsByAuthor(context.Background(), "u2")
		require.ErrorIs(t, err, postEntity.ErrNotFound)
	})

	t.Run("keeps store order", func(t *testing.T) {
		t.Parallel()
		svc, repo, resolver := newService(t)
		newer := &postEntity.Post{ID: uuid.Must(uuid.NewV4()), Title: "B", AuthorID: "u1"}
		older := &postEntity.Post{ID: uuid.Must(uuid.NewV4()), Title: "A", AuthorID: "u1"}
		repo.EXPECT().FindByAuthor(gomock.Any(), "u1").Return([]*postEntity.Post{newer, older}, nil)
		resolver.EXPECT().ResolveAuthor(gomock.Any(), "u1").
			Return(&referencePort.AuthorProjection{ID: "u1", Name: "Ana"}).Times(2)

		got, err := svc.ListPostsByAuthor(context.Background(), "u1")
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, "B", got[0].Title)
		require.Equal(t, "A", got[1].Title)
	})
}

func TestPostService_UpdatePost(t *testing.T) {
	t.Parallel()

	id := uuid.Must(uuid.NewV4())
	owned := func() *postEntity.Post {
		return &postEntity.Post{ID: id, Title: "T", Content: "C", AuthorID: "u1", Status: "draft"}
	}

	tests := []struct {
		name     string
		identity string
		rawID    string
		req      postPort.UpdatePostRequest
		opts     []Option
		setup    func(repo *mocks.MockPostRepository, res *referenceMocks.MockResolver)
		wantErr  error
	}{
		{
			name:     "no identity",
			identity: "",
			rawID:    id.String(),
			req:      postPort.UpdatePostRequest{Title: strPtr("x")},
			setup:    func(_ *mocks.MockPostRepository, _ *referenceMocks.MockResolver) {},
			wantErr:  postEntity.ErrUnauthorized,
		},
		{
			name:     "malformed id",
			identity: "u1",
			rawID:    "123",
			req:      postPort.UpdatePostRequest{Title: strPtr("x")},
			setup:    func(_ *mocks.MockPostRepository, _ *referenceMocks.MockResolver) {},
			wantErr:  postEntity.ErrInvalidIdentifier,
		},
		{
			name:     "missing post",
			identity: "u1",
			rawID:    id.String(),
			req:      postPort.UpdatePostRequest{Title: strPtr("x")},
			setup: func(repo *mocks.MockPostRepository, _ *referenceMocks.MockResolver) {
				repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, postEntity.ErrNotFound)
			},
			wantErr: postEntity.ErrNotFound,
		},
		{
			name:     "non-author forbidden by default",
			identity: "u2",
			rawID:    id.String(),
			req:      postPort.UpdatePostRequest{Title: strPtr("x")},
			setup: func(repo *mocks.MockPostRepository, _ *referenceMocks.MockResolver) {
				repo.EXPECT().FindByID(gomock.Any(), id).Return(owned(), nil)
			},
			wantErr: postEntity.ErrForbidden,
		},
		{
			name:     "empty patch",
			identity: "u1",
			rawID:    id.String(),
			req:      postPort.UpdatePostRequest{},
			setup: func(repo *mocks.MockPostRepository, _ *referenceMocks.MockResolver) {
				repo.EXPECT().FindByID(gomock.Any(), id).Return(owned(), nil)
			},
			wantErr: postEntity.ErrValidation,
		},
		{
			name:     "blank title",
			identity: "u1",
			rawID:    id.String(),
			req:      postPort.UpdatePostRequest{Title: strPtr("")},
			setup: func(repo *mocks.MockPostRepository, _ *referenceMocks.MockResolver) {
				repo.EXPECT().FindByID(gomock.Any(), id).Return(owned(), nil)
			},
			wantErr: postEntity.ErrValidation,
		},
		{
			name:     "rename onto existing title",
			identity: "u1",
			rawID:    id.String(),
			req:      postPort.UpdatePostRequest{Title: strPtr("taken")},
			setup: func(repo *mocks.MockPostRepository, _ *referenceMocks.MockResolver) {
				repo.EXPECT().FindByID(gomock.Any(), id).Return(owned(), nil)
				repo.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(nil, postEntity.ErrConflict)
			},
			wantErr: postEntity.ErrConflict,
		},
		{
			name:     "deleted between read and write",
			identity: "u1",
			rawID:    id.String(),
			req:      postPort.UpdatePostRequest{Content: strPtr("new")},
			setup: func(repo *mocks.MockPostRepository, _ *referenceMocks.MockResolver) {
				repo.EXPECT().FindByID(gomock.Any(), id).Return(owned(), nil)
				repo.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(nil, postEntity.ErrNotFound)
			},
			wantErr: postEntity.ErrNotFound,
		},
		{
			name:     "non-author allowed when ownership is off",
			identity: "u2",
			rawID:    id.String(),
			req:      postPort.UpdatePostRequest{Status: strPtr("published")},
			opts:     []Option{WithOwnerOnlyUpdate(false)},
			setup: func(repo *mocks.MockPostRepository, res *referenceMocks.MockResolver) {
				repo.EXPECT().FindByID(gomock.Any(), id).Return(owned(), nil)
				repo.EXPECT().Update(gomock.Any(), id, postEntity.Patch{Status: strPtr("published")}).
					DoAndReturn(func(_ context.Context, _ uuid.UUID, patch postEntity.Patch) (*postEntity.Post, error) {
						p := owned()
						patch.Apply(p)
						return p, nil
					})
				res.EXPECT().ResolveAuthor(gomock.Any(), "u1").Return(&referencePort.AuthorProjection{ID: "u1"})
			},
		},
		{
			name:     "author updates",
			identity: "u1",
			rawID:    id.String(),
			req:      postPort.UpdatePostRequest{Status: strPtr("published")},
			setup: func(repo *mocks.MockPostRepository, res *referenceMocks.MockResolver) {
				repo.EXPECT().FindByID(gomock.Any(), id).Return(owned(), nil)
				repo.EXPECT().Update(gomock.Any(), id, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uuid.UUID, patch postEntity.Patch) (*postEntity.Post, error) {
						p := owned()
						patch.Apply(p)
						return p, nil
					})
				res.EXPECT().ResolveAuthor(gomock.Any(), "u1").Return(&referencePort.AuthorProjection{ID: "u1"})
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo, res := newService(t, tt.opts...)
			tt.setup(repo, res)

			got, err := svc.UpdatePost(context.Background(), tt.identity, tt.rawID, tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "published", got.Status)
			require.Equal(t, "u1", got.AuthorID)
		})
	}
}

func TestPostService_DeletePost(t *testing.T) {
	t.Parallel()

	id := uuid.Must(uuid.NewV4())
	stored := &postEntity.Post{ID: id, Title: "T", AuthorID: "u1"}

	t.Run("malformed id", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newService(t)
		require.ErrorIs(t, svc.DeletePost(context.Background(), "u1", "nope"), postEntity.ErrInvalidIdentifier)
	})

	t.Run("non-author forbidden even when update is open", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t, WithOwnerOnlyUpdate(false))
		repo.EXPECT().FindByID(gomock.Any(), id).Return(stored, nil)
		require.ErrorIs(t, svc.DeletePost(context.Background(), "u2", id.String()), postEntity.ErrForbidden)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)
		repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, postEntity.ErrNotFound)
		require.ErrorIs(t, svc.DeletePost(context.Background(), "u1", id.String()), postEntity.ErrNotFound)
	})

	t.Run("author deletes", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)
		repo.EXPECT().FindByID(gomock.Any(), id).Return(stored, nil)
		repo.EXPECT().Delete(gomock.Any(), id).Return(nil)
		require.NoError(t, svc.DeletePost(context.Background(), "u1", id.String()))
	})
}

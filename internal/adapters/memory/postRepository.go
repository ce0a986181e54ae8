package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"postcms/internal/core/post"

	"github.com/gofrs/uuid"
)

type storedPost struct {
	post.Post
	seq uint64
}

// PostRepositoryMemory پیاده‌سازی درون‌حافظه‌ای PostRepository
//
// بررسی یکتایی عنوان و درج زیر یک قفل انجام می‌شود.
type PostRepositoryMemory struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*storedPost
	byTitle map[string]uuid.UUID
	seq     uint64
	now     func() time.Time
}

func NewPostRepositoryMemory() *PostRepositoryMemory {
	return &PostRepositoryMemory{
		byID:    make(map[uuid.UUID]*storedPost),
		byTitle: make(map[string]uuid.UUID),
		now:     time.Now,
	}
}

func (r *PostRepositoryMemory) Create(_ context.Context, p *post.Post) (*post.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byTitle[p.Title]; taken {
		return nil, post.ErrConflict
	}
	if _, exists := r.byID[p.ID]; exists {
		return nil, post.ErrConflict
	}

	now := r.now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = p.CreatedAt

	r.seq++
	r.byID[p.ID] = &storedPost{Post: *p, seq: r.seq}
	r.byTitle[p.Title] = p.ID

	out := *p
	return &out, nil
}

func (r *PostRepositoryMemory) FindByID(_ context.Context, id uuid.UUID) (*post.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sp, ok := r.byID[id]
	if !ok {
		return nil, post.ErrNotFound
	}
	out := sp.Post
	return &out, nil
}

// FindByAuthor جدیدترین پست‌ها اول
func (r *PostRepositoryMemory) FindByAuthor(_ context.Context, authorID string) ([]*post.Post, error) {
	// کپی مقدارها زیر قفل؛ Update همان storedPost را درجا تغییر می‌دهد
	r.mu.RLock()
	matched := make([]storedPost, 0)
	for _, sp := range r.byID {
		if sp.AuthorID == authorID {
			matched = append(matched, *sp)
		}
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].seq > matched[j].seq
	})

	out := make([]*post.Post, 0, len(matched))
	for i := range matched {
		out = append(out, &matched[i].Post)
	}
	return out, nil
}

func (r *PostRepositoryMemory) Update(_ context.Context, id uuid.UUID, patch post.Patch) (*post.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sp, ok := r.byID[id]
	if !ok {
		return nil, post.ErrNotFound
	}
	if patch.Title != nil && *patch.Title != sp.Title {
		if _, taken := r.byTitle[*patch.Title]; taken {
			return nil, post.ErrConflict
		}
		delete(r.byTitle, sp.Title)
		r.byTitle[*patch.Title] = id
	}

	patch.Apply(&sp.Post)
	sp.UpdatedAt = r.now()

	out := sp.Post
	return &out, nil
}

func (r *PostRepositoryMemory) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sp, ok := r.byID[id]
	if !ok {
		return post.ErrNotFound
	}
	delete(r.byTitle, sp.Title)
	delete(r.byID, id)
	return nil
}

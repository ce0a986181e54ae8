package memory

import (
	"context"
	"strings"
	"sync"

	"postcms/internal/core/category"
	"postcms/internal/core/user"
	referencePort "postcms/internal/ports/reference"
)

// UserDirectoryMemory دایرکتوری کاربران برای حالت STORAGE_TYPE=memory
type UserDirectoryMemory struct {
	mu    sync.RWMutex
	users map[string]user.User
}

func NewUserDirectoryMemory() *UserDirectoryMemory {
	return &UserDirectoryMemory{users: make(map[string]user.User)}
}

func (d *UserDirectoryMemory) Put(u user.User) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.users[u.ID] = u
}

func (d *UserDirectoryMemory) FindByID(_ context.Context, id string) (*user.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.users[id]
	if !ok {
		return nil, referencePort.ErrNotFound
	}
	return &u, nil
}

type CategoryDirectoryMemory struct {
	mu         sync.RWMutex
	categories map[string]category.Category
}

func NewCategoryDirectoryMemory() *CategoryDirectoryMemory {
	return &CategoryDirectoryMemory{categories: make(map[string]category.Category)}
}

func (d *CategoryDirectoryMemory) Put(c category.Category) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.categories[c.ID] = c
}

func (d *CategoryDirectoryMemory) FindByID(_ context.Context, id string) (*category.Category, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	c, ok := d.categories[id]
	if !ok {
		return nil, referencePort.ErrNotFound
	}
	return &c, nil
}

// NewUserDirectoryFromMap ورودی به شکل id -> "name|email"؛ ایمیل اختیاری است
func NewUserDirectoryFromMap(entries map[string]string) *UserDirectoryMemory {
	d := NewUserDirectoryMemory()
	for id, v := range entries {
		name, email, _ := strings.Cut(v, "|")
		d.Put(user.User{ID: id, Name: strings.TrimSpace(name), Email: strings.TrimSpace(email)})
	}
	return d
}

// NewCategoryDirectoryFromMap ورودی به شکل id -> name
func NewCategoryDirectoryFromMap(entries map[string]string) *CategoryDirectoryMemory {
	d := NewCategoryDirectoryMemory()
	for id, name := range entries {
		d.Put(category.Category{ID: id, Name: strings.TrimSpace(name)})
	}
	return d
}

package redis

import (
	"context"
	"fmt"
	"time"

	referencePort "postcms/internal/ports/reference"

	"github.com/go-redis/redis/v8"
)

const (
	authorKeyPrefix   = "author:"
	categoryKeyPrefix = "category:"
)

// ProjectionCacheRedis کش نمایش نویسنده/دسته‌بندی به صورت HASH با TTL
type ProjectionCacheRedis struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewProjectionCacheRedis(client *redis.Client, ttl time.Duration) *ProjectionCacheRedis {
	return &ProjectionCacheRedis{
		Client: client,
		TTL:    ttl,
	}
}

func (r *ProjectionCacheRedis) GetAuthor(ctx context.Context, authorID string) (*referencePort.AuthorProjection, error) {
	fields, err := r.Client.HGetAll(ctx, authorKeyPrefix+authorID).Result()
	if err != nil {
		return nil, fmt.Errorf("hgetall author: %w", err)
	}
	// HGETALL برای کلید ناموجود map خالی برمی‌گرداند
	if len(fields) == 0 {
		return nil, referencePort.ErrCacheMiss
	}
	return &referencePort.AuthorProjection{
		ID:    fields["id"],
		Name:  fields["name"],
		Email: fields["email"],
	}, nil
}

func (r *ProjectionCacheRedis) SetAuthor(ctx context.Context, a *referencePort.AuthorProjection) error {
	return r.store(ctx, authorKeyPrefix+a.ID, "id", a.ID, "name", a.Name, "email", a.Email)
}

func (r *ProjectionCacheRedis) GetCategory(ctx context.Context, categoryID string) (*referencePort.CategoryProjection, error) {
	fields, err := r.Client.HGetAll(ctx, categoryKeyPrefix+categoryID).Result()
	if err != nil {
		return nil, fmt.Errorf("hgetall category: %w", err)
	}
	if len(fields) == 0 {
		return nil, referencePort.ErrCacheMiss
	}
	return &referencePort.CategoryProjection{
		ID:   fields["id"],
		Name: fields["name"],
	}, nil
}

func (r *ProjectionCacheRedis) SetCategory(ctx context.Context, c *referencePort.CategoryProjection) error {
	return r.store(ctx, categoryKeyPrefix+c.ID, "id", c.ID, "name", c.Name)
}

// store مقدار و انقضا را در یک pipeline تراکنشی می‌نویسد
func (r *ProjectionCacheRedis) store(ctx context.Context, key string, values ...interface{}) error {
	_, err := r.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, values...)
		if r.TTL > 0 {
			pipe.Expire(ctx, key, r.TTL)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("cache %s: %w", key, err)
	}
	return nil
}

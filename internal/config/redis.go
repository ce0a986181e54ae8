package config

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// InitRedis اتصال به Redis؛ اگر REDIS_ADDR خالی باشد nil برمی‌گرداند
func InitRedis(ctx context.Context, s Settings) (*redis.Client, error) {
	if s.RedisAddr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     s.RedisAddr,
		Password: s.RedisPassword,
		DB:       s.RedisDB,
	})

	// بررسی اتصال به Redis
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", s.RedisAddr, err)
	}
	return client, nil
}

package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/olgkv/taskboard/internal/ports"
)

// RedisLocalStorage stores each entry as a plain string key under prefix.
type RedisLocalStorage struct {
	rc     *redis.Client
	prefix string
}

func NewRedisLocalStorage(rc *redis.Client, prefix string) *RedisLocalStorage {
	return &RedisLocalStorage{rc: rc, prefix: prefix}
}

func (r *RedisLocalStorage) GetItem(ctx context.Context, key string) (string, error) {
	v, err := r.rc.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ports.ErrNotFound
	}
	return v, err
}

func (r *RedisLocalStorage) SetItem(ctx context.Context, key, value string) error {
	return r.rc.Set(ctx, r.prefix+key, value, 0).Err()
}

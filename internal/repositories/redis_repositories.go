package repositories

import (
	"context"
	"errors"

	"tastypoint-cart/pkg/cache"

	"github.com/go-redis/redis/v8"
)

// Redis-backed store. Cart snapshots never expire, like browser local storage.
type redisStore struct {
	cache *cache.RedisCache
}

func NewRedisStore(c *cache.RedisCache) CartKVStore {
	return &redisStore{cache: c}
}

func (s *redisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.cache.GetString(ctx, key)
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *redisStore) Set(ctx context.Context, key, value string) error {
	return s.cache.SetString(ctx, key, value, 0)
}

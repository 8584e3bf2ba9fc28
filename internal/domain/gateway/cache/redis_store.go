package cache

import (
	"context"

	"ecogarden-api/pkg/redis"
)

const redisCacheName = "weather"

// RedisStore shares entries between instances. Redis expires keys with the entry TTL.
type RedisStore struct {
	cache *redis.Cache
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		cache: redis.NewCache(client, redis.NewCacheOptions().WithCacheName(redisCacheName)),
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) (*Entry, error) {
	var entry Entry
	found, err := s.cache.Get(ctx, key, &entry)
	if err != nil || !found {
		return nil, err
	}
	return &entry, nil
}

func (s *RedisStore) Put(ctx context.Context, entry Entry) error {
	return s.cache.SetWithTTL(ctx, entry.Key, entry, entry.TTL)
}

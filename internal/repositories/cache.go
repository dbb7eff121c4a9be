package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/mannsoni/portfolio/internal/logger"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "portfolio:"

// RedisContentCache keeps serialized public lists in Redis.
type RedisContentCache struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached lists
}

func NewRedisContentCache(client *redis.Client, expiration time.Duration) *RedisContentCache {
	return &RedisContentCache{
		client: client,
		exp:    expiration,
	}
}

// Get decodes the cached value of key into dest. The bool reports a hit.
func (r *RedisContentCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	val, err := r.client.Get(ctx, cacheKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		logger.Log.Debugw("cache miss", "key", key)
		return false, nil
	}
	if err != nil {
		logger.Log.Errorw("cache get failed", "key", key, "error", err)
		return false, err
	}

	if err := json.Unmarshal(val, dest); err != nil {
		logger.Log.Errorw("cache decode failed", "key", key, "error", err)
		return false, err
	}

	logger.Log.Debugw("cache hit", "key", key, "size", len(val))
	return true, nil
}

func (r *RedisContentCache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, cacheKeyPrefix+key, data, r.exp).Err()
	logger.Log.Debugw("cache set", "key", key, "size", len(data), "error", err)

	return err
}

func (r *RedisContentCache) Delete(ctx context.Context, keys ...string) error {
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = cacheKeyPrefix + k
	}

	err := r.client.Del(ctx, prefixed...).Err()
	logger.Log.Debugw("cache delete", "keys", keys, "error", err)

	return err
}

// MemoryContentCache keeps serialized public lists in process memory.
// Values are stored as JSON so callers never share slices with the cache.
type MemoryContentCache struct {
	cache *gocache.Cache
}

func NewMemoryContentCache(expiration time.Duration) *MemoryContentCache {
	return &MemoryContentCache{
		cache: gocache.New(expiration, 2*expiration),
	}
}

func (m *MemoryContentCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	v, found := m.cache.Get(key)
	if !found {
		return false, nil
	}
	data, ok := v.([]byte)
	if !ok {
		m.cache.Delete(key)
		return false, nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (m *MemoryContentCache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.cache.Set(key, data, gocache.DefaultExpiration)
	return nil
}

func (m *MemoryContentCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		m.cache.Delete(k)
	}
	return nil
}

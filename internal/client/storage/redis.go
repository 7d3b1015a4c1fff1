package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "storefront:"

// RedisDurableStore keeps durable values as plain Redis strings without TTL.
type RedisDurableStore struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisDurableStore(rdb *redis.Client) *RedisDurableStore {
	return &RedisDurableStore{rdb: rdb, prefix: redisKeyPrefix + "durable:"}
}

func (s *RedisDurableStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.rdb.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get durable[%s]: %w", key, err)
	}
	return v, true, nil
}

func (s *RedisDurableStore) Set(ctx context.Context, key, value string) error {
	if err := s.rdb.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set durable[%s]: %w", key, err)
	}
	return nil
}

func (s *RedisDurableStore) Remove(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("failed to remove durable[%s]: %w", key, err)
	}
	return nil
}

// RedisExpiringStore relies on native key TTLs for expiry.
type RedisExpiringStore struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisExpiringStore(rdb *redis.Client) *RedisExpiringStore {
	return &RedisExpiringStore{rdb: rdb, prefix: redisKeyPrefix + "cookie:"}
}

func (s *RedisExpiringStore) Get(ctx context.Context, key string) (string, bool, error) {
	raw, err := s.rdb.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get cookie[%s]: %w", key, err)
	}
	v, ok := decodeValue(raw)
	return v, ok, nil
}

// Set stores value with ttl. An already expired value is the same as no
// value, so a non-positive ttl deletes the key.
func (s *RedisExpiringStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		return s.Clear(ctx, key)
	}
	if err := s.rdb.Set(ctx, s.prefix+key, encodeValue(value), ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cookie[%s]: %w", key, err)
	}
	return nil
}

func (s *RedisExpiringStore) Clear(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("failed to clear cookie[%s]: %w", key, err)
	}
	return nil
}

package kvstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyNamespace = "bookstore"

type cmdable interface {
	Ping(context.Context) *redis.StatusCmd
	Set(context.Context, string, any, time.Duration) *redis.StatusCmd
	Get(context.Context, string) *redis.StringCmd
	Del(context.Context, ...string) *redis.IntCmd
}

// RedisStore backs the named entries with Redis so several gateway instances
// can share one profile. Concurrent writers still race last-write-wins; there
// is deliberately no merge protocol.
type RedisStore struct {
	store   cmdable
	raw     *redis.Client
	timeout time.Duration
}

// NewRedisStore connects using a redis URL and verifies connectivity.
func NewRedisStore(ctx context.Context, url string) (*RedisStore, error) {
	if strings.TrimSpace(url) == "" {
		return nil, errors.New("redis url is required")
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	raw := redis.NewClient(opts)
	if err := raw.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisStore{store: raw, raw: raw, timeout: 5 * time.Second}, nil
}

func (s *RedisStore) Get(key string) (string, bool, error) {
	ctx, cancel := s.opCtx()
	defer cancel()

	val, err := s.store.Get(ctx, s.buildKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read entry %q: %w", key, err)
	}
	return val, true, nil
}

func (s *RedisStore) Set(key, value string) error {
	ctx, cancel := s.opCtx()
	defer cancel()

	if err := s.store.Set(ctx, s.buildKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("write entry %q: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(key string) error {
	ctx, cancel := s.opCtx()
	defer cancel()

	if err := s.store.Del(ctx, s.buildKey(key)).Err(); err != nil {
		return fmt.Errorf("delete entry %q: %w", key, err)
	}
	return nil
}

// Close shuts down the underlying client if available.
func (s *RedisStore) Close() error {
	if s.raw == nil {
		return nil
	}
	return s.raw.Close()
}

func (s *RedisStore) opCtx() (context.Context, context.CancelFunc) {
	timeout := s.timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return context.WithTimeout(context.Background(), timeout)
}

func (s *RedisStore) buildKey(key string) string {
	return keyNamespace + ":" + strings.TrimSpace(key)
}

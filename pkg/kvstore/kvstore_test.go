package kvstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, ok, err := store.Get(KeyCart)
	require.NoError(t, err)
	require.False(t, ok, "missing entry should not exist")

	require.NoError(t, store.Set(KeyCart, `[{"bookId":1}]`))

	val, ok, err := store.Get(KeyCart)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[{"bookId":1}]`, val)

	require.NoError(t, store.Delete(KeyCart))
	_, ok, err = store.Get(KeyCart)
	require.NoError(t, err)
	require.False(t, ok, "deleted entry should be gone")

	require.NoError(t, store.Delete(KeyCart), "double delete is a no-op")
}

func TestFileStoreRejectsPathKeys(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.Error(t, store.Set("../escape", "x"))
	_, _, err = store.Get("")
	require.Error(t, err)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.Set(KeyToken, "jwt"))
	val, ok, err := store.Get(KeyToken)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "jwt", val)

	require.NoError(t, store.Delete(KeyToken))
	_, ok, _ = store.Get(KeyToken)
	require.False(t, ok)
}

func TestRedisStoreNamespacesKeys(t *testing.T) {
	fake := &fakeCmdable{entries: map[string]string{}}
	store := &RedisStore{store: fake, timeout: time.Second}

	require.NoError(t, store.Set(KeyUser, `{"userId":7}`))
	require.Contains(t, fake.entries, "bookstore:user")

	val, ok, err := store.Get(KeyUser)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `{"userId":7}`, val)

	_, ok, err = store.Get(KeyCart)
	require.NoError(t, err)
	require.False(t, ok, "redis.Nil should read as absent")

	require.NoError(t, store.Delete(KeyUser))
	_, ok, _ = store.Get(KeyUser)
	require.False(t, ok)
}

type fakeCmdable struct {
	entries map[string]string
}

func (f *fakeCmdable) Ping(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (f *fakeCmdable) Set(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	f.entries[key] = fmt.Sprint(value)
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeCmdable) Get(ctx context.Context, key string) *redis.StringCmd {
	val, ok := f.entries[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(val, nil)
}

func (f *fakeCmdable) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var removed int64
	for _, key := range keys {
		if _, ok := f.entries[key]; ok {
			delete(f.entries, key)
			removed++
		}
	}
	return redis.NewIntResult(removed, nil)
}

package locker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryRedis struct {
	mu   sync.Mutex
	data map[string]string
	ttl  map[string]time.Duration
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{data: map[string]string{}, ttl: map[string]time.Duration{}}
}

func (m *memoryRedis) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memoryRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, _ := json.Marshal(value)
	m.data[key] = string(raw)
	m.ttl[key] = exp
	return nil
}

func (m *memoryRedis) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *memoryRedis) Expire(ctx context.Context, key string, exp time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ttl[key] = exp
	return nil
}

func (m *memoryRedis) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.data[key]; exists {
		return false, nil
	}
	raw, _ := json.Marshal(value)
	m.data[key] = string(raw)
	m.ttl[key] = exp
	return true, nil
}

func TestLockService(t *testing.T) {
	ctx := context.Background()

	t.Run("Second Lock Attempt Is Refused", func(t *testing.T) {
		svc := newLockService(newMemoryRedis(), zap.NewNop())

		acquired, token, err := svc.TryLock(ctx, "leader", time.Minute)
		require.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, token)

		acquired, _, err = svc.TryLock(ctx, "leader", time.Minute)
		require.NoError(t, err)
		assert.False(t, acquired)
	})

	t.Run("Unlock Releases For Owner", func(t *testing.T) {
		svc := newLockService(newMemoryRedis(), zap.NewNop())

		_, token, err := svc.TryLock(ctx, "leader", time.Minute)
		require.NoError(t, err)
		require.NoError(t, svc.Unlock(ctx, "leader", token))

		acquired, _, err := svc.TryLock(ctx, "leader", time.Minute)
		require.NoError(t, err)
		assert.True(t, acquired)
	})

	t.Run("Unlock With Foreign Token Fails", func(t *testing.T) {
		svc := newLockService(newMemoryRedis(), zap.NewNop())

		_, _, err := svc.TryLock(ctx, "leader", time.Minute)
		require.NoError(t, err)

		assert.Error(t, svc.Unlock(ctx, "leader", "someone-else"))
	})

	t.Run("Refresh Extends Owned Lock", func(t *testing.T) {
		store := newMemoryRedis()
		svc := newLockService(store, zap.NewNop())

		_, token, err := svc.TryLock(ctx, "leader", time.Minute)
		require.NoError(t, err)

		require.NoError(t, svc.Refresh(ctx, "leader", token, 5*time.Minute))
		assert.Equal(t, 5*time.Minute, store.ttl["leader"])
	})

	t.Run("Refresh Missing Lock Fails", func(t *testing.T) {
		svc := newLockService(newMemoryRedis(), zap.NewNop())
		assert.Error(t, svc.Refresh(ctx, "leader", "token", time.Minute))
	})
}

package sessions

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func TestMemoryStore_RevokeAndCheck(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	revoked, err := s.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, s.Revoke(ctx, "abc", time.Now().Add(time.Hour)))
	revoked, err = s.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestMemoryStore_ExpiredEntriesAreSwept(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	s := NewMemoryStore()
	s.now = func() time.Time { return now }

	require.NoError(t, s.Revoke(ctx, "old", now.Add(time.Minute)))
	require.NoError(t, s.Revoke(ctx, "already-expired", now.Add(-time.Minute)))
	assert.Equal(t, 1, s.Count())

	now = now.Add(2 * time.Minute)
	revoked, err := s.IsRevoked(ctx, "old")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, s.Revoke(ctx, "new", now.Add(time.Hour)))
	assert.Equal(t, 1, s.Count())
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	exp := time.Now().Add(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			jti := string(rune('a' + i%26))
			_ = s.Revoke(ctx, jti, exp)
			_, _ = s.IsRevoked(ctx, jti)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 26, s.Count())
}

func TestRedisStore(t *testing.T) {
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err, "Failed to start Redis container")
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	opts, err := redis.ParseURL(uri)
	require.NoError(t, err)

	client, err := NewRedisClient(ctx, opts.Addr, "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	s := NewRedisStore(client)

	require.NoError(t, s.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))
	revoked, err := s.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	ttl, err := client.TTL(ctx, keyPrefix+"jti-1").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 59*time.Minute)

	require.NoError(t, s.Revoke(ctx, "jti-2", time.Now().Add(-time.Minute)))
	revoked, err = s.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}

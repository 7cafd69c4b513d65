package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jazbaa/showcase/internal/app/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUser = &models.User{UID: "u1", Email: "investor@demo.com", Role: models.RoleInvestor}

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client), mr
}

func TestStores_CreateGetDelete(t *testing.T) {
	redisStore, _ := newRedisStore(t)
	stores := map[string]Store{
		"memory": NewMemoryStore(),
		"redis":  redisStore,
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := New(testUser, time.Hour, time.Now())

			require.NoError(t, store.Create(ctx, s))

			got, err := store.Get(ctx, s.ID)
			require.NoError(t, err)
			assert.Equal(t, "u1", got.UID)
			assert.Equal(t, models.RoleInvestor, got.Role)

			require.NoError(t, store.Delete(ctx, s.ID))
			_, err = store.Get(ctx, s.ID)
			assert.ErrorIs(t, err, ErrNotFound)

			// deleting twice is not an error
			assert.NoError(t, store.Delete(ctx, s.ID))
		})
	}
}

func TestRedisStore_ExpiresWithTTL(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()
	s := New(testUser, time.Minute, time.Now())
	require.NoError(t, store.Create(ctx, s))

	mr.FastForward(2 * time.Minute)

	_, err := store.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_RejectsExpiredSession(t *testing.T) {
	store, _ := newRedisStore(t)
	s := New(testUser, time.Minute, time.Now().Add(-time.Hour))
	assert.Error(t, store.Create(context.Background(), s))
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore()
	now := time.Now()
	store.now = func() time.Time { return now }

	s := New(testUser, time.Minute, now)
	require.NoError(t, store.Create(context.Background(), s))

	store.now = func() time.Time { return now.Add(time.Minute) }
	_, err := store.Get(context.Background(), s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

//go:build unit

package cartstore

import (
	"context"
	"testing"
	"time"

	"hotel-management-system/internal/domain/cart"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Both implementations must satisfy the same contract: absent carts
// come back as (nil, nil), stored carts round-trip, Clear removes.
func runStoreContract(t *testing.T, store cart.Store) {
	ctx := context.Background()
	guestID := uuid.New()

	t.Run("absent cart returns nil without error", func(t *testing.T) {
		got, err := store.Get(ctx, guestID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("stored cart round-trips", func(t *testing.T) {
		c := cart.New()
		c.Add(uuid.New())
		c.Add(uuid.New())
		c.CheckIn = time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC)
		c.CheckOut = time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)

		require.NoError(t, store.Put(ctx, guestID, c))

		got, err := store.Get(ctx, guestID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, c.RoomIDs, got.RoomIDs)
		assert.True(t, got.CheckIn.Equal(c.CheckIn))
		assert.True(t, got.CheckOut.Equal(c.CheckOut))
	})

	t.Run("carts are isolated per guest", func(t *testing.T) {
		other, err := store.Get(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, other)
	})

	t.Run("clear removes the cart", func(t *testing.T) {
		require.NoError(t, store.Clear(ctx, guestID))

		got, err := store.Get(ctx, guestID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestMemoryStore(t *testing.T) {
	runStoreContract(t, NewMemoryStore())
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	guestID := uuid.New()
	roomID := uuid.New()

	c := cart.New()
	c.Add(roomID)
	require.NoError(t, store.Put(ctx, guestID, c))

	got, err := store.Get(ctx, guestID)
	require.NoError(t, err)
	got.Remove(roomID)

	again, err := store.Get(ctx, guestID)
	require.NoError(t, err)
	assert.True(t, again.Contains(roomID), "mutating a returned cart must not affect the store")
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	runStoreContract(t, NewRedisStore(client, 30*time.Minute))
}

func TestRedisStoreTTL(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisStore(client, time.Minute)
	guestID := uuid.New()

	c := cart.New()
	c.Add(uuid.New())
	require.NoError(t, store.Put(ctx, guestID, c))

	// Abandoned carts expire on their own.
	mr.FastForward(2 * time.Minute)

	got, err := store.Get(ctx, guestID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

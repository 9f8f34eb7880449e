package repositories

import (
	"context"
	"testing"

	"tastypoint-cart/pkg/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func runStoreContract(t *testing.T, store CartKVStore) {
	ctx := context.Background()

	_, err := store.Get(ctx, "tastyCart")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "tastyCart", `[{"id":1,"name":"Zinger Burger","price":300,"quantity":1}]`))
	value, err := store.Get(ctx, "tastyCart")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1,"name":"Zinger Burger","price":300,"quantity":1}]`, value)

	require.NoError(t, store.Set(ctx, "tastyCart", "[]"))
	value, err = store.Get(ctx, "tastyCart")
	require.NoError(t, err)
	assert.Equal(t, "[]", value)

	_, err = store.Get(ctx, "tastyCart:other")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryStore(t *testing.T) {
	runStoreContract(t, NewMemoryStore())
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	redisCache := cache.NewRedisCache(mr.Addr(), "", 0, zap.NewNop())
	require.NotNil(t, redisCache)
	t.Cleanup(func() { redisCache.Close() })

	store := NewRedisStore(redisCache)
	runStoreContract(t, store)

	// Cart snapshots do not expire.
	assert.Zero(t, mr.TTL("tastyCart"))

	require.NoError(t, redisCache.Delete(context.Background(), "tastyCart"))
	_, err := store.Get(context.Background(), "tastyCart")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestRedisStore_ConnectionFailure(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	assert.Nil(t, cache.NewRedisCache(addr, "", 0, zap.NewNop()))
}

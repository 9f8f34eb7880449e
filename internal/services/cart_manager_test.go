package services

import (
	"context"
	"sync"
	"testing"

	"tastypoint-cart/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCartManager() *CartManager {
	return NewCartManager(repositories.NewMemoryStore(), NewPricingRules(DefaultVariantRules()), nil, zap.NewNop())
}

func TestCartManager_ConcurrentAddsOnSameKey(t *testing.T) {
	ctx := context.Background()
	manager := newTestCartManager()

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := manager.Do(ctx, DefaultCartKey, func(cart *CartService) error {
				_, err := cart.AddItem(ctx, ProductZingerBurger, "Zinger Burger", 300, strPtr("meal"))
				return err
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	err := manager.Do(ctx, DefaultCartKey, func(cart *CartService) error {
		items := cart.Items()
		require.Len(t, items, 1)
		assert.Equal(t, workers, items[0].Quantity)
		return nil
	})
	require.NoError(t, err)
	assert.Empty(t, manager.locks)
}

func TestCartManager_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	manager := newTestCartManager()

	require.NoError(t, manager.Do(ctx, "tastyCart:a", func(cart *CartService) error {
		_, err := cart.AddItem(ctx, 1, "Zinger Burger", 300, nil)
		return err
	}))

	require.NoError(t, manager.Do(ctx, "tastyCart:b", func(cart *CartService) error {
		assert.Empty(t, cart.Items())
		return nil
	}))
}

func TestCartManager_ReturnsCallbackError(t *testing.T) {
	err := newTestCartManager().Do(context.Background(), DefaultCartKey, func(cart *CartService) error {
		return cart.RemoveItem(context.Background(), 0)
	})
	assert.ErrorIs(t, err, ErrOutOfRange)
}

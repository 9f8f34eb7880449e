package services

import (
	"context"
	"sync"

	"tastypoint-cart/internal/repositories"

	"go.uber.org/zap"
)

// CartManager hands out a freshly loaded CartService per storage key and
// runs calls for the same key one at a time.
type CartManager struct {
	kv       repositories.CartKVStore
	pricing  *PricingRules
	notifier CartNotifier
	logger   *zap.Logger

	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

func NewCartManager(kv repositories.CartKVStore, pricing *PricingRules, notifier CartNotifier, logger *zap.Logger) *CartManager {
	return &CartManager{
		kv:       kv,
		pricing:  pricing,
		notifier: notifier,
		logger:   logger,
		locks:    make(map[string]*keyLock),
	}
}

// Do loads the cart stored under key and calls fn with a service bound to it.
func (m *CartManager) Do(ctx context.Context, key string, fn func(*CartService) error) error {
	l := m.acquire(key)
	defer m.release(key, l)

	store := NewCartStore(m.kv, key, m.notifier, m.logger)
	store.Load(ctx)
	return fn(NewCartService(store, m.pricing, m.logger))
}

func (m *CartManager) acquire(key string) *keyLock {
	m.mu.Lock()
	l, ok := m.locks[key]
	if !ok {
		l = &keyLock{}
		m.locks[key] = l
	}
	l.refs++
	m.mu.Unlock()

	l.mu.Lock()
	return l
}

func (m *CartManager) release(key string, l *keyLock) {
	l.mu.Unlock()

	m.mu.Lock()
	l.refs--
	if l.refs == 0 {
		delete(m.locks, key)
	}
	m.mu.Unlock()
}

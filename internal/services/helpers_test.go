package services

import (
	"context"
	"errors"
	"testing"

	"tastypoint-cart/internal/models"
	"tastypoint-cart/internal/repositories"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

var errStorageDown = errors.New("storage down")

// flakyStore wraps a real store and fails writes while failWrites is set.
type flakyStore struct {
	repositories.CartKVStore
	failWrites bool
	failReads  bool
	writes     int
}

func (s *flakyStore) Get(ctx context.Context, key string) (string, error) {
	if s.failReads {
		return "", errStorageDown
	}
	return s.CartKVStore.Get(ctx, key)
}

func (s *flakyStore) Set(ctx context.Context, key, value string) error {
	if s.failWrites {
		return errStorageDown
	}
	s.writes++
	return s.CartKVStore.Set(ctx, key, value)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) CartUpdated(ctx context.Context, cartKey string, badge models.Badge) {
	m.Called(ctx, cartKey, badge)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) SendMessage(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

func newTestCartService(t *testing.T, kv repositories.CartKVStore) *CartService {
	t.Helper()
	store := NewCartStore(kv, DefaultCartKey, nil, zap.NewNop())
	store.Load(context.Background())
	return NewCartService(store, NewPricingRules(DefaultVariantRules()), zap.NewNop())
}

func strPtr(s string) *string {
	return &s
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"tastypoint-cart/internal/models"
	"tastypoint-cart/internal/repositories"

	"go.uber.org/zap"
)

// DefaultCartKey is the storage key the storefront has always used.
const DefaultCartKey = "tastyCart"

// CartNotifier receives the badge state after every committed cart change.
type CartNotifier interface {
	CartUpdated(ctx context.Context, cartKey string, badge models.Badge)
}

// CartStore owns the cart's line items and keeps them in sync with the
// key-value store. Not safe for concurrent use; see CartManager.
type CartStore struct {
	kv       repositories.CartKVStore
	key      string
	notifier CartNotifier
	logger   *zap.Logger
	items    []models.LineItem
}

func NewCartStore(kv repositories.CartKVStore, key string, notifier CartNotifier, logger *zap.Logger) *CartStore {
	if notifier == nil {
		notifier = NopCartNotifier{}
	}
	return &CartStore{
		kv:       kv,
		key:      key,
		notifier: notifier,
		logger:   logger,
		items:    []models.LineItem{},
	}
}

func (s *CartStore) Key() string {
	return s.key
}

// Load restores the cart from storage. Anything that is not a valid saved
// cart, including a missing key, yields an empty cart.
func (s *CartStore) Load(ctx context.Context) []models.LineItem {
	s.items = []models.LineItem{}

	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, repositories.ErrKeyNotFound) {
			s.logger.Warn("failed to read saved cart", zap.String("key", s.key), zap.Error(err))
		}
		return s.Items()
	}

	items, ok := DecodeCart(raw)
	if !ok {
		s.logger.Debug("discarding unreadable saved cart", zap.String("key", s.key))
		return s.Items()
	}
	s.items = items
	return s.Items()
}

// Save writes items to storage and, only once the write succeeded, makes
// them the current cart and refreshes the badge.
func (s *CartStore) Save(ctx context.Context, items []models.LineItem) error {
	data, err := EncodeCart(items)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	s.items = cloneItems(items)
	s.notifier.CartUpdated(ctx, s.key, models.NewBadge(s.TotalQuantity()))
	return nil
}

// Items returns a copy of the current cart.
func (s *CartStore) Items() []models.LineItem {
	return cloneItems(s.items)
}

func (s *CartStore) TotalQuantity() int {
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// EncodeCart serializes a cart as a JSON array; an empty cart is "[]".
func EncodeCart(items []models.LineItem) ([]byte, error) {
	if items == nil {
		items = []models.LineItem{}
	}
	return json.Marshal(items)
}

// DecodeCart parses a saved cart. ok is false for anything that is not a
// JSON array of valid, uniquely named line items.
func DecodeCart(raw string) ([]models.LineItem, bool) {
	var items []models.LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, false
	}
	if items == nil {
		return nil, false
	}

	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if !item.Valid() {
			return nil, false
		}
		if _, dup := seen[item.Name]; dup {
			return nil, false
		}
		seen[item.Name] = struct{}{}
	}
	return items, true
}

func cloneItems(items []models.LineItem) []models.LineItem {
	out := make([]models.LineItem, len(items))
	copy(out, items)
	return out
}

package services

import (
	"context"
	"fmt"

	"tastypoint-cart/internal/models"

	"go.uber.org/zap"
)

type CartService struct {
	store   *CartStore
	pricing *PricingRules
	logger  *zap.Logger
}

func NewCartService(store *CartStore, pricing *PricingRules, logger *zap.Logger) *CartService {
	return &CartService{
		store:   store,
		pricing: pricing,
		logger:  logger,
	}
}

// AddItem adds one unit of a product (with its selected option) and returns
// the resolved display name. Items merge by that name; an existing entry
// keeps its original price.
func (s *CartService) AddItem(ctx context.Context, productID int, baseName string, basePrice int64, option *string) (string, error) {
	name, price := s.pricing.ResolveVariant(productID, baseName, basePrice, option)
	if price < 0 || price > models.MaxPrice {
		return "", &ValidationError{
			Field:   "price",
			Message: fmt.Sprintf("price must be between 0 and %d", models.MaxPrice),
		}
	}

	items := s.store.Items()
	found := false
	for i := range items {
		if items[i].Name == name {
			items[i].Quantity++
			found = true
			break
		}
	}

	if !found {
		items = append(items, models.LineItem{
			ProductID: productID,
			Name:      name,
			Price:     price,
			Quantity:  1,
		})
	}

	if err := s.store.Save(ctx, items); err != nil {
		return "", err
	}

	s.logger.Info("item added",
		zap.String("cart", s.store.Key()),
		zap.String("name", name),
		zap.Int("product_id", productID),
		zap.Int("total_quantity", s.store.TotalQuantity()),
	)
	return name, nil
}

// RemoveItem deletes the entry at index, keeping the order of the rest.
func (s *CartService) RemoveItem(ctx context.Context, index int) error {
	items := s.store.Items()
	if index < 0 || index >= len(items) {
		return fmt.Errorf("%w: index %d, cart has %d items", ErrOutOfRange, index, len(items))
	}

	removed := items[index]
	items = append(items[:index], items[index+1:]...)

	if err := s.store.Save(ctx, items); err != nil {
		return err
	}

	s.logger.Info("item removed",
		zap.String("cart", s.store.Key()),
		zap.String("name", removed.Name),
		zap.Int("total_quantity", s.store.TotalQuantity()),
	)
	return nil
}

func (s *CartService) Items() []models.LineItem {
	return s.store.Items()
}

func (s *CartService) TotalQuantity() int {
	return s.store.TotalQuantity()
}

func (s *CartService) Badge() models.Badge {
	return models.NewBadge(s.store.TotalQuantity())
}

package handlers

import (
	"context"

	"tastypoint-cart/internal/models"
	"tastypoint-cart/internal/services"
)

// CartManagerInterface defines the contract for per-cart access
type CartManagerInterface interface {
	Do(ctx context.Context, key string, fn func(*services.CartService) error) error
}

// CheckoutServiceInterface defines the contract for checkout
type CheckoutServiceInterface interface {
	Checkout(ctx context.Context, items []models.LineItem, customer models.Customer, orderType models.OrderType) (*services.CheckoutResult, error)
}

package models

import (
	"errors"
	"strings"
)

// LineItem is one distinct product/variant entry in the cart.
// The JSON shape matches what the storefront keeps in local storage.
type LineItem struct {
	ProductID int    `json:"id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

// MaxPrice caps a unit price so that cart totals stay well inside int64.
const MaxPrice int64 = 10_000_000

// LineTotal is price times quantity, in whole currency units.
func (i LineItem) LineTotal() int64 {
	return i.Price * int64(i.Quantity)
}

// Valid reports whether the item satisfies the cart data model.
func (i LineItem) Valid() bool {
	return i.Name != "" && i.Price >= 0 && i.Price <= MaxPrice && i.Quantity >= 1
}

type OrderType string

const (
	OrderTypePickup   OrderType = "pickup"
	OrderTypeDelivery OrderType = "delivery"
)

var ErrInvalidOrderType = errors.New("invalid order type")

// ParseOrderType accepts "pickup" or "delivery" (case-insensitive).
// An empty value means pickup, which is the storefront's default selection.
func ParseOrderType(value string) (OrderType, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(OrderTypePickup):
		return OrderTypePickup, nil
	case string(OrderTypeDelivery):
		return OrderTypeDelivery, nil
	}
	return "", ErrInvalidOrderType
}

func (t OrderType) IsDelivery() bool {
	return t == OrderTypeDelivery
}

// Customer holds the checkout form fields. Never persisted.
type Customer struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Totals is the bill breakdown of a cart.
type Totals struct {
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"delivery_fee"`
	Total       int64 `json:"total"`
}

// Badge is the cart counter shown in the site header.
type Badge struct {
	Count   int  `json:"count"`
	Visible bool `json:"visible"`
}

func NewBadge(count int) Badge {
	return Badge{Count: count, Visible: count > 0}
}

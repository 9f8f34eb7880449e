package services

import (
	"errors"
	"strings"
	"testing"

	"tastypoint-cart/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFormatter() *OrderFormatter {
	return NewOrderFormatter("TASTY POINT", "Rs", DefaultDeliveryFee)
}

func TestOrderFormatter_Delivery(t *testing.T) {
	items := []models.LineItem{
		{ProductID: 1, Name: "Zinger Burger (Meal)", Price: 450, Quantity: 2},
		{ProductID: 3, Name: "Shawarma (Spicy)", Price: 250, Quantity: 1},
	}
	customer := models.Customer{Name: "  Ali  ", Address: " House 12, Street 4 "}

	msg, err := newTestFormatter().Format(items, customer, models.OrderTypeDelivery)
	require.NoError(t, err)

	want := "*NEW ORDER - TASTY POINT* 🍔\n" +
		"----------------------------\n" +
		"👤 *Name:* Ali\n" +
		"🚚 *Order Type:* DELIVERY\n" +
		"📍 *Address:* House 12, Street 4\n" +
		"\n*🛒 ITEMS:*\n" +
		"▫️ 2 x Zinger Burger (Meal) = 900 Rs\n" +
		"▫️ 1 x Shawarma (Spicy) = 250 Rs\n" +
		"----------------------------\n" +
		"💰 *Subtotal:* 1150 Rs\n" +
		"🛵 *Delivery:* 50 Rs\n" +
		"🔥 *TOTAL BILL: 1200 Rs*\n"
	assert.Equal(t, want, msg)
}

func TestOrderFormatter_PickupOmitsAddressAndFee(t *testing.T) {
	customer := models.Customer{Name: "Sara", Address: "ignored for pickup"}

	msg, err := newTestFormatter().Format(sampleCart(), customer, models.OrderTypePickup)
	require.NoError(t, err)

	assert.Contains(t, msg, "🚚 *Order Type:* PICKUP\n")
	assert.NotContains(t, msg, "Address")
	assert.NotContains(t, msg, "Delivery:")
	assert.True(t, strings.HasSuffix(msg, "🔥 *TOTAL BILL: 900 Rs*\n"))
}

func TestOrderFormatter_FieldOrder(t *testing.T) {
	msg, err := newTestFormatter().Format(sampleCart(), models.Customer{Name: "Ali", Address: "Block B"}, models.OrderTypeDelivery)
	require.NoError(t, err)

	markers := []string{"NEW ORDER", "*Name:*", "*Order Type:*", "*Address:*", "ITEMS:", "2 x Zinger", "*Subtotal:*", "*Delivery:*", "TOTAL BILL"}
	last := -1
	for _, m := range markers {
		idx := strings.Index(msg, m)
		require.NotEqual(t, -1, idx, "missing %q", m)
		assert.Greater(t, idx, last, "%q out of order", m)
		last = idx
	}
}

func TestOrderFormatter_Validation(t *testing.T) {
	tests := []struct {
		name      string
		customer  models.Customer
		orderType models.OrderType
		field     string
	}{
		{"empty name", models.Customer{Name: "", Address: "Block B"}, models.OrderTypePickup, "name"},
		{"whitespace name", models.Customer{Name: " \t\n", Address: "Block B"}, models.OrderTypeDelivery, "name"},
		{"delivery without address", models.Customer{Name: "Ali"}, models.OrderTypeDelivery, "address"},
		{"delivery with blank address", models.Customer{Name: "Ali", Address: "   "}, models.OrderTypeDelivery, "address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := newTestFormatter().Format(sampleCart(), tt.customer, tt.orderType)

			assert.Empty(t, msg)
			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestOrderFormatter_PickupWithoutAddress(t *testing.T) {
	_, err := newTestFormatter().Format(sampleCart(), models.Customer{Name: "Ali"}, models.OrderTypePickup)
	assert.NoError(t, err)
}

package services

import (
	"fmt"
	"strings"

	"tastypoint-cart/internal/models"
)

const messageSeparator = "----------------------------"

type OrderFormatter struct {
	shopName    string
	currency    string
	deliveryFee int64
}

func NewOrderFormatter(shopName, currency string, deliveryFee int64) *OrderFormatter {
	return &OrderFormatter{
		shopName:    shopName,
		currency:    currency,
		deliveryFee: deliveryFee,
	}
}

func (f *OrderFormatter) DeliveryFee() int64 {
	return f.deliveryFee
}

// Validate checks the customer fields checkout requires.
func (f *OrderFormatter) Validate(customer models.Customer, orderType models.OrderType) error {
	if strings.TrimSpace(customer.Name) == "" {
		return &ValidationError{Field: "name", Message: "Please enter your name."}
	}
	if orderType.IsDelivery() && strings.TrimSpace(customer.Address) == "" {
		return &ValidationError{Field: "address", Message: "Please enter your delivery address."}
	}
	return nil
}

// Format renders the order message sent to the shop.
func (f *OrderFormatter) Format(items []models.LineItem, customer models.Customer, orderType models.OrderType) (string, error) {
	if err := f.Validate(customer, orderType); err != nil {
		return "", err
	}

	name := strings.TrimSpace(customer.Name)
	address := strings.TrimSpace(customer.Address)
	totals := ComputeTotals(items, orderType, f.deliveryFee)

	var b strings.Builder
	fmt.Fprintf(&b, "*NEW ORDER - %s* 🍔\n", f.shopName)
	b.WriteString(messageSeparator + "\n")
	fmt.Fprintf(&b, "👤 *Name:* %s\n", name)
	fmt.Fprintf(&b, "🚚 *Order Type:* %s\n", strings.ToUpper(string(orderType)))
	if orderType.IsDelivery() {
		fmt.Fprintf(&b, "📍 *Address:* %s\n", address)
	}

	b.WriteString("\n*🛒 ITEMS:*\n")
	for _, item := range items {
		fmt.Fprintf(&b, "▫️ %d x %s = %d %s\n", item.Quantity, item.Name, item.LineTotal(), f.currency)
	}

	b.WriteString(messageSeparator + "\n")
	fmt.Fprintf(&b, "💰 *Subtotal:* %d %s\n", totals.Subtotal, f.currency)
	if totals.DeliveryFee > 0 {
		fmt.Fprintf(&b, "🛵 *Delivery:* %d %s\n", totals.DeliveryFee, f.currency)
	}
	fmt.Fprintf(&b, "🔥 *TOTAL BILL: %d %s*\n", totals.Total, f.currency)

	return b.String(), nil
}

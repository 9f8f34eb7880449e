package services

import "tastypoint-cart/internal/models"

// DefaultDeliveryFee is the flat delivery surcharge in Rs.
const DefaultDeliveryFee int64 = 50

// ComputeTotals returns the bill for items. The delivery fee applies only to
// delivery orders.
func ComputeTotals(items []models.LineItem, orderType models.OrderType, deliveryFee int64) models.Totals {
	var subtotal int64
	for _, item := range items {
		subtotal += item.LineTotal()
	}

	var fee int64
	if orderType.IsDelivery() {
		fee = deliveryFee
	}

	return models.Totals{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       subtotal + fee,
	}
}

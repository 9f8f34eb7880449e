package services

import "tastypoint-cart/internal/models"

type CartLineView struct {
	Index int `json:"index"`
	models.LineItem
	LineTotal int64 `json:"line_total"`
}

// CartView is everything the cart page needs to draw itself.
type CartView struct {
	Items           []CartLineView   `json:"items"`
	Totals          models.Totals    `json:"totals"`
	OrderType       models.OrderType `json:"order_type"`
	Empty           bool             `json:"empty"`
	AddressRequired bool             `json:"address_required"`
	Badge           models.Badge     `json:"badge"`
}

func BuildCartView(items []models.LineItem, orderType models.OrderType, deliveryFee int64) *CartView {
	lines := make([]CartLineView, 0, len(items))
	count := 0
	for i, item := range items {
		lines = append(lines, CartLineView{
			Index:     i,
			LineItem:  item,
			LineTotal: item.LineTotal(),
		})
		count += item.Quantity
	}

	return &CartView{
		Items:           lines,
		Totals:          ComputeTotals(items, orderType, deliveryFee),
		OrderType:       orderType,
		Empty:           len(items) == 0,
		AddressRequired: orderType.IsDelivery(),
		Badge:           models.NewBadge(count),
	}
}

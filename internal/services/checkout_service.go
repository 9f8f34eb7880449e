package services

import (
	"context"
	"strings"

	"tastypoint-cart/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SubmittedOrder is what order sinks receive after a successful checkout.
type SubmittedOrder struct {
	ID        string
	Customer  models.Customer
	OrderType models.OrderType
	Items     []models.LineItem
	Totals    models.Totals
	Message   string
	URL       string
}

type CheckoutResult struct {
	OrderID string        `json:"order_id"`
	Message string        `json:"message"`
	URL     string        `json:"url"`
	Totals  models.Totals `json:"totals"`
}

type CheckoutService struct {
	formatter *OrderFormatter
	channel   *OrderChannel
	sinks     []OrderSink
	logger    *zap.Logger
}

func NewCheckoutService(
	formatter *OrderFormatter,
	channel *OrderChannel,
	sinks []OrderSink,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		formatter: formatter,
		channel:   channel,
		sinks:     sinks,
		logger:    logger,
	}
}

// Checkout formats the order and builds the messaging link for it. A
// *ValidationError aborts before anything is produced. The cart is left as is.
func (s *CheckoutService) Checkout(ctx context.Context, items []models.LineItem, customer models.Customer, orderType models.OrderType) (*CheckoutResult, error) {
	message, err := s.formatter.Format(items, customer, orderType)
	if err != nil {
		return nil, err
	}

	order := &SubmittedOrder{
		ID: uuid.New().String(),
		Customer: models.Customer{
			Name:    strings.TrimSpace(customer.Name),
			Address: strings.TrimSpace(customer.Address),
		},
		OrderType: orderType,
		Items:     items,
		Totals:    ComputeTotals(items, orderType, s.formatter.DeliveryFee()),
		Message:   message,
		URL:       s.channel.BuildURL(message),
	}

	for _, sink := range s.sinks {
		if err := sink.Submit(ctx, order); err != nil {
			s.logger.Warn("order sink failed",
				zap.String("sink", sink.Name()),
				zap.String("order_id", order.ID),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("order checked out",
		zap.String("order_id", order.ID),
		zap.String("order_type", string(orderType)),
		zap.Int64("total", order.Totals.Total),
	)

	return &CheckoutResult{
		OrderID: order.ID,
		Message: order.Message,
		URL:     order.URL,
		Totals:  order.Totals,
	}, nil
}

package services

import (
	"context"
	"fmt"
	"time"

	"tastypoint-cart/pkg/messaging"
)

// OrderSink receives a submitted order in addition to the messaging link.
type OrderSink interface {
	Name() string
	Submit(ctx context.Context, order *SubmittedOrder) error
}

// Mailer is implemented by *mailer.SendGridMailer.
type Mailer interface {
	Send(ctx context.Context, subject, body string) error
}

// KafkaOrderSink publishes order.submitted events.
type KafkaOrderSink struct {
	publisher EventPublisher
	topic     string
}

func NewKafkaOrderSink(publisher EventPublisher, topic string) *KafkaOrderSink {
	return &KafkaOrderSink{publisher: publisher, topic: topic}
}

func (s *KafkaOrderSink) Name() string { return "kafka" }

func (s *KafkaOrderSink) Submit(ctx context.Context, order *SubmittedOrder) error {
	event := messaging.OrderEvent{
		Type:         messaging.EventOrderSubmitted,
		OrderID:      order.ID,
		CustomerName: order.Customer.Name,
		OrderType:    string(order.OrderType),
		Message:      order.Message,
		Subtotal:     order.Totals.Subtotal,
		DeliveryFee:  order.Totals.DeliveryFee,
		Total:        order.Totals.Total,
		OccurredAt:   time.Now(),
	}
	if order.OrderType.IsDelivery() {
		event.Address = order.Customer.Address
	}
	return s.publisher.SendMessage(ctx, s.topic, order.ID, event)
}

// EmailOrderSink mails the formatted message to the kitchen.
type EmailOrderSink struct {
	mailer Mailer
}

func NewEmailOrderSink(mailer Mailer) *EmailOrderSink {
	return &EmailOrderSink{mailer: mailer}
}

func (s *EmailOrderSink) Name() string { return "email" }

func (s *EmailOrderSink) Submit(ctx context.Context, order *SubmittedOrder) error {
	subject := fmt.Sprintf("New %s order from %s (%d)", order.OrderType, order.Customer.Name, order.Totals.Total)
	return s.mailer.Send(ctx, subject, order.Message)
}

package services

import (
	"context"
	"time"

	"tastypoint-cart/internal/models"
	"tastypoint-cart/pkg/messaging"

	"go.uber.org/zap"
)

// EventPublisher is implemented by *messaging.KafkaProducer.
type EventPublisher interface {
	SendMessage(ctx context.Context, topic, key string, value interface{}) error
}

type NopCartNotifier struct{}

func (NopCartNotifier) CartUpdated(context.Context, string, models.Badge) {}

// LogCartNotifier records badge changes in the service log.
type LogCartNotifier struct {
	logger *zap.Logger
}

func NewLogCartNotifier(logger *zap.Logger) *LogCartNotifier {
	return &LogCartNotifier{logger: logger}
}

func (n *LogCartNotifier) CartUpdated(ctx context.Context, cartKey string, badge models.Badge) {
	n.logger.Debug("badge updated",
		zap.String("cart", cartKey),
		zap.Int("count", badge.Count),
		zap.Bool("visible", badge.Visible),
	)
}

// DefaultPublishTimeout bounds one cart event publish.
const DefaultPublishTimeout = 500 * time.Millisecond

// KafkaCartNotifier publishes a cart.updated event per committed change.
// Publish failures are logged; the cart change itself already happened.
// The publish runs under the cart's lock, so it is detached from the request
// context and capped at timeout.
type KafkaCartNotifier struct {
	publisher EventPublisher
	topic     string
	timeout   time.Duration
	logger    *zap.Logger
}

func NewKafkaCartNotifier(publisher EventPublisher, topic string, timeout time.Duration, logger *zap.Logger) *KafkaCartNotifier {
	if timeout <= 0 {
		timeout = DefaultPublishTimeout
	}
	return &KafkaCartNotifier{
		publisher: publisher,
		topic:     topic,
		timeout:   timeout,
		logger:    logger,
	}
}

func (n *KafkaCartNotifier) CartUpdated(ctx context.Context, cartKey string, badge models.Badge) {
	event := messaging.CartEvent{
		Type:          messaging.EventCartUpdated,
		CartKey:       cartKey,
		TotalQuantity: badge.Count,
		OccurredAt:    time.Now(),
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
	defer cancel()

	if err := n.publisher.SendMessage(ctx, n.topic, cartKey, event); err != nil {
		n.logger.Warn("failed to publish cart event", zap.String("cart", cartKey), zap.Error(err))
	}
}

// MultiCartNotifier fans a change out to several notifiers.
type MultiCartNotifier []CartNotifier

func (m MultiCartNotifier) CartUpdated(ctx context.Context, cartKey string, badge models.Badge) {
	for _, n := range m {
		n.CartUpdated(ctx, cartKey, badge)
	}
}

package messaging

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the subset of *kafka.Writer the producer uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaProducer struct {
	brokers   []string
	newWriter func(topic string) MessageWriter

	mu      sync.Mutex
	writers map[string]MessageWriter
}

func NewKafkaProducer(brokers []string) *KafkaProducer {
	p := &KafkaProducer{
		brokers: brokers,
		writers: make(map[string]MessageWriter),
	}
	p.newWriter = p.kafkaWriter
	return p
}

// NewKafkaProducerWithWriter lets callers supply their own writer per topic.
func NewKafkaProducerWithWriter(newWriter func(topic string) MessageWriter) *KafkaProducer {
	return &KafkaProducer{
		newWriter: newWriter,
		writers:   make(map[string]MessageWriter),
	}
}

func (kp *KafkaProducer) kafkaWriter(topic string) MessageWriter {
	return &kafka.Writer{
		Addr:                   kafka.TCP(kp.brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
		WriteTimeout:           5 * time.Second,
	}
}

func (kp *KafkaProducer) GetWriter(topic string) MessageWriter {
	kp.mu.Lock()
	defer kp.mu.Unlock()

	if writer, exists := kp.writers[topic]; exists {
		return writer
	}

	writer := kp.newWriter(topic)
	kp.writers[topic] = writer
	return writer
}

func (kp *KafkaProducer) SendMessage(ctx context.Context, topic, key string, value interface{}) error {
	writer := kp.GetWriter(topic)

	jsonData, err := json.Marshal(value)
	if err != nil {
		return err
	}

	message := kafka.Message{
		Key:   []byte(key),
		Value: jsonData,
	}

	return writer.WriteMessages(ctx, message)
}

func (kp *KafkaProducer) Close() {
	kp.mu.Lock()
	defer kp.mu.Unlock()

	for _, writer := range kp.writers {
		writer.Close()
	}
}

// Event types published by the cart service
const (
	EventCartUpdated    = "cart.updated"
	EventOrderSubmitted = "order.submitted"
)

type CartEvent struct {
	Type          string    `json:"type"`
	CartKey       string    `json:"cart_key"`
	TotalQuantity int       `json:"total_quantity"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type OrderEvent struct {
	Type         string    `json:"type"`
	OrderID      string    `json:"order_id"`
	CustomerName string    `json:"customer_name"`
	OrderType    string    `json:"order_type"`
	Address      string    `json:"address,omitempty"`
	Message      string    `json:"message"`
	Subtotal     int64     `json:"subtotal"`
	DeliveryFee  int64     `json:"delivery_fee"`
	Total        int64     `json:"total"`
	OccurredAt   time.Time `json:"occurred_at"`
}

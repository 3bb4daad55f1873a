package messaging

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
)

// KafkaProducer publishes storefront activity events. Writers are created
// lazily per topic and reused.
type KafkaProducer struct {
	mu      sync.Mutex
	brokers []string
	writers map[string]*kafka.Writer
}

func NewKafkaProducer(brokers []string) *KafkaProducer {
	return &KafkaProducer{
		brokers: brokers,
		writers: make(map[string]*kafka.Writer),
	}
}

func (kp *KafkaProducer) getWriter(topic string) *kafka.Writer {
	kp.mu.Lock()
	defer kp.mu.Unlock()

	if writer, exists := kp.writers[topic]; exists {
		return writer
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(kp.brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	kp.writers[topic] = writer
	return writer
}

func (kp *KafkaProducer) SendMessage(ctx context.Context, topic, key string, value interface{}) error {
	writer := kp.getWriter(topic)

	jsonData, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: jsonData,
	})
}

func (kp *KafkaProducer) Close() {
	kp.mu.Lock()
	defer kp.mu.Unlock()

	for _, writer := range kp.writers {
		writer.Close()
	}
}

// OrderPlacedEvent is emitted after the Order Service accepts a checkout
// submission. Amounts are decimal strings like everywhere else on the wire.
type OrderPlacedEvent struct {
	EventID       string    `json:"event_id"`
	OrderID       string    `json:"order_id"`
	UserID        string    `json:"user_id"`
	ItemCount     int       `json:"item_count"`
	Total         string    `json:"total"`
	PaymentMethod string    `json:"payment_method"`
	PlacedAt      time.Time `json:"placed_at"`
}

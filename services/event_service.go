package services

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

// Order event types published to the order-events topic.
const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
)

// OrderEvent is the payload consumers (dashboard, analytics) receive for
// every order write.
type OrderEvent struct {
	EventID     string    `json:"event_id"`
	Type        string    `json:"type"`
	OrderID     string    `json:"order_id"`
	OrderStatus string    `json:"order_status"`
	PaymentMode string    `json:"payment_mode"`
	TotalPrice  string    `json:"total_price"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// IEventPublisher defines the interface for the order event stream.
type IEventPublisher interface {
	PublishOrderEvent(event OrderEvent) error
}

// KafkaEventPublisher implements IEventPublisher using Sarama.
type KafkaEventPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaEventPublisher creates a new KafkaEventPublisher instance.
func NewKafkaEventPublisher(brokers []string, topic string) (IEventPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to start Sarama producer: %w", err)
	}

	return &KafkaEventPublisher{producer: producer, topic: topic}, nil
}

// PublishOrderEvent sends the event keyed by order id so a consumer sees a
// single order's events in order.
func (p *KafkaEventPublisher) PublishOrderEvent(event OrderEvent) error {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(payload),
	}
	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("failed to publish order event: %w", err)
	}
	return nil
}

// NoopEventPublisher is used when no kafka brokers are configured.
type NoopEventPublisher struct {
	logger *slog.Logger
}

func NewNoopEventPublisher(logger *slog.Logger) IEventPublisher {
	return &NoopEventPublisher{logger: logger}
}

func (p *NoopEventPublisher) PublishOrderEvent(event OrderEvent) error {
	p.logger.Debug("event publishing disabled, dropping order event",
		"type", event.Type, "order_id", event.OrderID)
	return nil
}

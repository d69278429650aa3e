package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/segmentio/kafka-go"
)

const TypeStatusChanged = "booking.status_changed"

// StatusChanged is published after every committed booking action.
type StatusChanged struct {
	Type      string    `json:"type"`
	BookingID string    `json:"booking_id"`
	BookingNo string    `json:"booking_no"`
	Action    string    `json:"action"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Actor     int       `json:"actor"`
	At        time.Time `json:"at"`
}

// Writer is the part of kafka.Writer the producer uses.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Publisher interface {
	Publish(ctx context.Context, key string, value interface{}) error
	Close() error
}

type KafkaProducer struct {
	writer Writer
}

func NewKafkaProducer(brokerURL, topic string) *KafkaProducer {
	return &KafkaProducer{writer: &kafka.Writer{
		Addr:         kafka.TCP(brokerURL),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}}
}

func NewKafkaProducerWithWriter(w Writer) *KafkaProducer {
	return &KafkaProducer{writer: w}
}

// Publish writes value as JSON keyed by key, so events of one booking stay ordered on a partition.
func (p *KafkaProducer) Publish(ctx context.Context, key string, value interface{}) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: b}); err != nil {
		log.Errorw("kafka write failed", "key", key, "error", err)
		return err
	}
	return nil
}

func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}

// NopPublisher drops events. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, key string, value interface{}) error { return nil }
func (NopPublisher) Close() error                                                     { return nil }

// New picks the kafka producer when a broker is set.
func New(brokerURL, topic string) Publisher {
	if brokerURL == "" {
		return NopPublisher{}
	}
	return NewKafkaProducer(brokerURL, topic)
}

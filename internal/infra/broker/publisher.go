package broker

import (
	"context"
	"encoding/json"
	"fmt"

	"table-booking/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher is the ReviewEventSink used when a broker is configured.
// Messages are keyed by restaurant so one restaurant's events stay ordered.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event shared.ReviewEvent) error {
	msg, err := EncodeEvent(event)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka write: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func EncodeEvent(event shared.ReviewEvent) (kafka.Message, error) {
	value, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode review event: %w", err)
	}
	return kafka.Message{
		Key:   []byte(event.RestaurantID.String()),
		Value: value,
		Time:  event.OccurredAt,
	}, nil
}

func DecodeEvent(m kafka.Message) (shared.ReviewEvent, error) {
	var event shared.ReviewEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		return shared.ReviewEvent{}, fmt.Errorf("decode review event: %w", err)
	}
	return event, nil
}

package broker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"table-booking/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
)

const (
	defaultHandleAttempts = 5
	defaultRetryBackoff   = 200 * time.Millisecond
)

// MessageReader is the subset of *kafka.Reader the consumer drives.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaConsumer struct {
	reader   MessageReader
	logger   *slog.Logger
	attempts int
	backoff  time.Duration
}

func NewKafkaConsumer(brokers []string, groupID string, topic string, logger *slog.Logger) *KafkaConsumer {
	return NewConsumer(kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		GroupID: groupID,
		Topic:   topic,
	}), logger, defaultHandleAttempts, defaultRetryBackoff)
}

func NewConsumer(reader MessageReader, logger *slog.Logger, attempts int, backoff time.Duration) *KafkaConsumer {
	if attempts < 1 {
		attempts = 1
	}
	return &KafkaConsumer{reader: reader, logger: logger, attempts: attempts, backoff: backoff}
}

// Consume feeds review events to handler until ctx is cancelled. A message is
// committed only once the handler succeeded or its attempts are exhausted;
// the attempts are retried with linear backoff. An exhausted event leaves the
// aggregate stale until the next mutation of the same restaurant recomputes it.
// A cancelled ctx stops the loop without committing the in-flight message, so
// it is redelivered to the next group member.
func (c *KafkaConsumer) Consume(ctx context.Context, handler func(context.Context, shared.ReviewEvent) error) error {
	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			c.logger.Warn("kafka read error", slog.Any("error", err))
			continue
		}

		event, err := DecodeEvent(m)
		if err != nil {
			c.logger.Warn("dropping undecodable review event",
				slog.String("topic", m.Topic),
				slog.Int("partition", m.Partition),
				slog.Int64("offset", m.Offset),
				slog.Any("error", err))
		} else if err := c.handle(ctx, event, handler); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.logger.Error("review event abandoned after retries",
				slog.String("restaurant_id", event.RestaurantID.String()),
				slog.Int64("offset", m.Offset),
				slog.Int("attempts", c.attempts),
				slog.Any("error", err))
		}

		if err := c.reader.CommitMessages(ctx, m); err != nil && ctx.Err() == nil {
			c.logger.Warn("kafka commit error", slog.Any("error", err))
		}
	}
}

func (c *KafkaConsumer) handle(ctx context.Context, event shared.ReviewEvent, handler func(context.Context, shared.ReviewEvent) error) error {
	var err error
	for attempt := 1; attempt <= c.attempts; attempt++ {
		if err = handler(ctx, event); err == nil {
			return nil
		}
		if attempt == c.attempts {
			break
		}
		c.logger.Warn("kafka handler error, retrying",
			slog.String("restaurant_id", event.RestaurantID.String()),
			slog.Int("attempt", attempt),
			slog.Any("error", err))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * c.backoff):
		}
	}
	return err
}

func (c *KafkaConsumer) Close() error {
	return c.reader.Close()
}

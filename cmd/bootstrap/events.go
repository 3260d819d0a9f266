package bootstrap

import (
	"context"
	"log/slog"

	"table-booking/internal/infra/broker"
	"table-booking/internal/pkg/config"
	"table-booking/internal/usecase/rating"
	"table-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewReviewEventSink,
	),
)

// NewReviewEventSink publishes review mutations to Kafka when brokers are
// configured and runs the recompute consumer in this process. Without Kafka
// the recompute runs in a background goroutine per event.
func NewReviewEventSink(lc fx.Lifecycle, cfg config.Config, recalc rating.Recalculator, logger *slog.Logger) shared.ReviewEventSink {
	if !cfg.Kafka.Enabled() {
		dispatcher := rating.NewAsyncDispatcher(recalc, cfg.Booking.RecalcTimeout, logger)
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				dispatcher.Wait()
				return nil
			},
		})
		return dispatcher
	}

	publisher := broker.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	consumer := broker.NewKafkaConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, logger)
	consumeCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("Starting review event consumer", "topic", cfg.Kafka.Topic, "group", cfg.Kafka.GroupID)
			go func() {
				defer close(done)
				_ = consumer.Consume(consumeCtx, func(ctx context.Context, event shared.ReviewEvent) error {
					ctx, cancelRecalc := context.WithTimeout(ctx, cfg.Booking.RecalcTimeout)
					defer cancelRecalc()
					return rating.HandleEvent(ctx, recalc, event)
				})
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-ctx.Done():
			}
			if err := consumer.Close(); err != nil {
				logger.Warn("Failed to close kafka consumer", "error", err)
			}
			return publisher.Close()
		},
	})

	return publisher
}

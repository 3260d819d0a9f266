package rating

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"table-booking/internal/usecase/shared"
)

// AsyncDispatcher is the in-process ReviewEventSink. Each event triggers a
// recompute on its own goroutine with a context detached from the request.
type AsyncDispatcher struct {
	recalc  Recalculator
	timeout time.Duration
	logger  *slog.Logger
	wg      sync.WaitGroup
}

func NewAsyncDispatcher(recalc Recalculator, timeout time.Duration, logger *slog.Logger) *AsyncDispatcher {
	return &AsyncDispatcher{
		recalc:  recalc,
		timeout: timeout,
		logger:  logger,
	}
}

func (d *AsyncDispatcher) Publish(ctx context.Context, event shared.ReviewEvent) error {
	detached := context.WithoutCancel(ctx)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		runCtx, cancel := context.WithTimeout(detached, d.timeout)
		defer cancel()
		d.handle(runCtx, event)
	}()
	return nil
}

// Wait blocks until every dispatched recompute has finished.
func (d *AsyncDispatcher) Wait() {
	d.wg.Wait()
}

func (d *AsyncDispatcher) handle(ctx context.Context, event shared.ReviewEvent) {
	if err := HandleEvent(ctx, d.recalc, event); err != nil {
		d.logger.Error("rating recompute failed",
			slog.String("restaurant_id", event.RestaurantID.String()),
			slog.String("review_id", event.ReviewID.String()),
			slog.String("kind", string(event.Kind)),
			slog.Any("error", err))
	}
}

// HandleEvent recomputes the aggregate of the restaurant the event refers to.
// It is shared by the in-process dispatcher and the broker consumer.
func HandleEvent(ctx context.Context, recalc Recalculator, event shared.ReviewEvent) error {
	_, err := recalc.Recalculate(ctx, event.RestaurantID)
	return err
}

package rating

import (
	"context"
	"log/slog"

	domrating "table-booking/internal/domain/rating"
	"table-booking/internal/usecase/queries"
	"table-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// AggregateCache receives every freshly computed aggregate.
type AggregateCache interface {
	Set(ctx context.Context, view *queries.RatingView) error
}

type Recalculator interface {
	Recalculate(ctx context.Context, restaurantID uuid.UUID) (domrating.Aggregate, error)
}

type recalculatorImpl struct {
	uow    shared.UnitOfWork
	cache  AggregateCache
	logger *slog.Logger
}

func NewRecalculator(uow shared.UnitOfWork, cache AggregateCache, logger *slog.Logger) Recalculator {
	return &recalculatorImpl{uow: uow, cache: cache, logger: logger}
}

// Recalculate recomputes the aggregate of one restaurant from its live
// reviews and overwrites the stored columns. The cache refresh is best effort.
func (r *recalculatorImpl) Recalculate(ctx context.Context, restaurantID uuid.UUID) (domrating.Aggregate, error) {
	var agg domrating.Aggregate
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		stars, err := tx.Reads().StarsByRestaurant(ctx, restaurantID)
		if err != nil {
			return err
		}
		agg = domrating.Recompute(stars)
		return tx.Ratings().Save(ctx, tx.DB(), restaurantID, agg)
	})
	if err != nil {
		return domrating.Aggregate{}, err
	}

	view := &queries.RatingView{
		RestaurantID:  restaurantID,
		AverageRating: agg.AverageRating,
		ReviewCount:   agg.ReviewCount,
	}
	if err := r.cache.Set(ctx, view); err != nil {
		r.logger.Warn("rating cache refresh failed",
			slog.String("restaurant_id", restaurantID.String()),
			slog.Any("error", err))
	}
	return agg, nil
}

package queries

import (
	"context"
	"log/slog"
	"time"

	"table-booking/internal/infra"

	"github.com/google/uuid"
)

type RestaurantReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RestaurantView, error)
	List(ctx context.Context, after *Keyset, limit int32) ([]*RestaurantView, error)
}

// RatingCache is a best-effort read-through cache for restaurant aggregates.
type RatingCache interface {
	Get(ctx context.Context, restaurantID uuid.UUID) (*RatingView, bool, error)
	Set(ctx context.Context, view *RatingView) error
}

type RestaurantQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RestaurantView, error)
	List(ctx context.Context, cursor *Cursor, limit int) ([]*RestaurantView, *Cursor, error)
	GetRating(ctx context.Context, id uuid.UUID) (*RatingView, error)
}

type restaurantQueriesImpl struct {
	store  RestaurantReadStore
	cache  RatingCache
	logger *slog.Logger
}

func NewRestaurantQueries(store RestaurantReadStore, cache RatingCache, logger *slog.Logger) RestaurantQueries {
	return &restaurantQueriesImpl{
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

func (q *restaurantQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RestaurantView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *restaurantQueriesImpl) List(ctx context.Context, cursor *Cursor, limit int) ([]*RestaurantView, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := keysetFrom(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.List(ctx, after, int32(limit+1)) // #nosec G115 -- bounded by MaxListLimit
	if err != nil {
		return nil, nil, err
	}
	rows, next := paginate(rows, limit, func(v *RestaurantView) (time.Time, uuid.UUID) {
		return v.CreatedAt, v.ID
	})
	return rows, next, nil
}

// GetRating serves from the cache when possible. Cache failures degrade to
// a database read and are only logged.
func (q *restaurantQueriesImpl) GetRating(ctx context.Context, id uuid.UUID) (*RatingView, error) {
	cached, ok, err := q.cache.Get(ctx, id)
	if err != nil {
		q.logger.Warn("rating cache read failed", slog.String("restaurant_id", id.String()), slog.Any("error", err))
	}
	if ok {
		return cached, nil
	}

	rest, err := q.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := &RatingView{
		RestaurantID:  rest.ID,
		AverageRating: rest.AverageRating,
		ReviewCount:   rest.ReviewCount,
	}
	if err := q.cache.Set(ctx, view); err != nil {
		q.logger.Warn("rating cache write failed", slog.String("restaurant_id", id.String()), slog.Any("error", err))
	}
	return view, nil
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"table-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const ratingKeyPrefix = "restaurant:rating:"

// RatingCache stores restaurant aggregates in Redis. A nil client turns every
// call into a miss so the service runs without Redis.
type RatingCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRatingCache(rdb *redis.Client, ttl time.Duration) *RatingCache {
	return &RatingCache{rdb: rdb, ttl: ttl}
}

func RatingKey(restaurantID uuid.UUID) string {
	return ratingKeyPrefix + restaurantID.String()
}

func (c *RatingCache) Get(ctx context.Context, restaurantID uuid.UUID) (*queries.RatingView, bool, error) {
	if c.rdb == nil {
		return nil, false, nil
	}
	raw, err := c.rdb.Get(ctx, RatingKey(restaurantID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var view queries.RatingView
	if err := json.Unmarshal(raw, &view); err != nil {
		return nil, false, fmt.Errorf("decode cached rating: %w", err)
	}
	return &view, true, nil
}

func (c *RatingCache) Set(ctx context.Context, view *queries.RatingView) error {
	if c.rdb == nil {
		return nil
	}
	raw, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("encode rating: %w", err)
	}
	return c.rdb.Set(ctx, RatingKey(view.RestaurantID), raw, c.ttl).Err()
}

package repository

import (
	"context"

	"table-booking/internal/domain/rating"
	"table-booking/internal/infra"
	"table-booking/internal/infra/pgsql"

	"github.com/google/uuid"
)

type RatingQueries interface {
	UpdateRestaurantRating(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateRestaurantRatingParams) (int64, error)
}

type RatingRepository struct {
	queries RatingQueries
	db      pgsql.DBTX
}

func NewRatingRepository(queries RatingQueries, db pgsql.DBTX) *RatingRepository {
	return &RatingRepository{
		queries: queries,
		db:      db,
	}
}

// Save overwrites the denormalized rating columns of a restaurant.
func (r *RatingRepository) Save(ctx context.Context, tx pgsql.DBTX, restaurantID uuid.UUID, agg rating.Aggregate) error {
	params := pgsql.UpdateRestaurantRatingParams{
		ID:            restaurantID,
		AverageRating: agg.AverageRating,
		ReviewCount:   int32(agg.ReviewCount), // #nosec G115 -- bounded by row count
	}
	rows, err := r.queries.UpdateRestaurantRating(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to save restaurant rating", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("restaurant not found", nil, infra.KindNotFound)
	}
	return nil
}

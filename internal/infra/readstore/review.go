package readstore

import (
	"context"

	"table-booking/internal/infra"
	"table-booking/internal/infra/pgsql"
	"table-booking/internal/pkg/pgconv"
	"table-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewReadQueries interface {
	GetReviewByID(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.Review, error)
	ListReviewsByRestaurant(ctx context.Context, db pgsql.DBTX, arg pgsql.ListReviewsByRestaurantParams) ([]pgsql.Review, error)
	ListStarsByRestaurant(ctx context.Context, db pgsql.DBTX, restaurantID uuid.UUID) ([]float64, error)
}

type ReviewReadStore struct {
	queries ReviewReadQueries
	db      pgsql.DBTX
}

func NewReviewReadStore(queries ReviewReadQueries, db pgsql.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	row, err := r.queries.GetReviewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get review by id", err)
	}
	return rowToReviewView(row)
}

func (r *ReviewReadStore) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID, after *queries.Keyset, limit int32) ([]*queries.ReviewView, error) {
	params := pgsql.ListReviewsByRestaurantParams{
		RestaurantID: restaurantID,
		Limit:        limit,
	}
	params.AfterCreatedAt, params.AfterID = keysetParams(after)

	rows, err := r.queries.ListReviewsByRestaurant(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews by restaurant", err)
	}
	result := make([]*queries.ReviewView, 0, len(rows))
	for _, row := range rows {
		view, err := rowToReviewView(row)
		if err != nil {
			return nil, err
		}
		result = append(result, view)
	}
	return result, nil
}

// StarsByRestaurant returns the live star values the aggregate is computed from.
func (r *ReviewReadStore) StarsByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]float64, error) {
	stars, err := r.queries.ListStarsByRestaurant(ctx, r.db, restaurantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list review stars", err)
	}
	return stars, nil
}

func rowToReviewView(row pgsql.Review) (*queries.ReviewView, error) {
	stars, err := pgconv.Float64FromNumeric(row.Stars)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode review stars", err)
	}
	return &queries.ReviewView{
		ID:           row.ID,
		UserID:       row.UserID,
		RestaurantID: row.RestaurantID,
		Stars:        stars,
		Message:      pgconv.StringPtrFromPgtype(row.Message),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

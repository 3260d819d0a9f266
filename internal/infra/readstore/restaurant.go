package readstore

import (
	"context"

	"table-booking/internal/infra"
	"table-booking/internal/infra/pgsql"
	"table-booking/internal/pkg/pgconv"
	"table-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RestaurantReadQueries interface {
	GetRestaurantByID(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.Restaurant, error)
	ListRestaurants(ctx context.Context, db pgsql.DBTX, arg pgsql.ListRestaurantsParams) ([]pgsql.Restaurant, error)
}

type RestaurantReadStore struct {
	queries RestaurantReadQueries
	db      pgsql.DBTX
}

func NewRestaurantReadStore(queries RestaurantReadQueries, db pgsql.DBTX) *RestaurantReadStore {
	return &RestaurantReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RestaurantReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RestaurantView, error) {
	row, err := r.queries.GetRestaurantByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("restaurant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get restaurant by id", err)
	}
	return rowToRestaurantView(row)
}

func (r *RestaurantReadStore) List(ctx context.Context, after *queries.Keyset, limit int32) ([]*queries.RestaurantView, error) {
	params := pgsql.ListRestaurantsParams{Limit: limit}
	params.AfterCreatedAt, params.AfterID = keysetParams(after)

	rows, err := r.queries.ListRestaurants(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list restaurants", err)
	}
	result := make([]*queries.RestaurantView, 0, len(rows))
	for _, row := range rows {
		view, err := rowToRestaurantView(row)
		if err != nil {
			return nil, err
		}
		result = append(result, view)
	}
	return result, nil
}

func rowToRestaurantView(row pgsql.Restaurant) (*queries.RestaurantView, error) {
	avg, err := pgconv.Float64FromNumeric(row.AverageRating)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode average rating", err)
	}
	return &queries.RestaurantView{
		ID:            row.ID,
		Name:          row.Name,
		OpenTime:      row.OpenTime,
		CloseTime:     row.CloseTime,
		Timezone:      row.Timezone,
		AverageRating: avg,
		ReviewCount:   int(row.ReviewCount),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func keysetParams(after *queries.Keyset) (pgtype.Timestamptz, uuid.UUID) {
	if after == nil {
		return pgtype.Timestamptz{}, uuid.Nil
	}
	return pgconv.TimeToPgtype(after.CreatedAt), after.ID
}

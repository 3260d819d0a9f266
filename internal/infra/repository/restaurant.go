package repository

import (
	"context"

	"table-booking/internal/domain/restaurant"
	"table-booking/internal/infra"
	"table-booking/internal/infra/pgsql"
	"table-booking/internal/pkg/pgconv"
)

type RestaurantWriteQueries interface {
	CreateRestaurant(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateRestaurantParams) error
	UpdateRestaurant(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateRestaurantParams) (int64, error)
}

type RestaurantRepository struct {
	queries RestaurantWriteQueries
	db      pgsql.DBTX
}

func NewRestaurantRepository(queries RestaurantWriteQueries, db pgsql.DBTX) *RestaurantRepository {
	return &RestaurantRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RestaurantRepository) Create(ctx context.Context, tx pgsql.DBTX, rest *restaurant.Restaurant) error {
	params := pgsql.CreateRestaurantParams{
		ID:        rest.ID(),
		Name:      rest.Name(),
		OpenTime:  rest.Window().Open.String(),
		CloseTime: rest.Window().Close.String(),
		Timezone:  rest.Timezone(),
		CreatedAt: pgconv.TimeToPgtype(rest.CreatedAt()),
	}
	if err := r.queries.CreateRestaurant(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create restaurant", err)
	}
	return nil
}

func (r *RestaurantRepository) Update(ctx context.Context, tx pgsql.DBTX, rest *restaurant.Restaurant) error {
	params := pgsql.UpdateRestaurantParams{
		ID:        rest.ID(),
		Name:      rest.Name(),
		OpenTime:  rest.Window().Open.String(),
		CloseTime: rest.Window().Close.String(),
		Timezone:  rest.Timezone(),
		UpdatedAt: pgconv.TimeToPgtype(rest.UpdatedAt()),
	}
	rows, err := r.queries.UpdateRestaurant(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update restaurant", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("restaurant not found", nil, infra.KindNotFound)
	}
	return nil
}

package pgsql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const restaurantColumns = `id, name, to_char(open_time, 'HH24:MI:SS'), to_char(close_time, 'HH24:MI:SS'),
	timezone, average_rating, review_count, created_at, updated_at`

func scanRestaurant(row interface{ Scan(dest ...any) error }) (Restaurant, error) {
	var i Restaurant
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.OpenTime,
		&i.CloseTime,
		&i.Timezone,
		&i.AverageRating,
		&i.ReviewCount,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createRestaurant = `-- name: CreateRestaurant :exec
INSERT INTO restaurants (id, name, open_time, close_time, timezone, created_at, updated_at)
VALUES ($1, $2, $3::time, $4::time, $5, $6, $6)
`

type CreateRestaurantParams struct {
	ID        uuid.UUID
	Name      string
	OpenTime  string
	CloseTime string
	Timezone  string
	CreatedAt pgtype.Timestamptz
}

func (q *Queries) CreateRestaurant(ctx context.Context, db DBTX, arg CreateRestaurantParams) error {
	_, err := db.Exec(ctx, createRestaurant,
		arg.ID,
		arg.Name,
		arg.OpenTime,
		arg.CloseTime,
		arg.Timezone,
		arg.CreatedAt,
	)
	return err
}

const updateRestaurant = `-- name: UpdateRestaurant :execrows
UPDATE restaurants
SET name = $2, open_time = $3::time, close_time = $4::time, timezone = $5, updated_at = $6
WHERE id = $1
`

type UpdateRestaurantParams struct {
	ID        uuid.UUID
	Name      string
	OpenTime  string
	CloseTime string
	Timezone  string
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdateRestaurant(ctx context.Context, db DBTX, arg UpdateRestaurantParams) (int64, error) {
	result, err := db.Exec(ctx, updateRestaurant,
		arg.ID,
		arg.Name,
		arg.OpenTime,
		arg.CloseTime,
		arg.Timezone,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const updateRestaurantRating = `-- name: UpdateRestaurantRating :execrows
UPDATE restaurants
SET average_rating = $2, review_count = $3
WHERE id = $1
`

type UpdateRestaurantRatingParams struct {
	ID            uuid.UUID
	AverageRating float64
	ReviewCount   int32
}

func (q *Queries) UpdateRestaurantRating(ctx context.Context, db DBTX, arg UpdateRestaurantRatingParams) (int64, error) {
	result, err := db.Exec(ctx, updateRestaurantRating, arg.ID, arg.AverageRating, arg.ReviewCount)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getRestaurantByID = `-- name: GetRestaurantByID :one
SELECT ` + restaurantColumns + `
FROM restaurants
WHERE id = $1
`

func (q *Queries) GetRestaurantByID(ctx context.Context, db DBTX, id uuid.UUID) (Restaurant, error) {
	return scanRestaurant(db.QueryRow(ctx, getRestaurantByID, id))
}

const listRestaurants = `-- name: ListRestaurants :many
SELECT ` + restaurantColumns + `
FROM restaurants
WHERE ($1::timestamptz IS NULL OR (created_at, id) < ($1::timestamptz, $2::uuid))
ORDER BY created_at DESC, id DESC
LIMIT $3
`

type ListRestaurantsParams struct {
	AfterCreatedAt pgtype.Timestamptz
	AfterID        uuid.UUID
	Limit          int32
}

func (q *Queries) ListRestaurants(ctx context.Context, db DBTX, arg ListRestaurantsParams) ([]Restaurant, error) {
	rows, err := db.Query(ctx, listRestaurants, arg.AfterCreatedAt, arg.AfterID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Restaurant{}
	for rows.Next() {
		i, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

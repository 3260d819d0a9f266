package pgsql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const reviewColumns = `id, user_id, restaurant_id, stars, message, created_at, updated_at`

func scanReview(row interface{ Scan(dest ...any) error }) (Review, error) {
	var i Review
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.RestaurantID,
		&i.Stars,
		&i.Message,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createReview = `-- name: CreateReview :exec
INSERT INTO reviews (id, user_id, restaurant_id, stars, message, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
`

type CreateReviewParams struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	RestaurantID uuid.UUID
	Stars        float64
	Message      pgtype.Text
	CreatedAt    pgtype.Timestamptz
}

func (q *Queries) CreateReview(ctx context.Context, db DBTX, arg CreateReviewParams) error {
	_, err := db.Exec(ctx, createReview,
		arg.ID,
		arg.UserID,
		arg.RestaurantID,
		arg.Stars,
		arg.Message,
		arg.CreatedAt,
	)
	return err
}

const updateReview = `-- name: UpdateReview :execrows
UPDATE reviews
SET stars = $2, message = $3, updated_at = $4
WHERE id = $1
`

type UpdateReviewParams struct {
	ID        uuid.UUID
	Stars     float64
	Message   pgtype.Text
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdateReview(ctx context.Context, db DBTX, arg UpdateReviewParams) (int64, error) {
	result, err := db.Exec(ctx, updateReview, arg.ID, arg.Stars, arg.Message, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteReview = `-- name: DeleteReview :execrows
DELETE FROM reviews WHERE id = $1
`

func (q *Queries) DeleteReview(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteReview, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getReviewByID = `-- name: GetReviewByID :one
SELECT ` + reviewColumns + `
FROM reviews
WHERE id = $1
`

func (q *Queries) GetReviewByID(ctx context.Context, db DBTX, id uuid.UUID) (Review, error) {
	return scanReview(db.QueryRow(ctx, getReviewByID, id))
}

const listReviewsByRestaurant = `-- name: ListReviewsByRestaurant :many
SELECT ` + reviewColumns + `
FROM reviews
WHERE restaurant_id = $1
  AND ($2::timestamptz IS NULL OR (created_at, id) < ($2::timestamptz, $3::uuid))
ORDER BY created_at DESC, id DESC
LIMIT $4
`

type ListReviewsByRestaurantParams struct {
	RestaurantID   uuid.UUID
	AfterCreatedAt pgtype.Timestamptz
	AfterID        uuid.UUID
	Limit          int32
}

func (q *Queries) ListReviewsByRestaurant(ctx context.Context, db DBTX, arg ListReviewsByRestaurantParams) ([]Review, error) {
	rows, err := db.Query(ctx, listReviewsByRestaurant,
		arg.RestaurantID,
		arg.AfterCreatedAt,
		arg.AfterID,
		arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Review{}
	for rows.Next() {
		i, err := scanReview(rows)
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

const listStarsByRestaurant = `-- name: ListStarsByRestaurant :many
SELECT stars::float8
FROM reviews
WHERE restaurant_id = $1
`

func (q *Queries) ListStarsByRestaurant(ctx context.Context, db DBTX, restaurantID uuid.UUID) ([]float64, error) {
	rows, err := db.Query(ctx, listStarsByRestaurant, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []float64{}
	for rows.Next() {
		var stars float64
		if err := rows.Scan(&stars); err != nil {
			return nil, err
		}
		items = append(items, stars)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

package pgsql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `id, user_id, restaurant_id, date_time, status, created_at, updated_at`

func scanReservation(row interface{ Scan(dest ...any) error }) (Reservation, error) {
	var i Reservation
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.RestaurantID,
		&i.DateTime,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const lockReservationOwner = `-- name: LockReservationOwner :exec
SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))
`

func (q *Queries) LockReservationOwner(ctx context.Context, db DBTX, userID uuid.UUID) error {
	_, err := db.Exec(ctx, lockReservationOwner, userID.String())
	return err
}

const createReservation = `-- name: CreateReservation :exec
INSERT INTO reservations (id, user_id, restaurant_id, date_time, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
`

type CreateReservationParams struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	RestaurantID uuid.UUID
	DateTime     pgtype.Timestamptz
	Status       string
	CreatedAt    pgtype.Timestamptz
}

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) error {
	_, err := db.Exec(ctx, createReservation,
		arg.ID,
		arg.UserID,
		arg.RestaurantID,
		arg.DateTime,
		arg.Status,
		arg.CreatedAt,
	)
	return err
}

const updateReservation = `-- name: UpdateReservation :execrows
UPDATE reservations
SET date_time = $2, status = $3, updated_at = $4
WHERE id = $1
`

type UpdateReservationParams struct {
	ID        uuid.UUID
	DateTime  pgtype.Timestamptz
	Status    string
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdateReservation(ctx context.Context, db DBTX, arg UpdateReservationParams) (int64, error) {
	result, err := db.Exec(ctx, updateReservation, arg.ID, arg.DateTime, arg.Status, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteReservation = `-- name: DeleteReservation :execrows
DELETE FROM reservations WHERE id = $1
`

func (q *Queries) DeleteReservation(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteReservation, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getReservationByID = `-- name: GetReservationByID :one
SELECT ` + reservationColumns + `
FROM reservations
WHERE id = $1
`

func (q *Queries) GetReservationByID(ctx context.Context, db DBTX, id uuid.UUID) (Reservation, error) {
	return scanReservation(db.QueryRow(ctx, getReservationByID, id))
}

const listReservations = `-- name: ListReservations :many
SELECT ` + reservationColumns + `
FROM reservations
WHERE ($1::uuid IS NULL OR user_id = $1::uuid)
  AND ($2::uuid IS NULL OR restaurant_id = $2::uuid)
  AND ($3::timestamptz IS NULL OR (created_at, id) < ($3::timestamptz, $4::uuid))
ORDER BY created_at DESC, id DESC
LIMIT $5
`

type ListReservationsParams struct {
	UserID         *uuid.UUID
	RestaurantID   *uuid.UUID
	AfterCreatedAt pgtype.Timestamptz
	AfterID        uuid.UUID
	Limit          int32
}

func (q *Queries) ListReservations(ctx context.Context, db DBTX, arg ListReservationsParams) ([]Reservation, error) {
	rows, err := db.Query(ctx, listReservations,
		arg.UserID,
		arg.RestaurantID,
		arg.AfterCreatedAt,
		arg.AfterID,
		arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Reservation{}
	for rows.Next() {
		i, err := scanReservation(rows)
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

const countReservations = `-- name: CountReservations :one
SELECT count(*)
FROM reservations
WHERE user_id = $1
  AND ($2::uuid IS NULL OR restaurant_id = $2::uuid)
  AND status = $3
`

type CountReservationsParams struct {
	UserID       uuid.UUID
	RestaurantID *uuid.UUID
	Status       string
}

func (q *Queries) CountReservations(ctx context.Context, db DBTX, arg CountReservationsParams) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countReservations, arg.UserID, arg.RestaurantID, arg.Status).Scan(&count)
	return count, err
}

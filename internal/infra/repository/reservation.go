package repository

import (
	"context"

	"table-booking/internal/domain/reservation"
	"table-booking/internal/infra"
	"table-booking/internal/infra/pgsql"
	"table-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	LockReservationOwner(ctx context.Context, db pgsql.DBTX, userID uuid.UUID) error
	CreateReservation(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateReservationParams) error
	UpdateReservation(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateReservationParams) (int64, error)
	DeleteReservation(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      pgsql.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db pgsql.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

// LockOwner serializes admissions for one user until the transaction ends.
func (r *ReservationRepository) LockOwner(ctx context.Context, tx pgsql.DBTX, userID uuid.UUID) error {
	if err := r.queries.LockReservationOwner(ctx, tx, userID); err != nil {
		return infra.WrapRepoErr("failed to lock reservation owner", err)
	}
	return nil
}

func (r *ReservationRepository) Create(ctx context.Context, tx pgsql.DBTX, res *reservation.Reservation) error {
	params := pgsql.CreateReservationParams{
		ID:           res.ID(),
		UserID:       res.UserID(),
		RestaurantID: res.RestaurantID(),
		DateTime:     pgconv.TimeToPgtype(res.DateTime()),
		Status:       res.Status().String(),
		CreatedAt:    pgconv.TimeToPgtype(res.CreatedAt()),
	}
	if err := r.queries.CreateReservation(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

// Update writes status and date/time in a single statement.
func (r *ReservationRepository) Update(ctx context.Context, tx pgsql.DBTX, res *reservation.Reservation) error {
	params := pgsql.UpdateReservationParams{
		ID:        res.ID(),
		DateTime:  pgconv.TimeToPgtype(res.DateTime()),
		Status:    res.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(res.UpdatedAt()),
	}
	rows, err := r.queries.UpdateReservation(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, tx pgsql.DBTX, id uuid.UUID) error {
	rows, err := r.queries.DeleteReservation(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

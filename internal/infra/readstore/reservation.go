package readstore

import (
	"context"

	"table-booking/internal/infra"
	"table-booking/internal/infra/pgsql"
	"table-booking/internal/pkg/pgconv"
	"table-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationReadQueries interface {
	GetReservationByID(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.Reservation, error)
	ListReservations(ctx context.Context, db pgsql.DBTX, arg pgsql.ListReservationsParams) ([]pgsql.Reservation, error)
	CountReservations(ctx context.Context, db pgsql.DBTX, arg pgsql.CountReservationsParams) (int64, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      pgsql.DBTX
}

func NewReservationReadStore(queries ReservationReadQueries, db pgsql.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return rowToReservationView(row), nil
}

func (r *ReservationReadStore) List(ctx context.Context, filter queries.ReservationFilter, after *queries.Keyset, limit int32) ([]*queries.ReservationView, error) {
	params := pgsql.ListReservationsParams{
		UserID:       filter.UserID,
		RestaurantID: filter.RestaurantID,
		Limit:        limit,
	}
	params.AfterCreatedAt, params.AfterID = keysetParams(after)

	rows, err := r.queries.ListReservations(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = rowToReservationView(row)
	}
	return result, nil
}

// CountByStatus counts a user's reservations in one status, optionally at a
// single restaurant.
func (r *ReservationReadStore) CountByStatus(ctx context.Context, userID uuid.UUID, restaurantID *uuid.UUID, status string) (int, error) {
	n, err := r.queries.CountReservations(ctx, r.db, pgsql.CountReservationsParams{
		UserID:       userID,
		RestaurantID: restaurantID,
		Status:       status,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count reservations", err)
	}
	return int(n), nil
}

func rowToReservationView(row pgsql.Reservation) *queries.ReservationView {
	return &queries.ReservationView{
		ID:           row.ID,
		UserID:       row.UserID,
		RestaurantID: row.RestaurantID,
		DateTime:     pgconv.TimeFromPgtype(row.DateTime),
		Status:       row.Status,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

package queries

import (
	"context"
	"time"

	"table-booking/internal/domain/reservation"
	"table-booking/internal/domain/user"
	"table-booking/internal/infra"

	"github.com/google/uuid"
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, filter ReservationFilter, after *Keyset, limit int32) ([]*ReservationView, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, actor user.Actor, restaurantID *uuid.UUID, cursor *Cursor, limit int) ([]*ReservationView, *Cursor, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

// GetByID reports a missing reservation before checking ownership.
func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	if err := reservation.CheckAccess(actor, view.UserID); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, actor user.Actor, restaurantID *uuid.UUID, cursor *Cursor, limit int) ([]*ReservationView, *Cursor, error) {
	if !actor.IsAuthenticated() {
		return nil, nil, reservation.ErrNotOwner
	}
	limit = ValidateLimit(limit)
	after, err := keysetFrom(cursor)
	if err != nil {
		return nil, nil, err
	}

	scope := reservation.ScopeFor(actor, restaurantID)
	filter := ReservationFilter{UserID: scope.OwnerID, RestaurantID: scope.RestaurantID}

	rows, err := q.store.List(ctx, filter, after, int32(limit+1)) // #nosec G115 -- bounded by MaxListLimit
	if err != nil {
		return nil, nil, err
	}
	rows, next := paginate(rows, limit, func(v *ReservationView) (time.Time, uuid.UUID) {
		return v.CreatedAt, v.ID
	})
	return rows, next, nil
}

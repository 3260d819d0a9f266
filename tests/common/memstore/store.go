//go:build unit || e2e

// Package memstore is an in-memory shared.UnitOfWork together with the read
// stores the query use cases depend on. Transactions are serialised by a
// mutex and roll back by restoring a copy of the tables.
package memstore

import (
	"bytes"
	"context"
	"errors"
	"maps"
	"slices"
	"sync"
	"time"

	"table-booking/internal/domain/rating"
	"table-booking/internal/domain/reservation"
	"table-booking/internal/domain/restaurant"
	"table-booking/internal/domain/review"
	"table-booking/internal/infra"
	"table-booking/internal/infra/pgsql"
	"table-booking/internal/usecase/queries"
	"table-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var errNoRow = errors.New("no rows in result set")

type tables struct {
	restaurants  map[uuid.UUID]queries.RestaurantView
	reservations map[uuid.UUID]queries.ReservationView
	reviews      map[uuid.UUID]queries.ReviewView
}

func (t tables) clone() tables {
	return tables{
		restaurants:  maps.Clone(t.restaurants),
		reservations: maps.Clone(t.reservations),
		reviews:      maps.Clone(t.reviews),
	}
}

type Store struct {
	mu   sync.Mutex
	data tables

	// FailNextCommit makes the next Within call fail after fn succeeds.
	FailNextCommit error
	// Commits counts successful transactions.
	Commits int
}

func New() *Store {
	return &Store{data: tables{
		restaurants:  map[uuid.UUID]queries.RestaurantView{},
		reservations: map[uuid.UUID]queries.ReservationView{},
		reviews:      map[uuid.UUID]queries.ReviewView{},
	}}
}

// ---- shared.UnitOfWork ----

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	backup := s.data.clone()
	if err := fn(ctx, &memTx{s: s}); err != nil {
		s.data = backup
		return err
	}
	if err := s.FailNextCommit; err != nil {
		s.FailNextCommit = nil
		s.data = backup
		return err
	}
	s.Commits++
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &lockedReads{s: s}
}

type memTx struct {
	s *Store
}

func (t *memTx) Restaurants() shared.RestaurantRepository   { return restaurantRepo{t.s} }
func (t *memTx) Reservations() shared.ReservationRepository { return reservationRepo{t.s} }
func (t *memTx) Reviews() shared.ReviewRepository           { return reviewRepo{t.s} }
func (t *memTx) Ratings() shared.RatingRepository           { return ratingRepo{t.s} }
func (t *memTx) Reads() shared.CommandReads                 { return reads{t.s} }
func (t *memTx) DB() pgsql.DBTX                             { return nil }

// ---- command reads (caller holds the lock) ----

type reads struct {
	s *Store
}

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", errNoRow, infra.KindNotFound)
}

func (r reads) RestaurantByID(_ context.Context, id uuid.UUID) (*shared.RestaurantSnapshot, error) {
	v, ok := r.s.data.restaurants[id]
	if !ok {
		return nil, notFound("restaurant")
	}
	return &shared.RestaurantSnapshot{
		ID:        v.ID,
		Name:      v.Name,
		OpenTime:  v.OpenTime,
		CloseTime: v.CloseTime,
		Timezone:  v.Timezone,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}, nil
}

func (r reads) ReservationByID(_ context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	v, ok := r.s.data.reservations[id]
	if !ok {
		return nil, notFound("reservation")
	}
	return &shared.ReservationSnapshot{
		ID:           v.ID,
		UserID:       v.UserID,
		RestaurantID: v.RestaurantID,
		DateTime:     v.DateTime,
		Status:       v.Status,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}, nil
}

func (r reads) ReviewByID(_ context.Context, id uuid.UUID) (*shared.ReviewSnapshot, error) {
	v, ok := r.s.data.reviews[id]
	if !ok {
		return nil, notFound("review")
	}
	return &shared.ReviewSnapshot{
		ID:           v.ID,
		UserID:       v.UserID,
		RestaurantID: v.RestaurantID,
		Stars:        v.Stars,
		Message:      v.Message,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}, nil
}

func (r reads) CountReservations(_ context.Context, userID uuid.UUID, restaurantID *uuid.UUID, status reservation.Status) (int, error) {
	n := 0
	for _, v := range r.s.data.reservations {
		if v.UserID != userID || v.Status != status.String() {
			continue
		}
		if restaurantID != nil && v.RestaurantID != *restaurantID {
			continue
		}
		n++
	}
	return n, nil
}

func (r reads) StarsByRestaurant(_ context.Context, restaurantID uuid.UUID) ([]float64, error) {
	var stars []float64
	for _, v := range r.s.data.reviews {
		if v.RestaurantID == restaurantID {
			stars = append(stars, v.Stars)
		}
	}
	return stars, nil
}

// lockedReads serves CommandReads outside a transaction.
type lockedReads struct {
	s *Store
}

func (r *lockedReads) RestaurantByID(ctx context.Context, id uuid.UUID) (*shared.RestaurantSnapshot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return reads{r.s}.RestaurantByID(ctx, id)
}

func (r *lockedReads) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return reads{r.s}.ReservationByID(ctx, id)
}

func (r *lockedReads) ReviewByID(ctx context.Context, id uuid.UUID) (*shared.ReviewSnapshot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return reads{r.s}.ReviewByID(ctx, id)
}

func (r *lockedReads) CountReservations(ctx context.Context, userID uuid.UUID, restaurantID *uuid.UUID, status reservation.Status) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return reads{r.s}.CountReservations(ctx, userID, restaurantID, status)
}

func (r *lockedReads) StarsByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]float64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return reads{r.s}.StarsByRestaurant(ctx, restaurantID)
}

// ---- repositories (caller holds the lock) ----

type restaurantRepo struct{ s *Store }

func (r restaurantRepo) Create(_ context.Context, _ pgsql.DBTX, rest *restaurant.Restaurant) error {
	if _, exists := r.s.data.restaurants[rest.ID()]; exists {
		return infra.WrapRepoErr("restaurant exists", nil, infra.KindDuplicateKey)
	}
	r.s.data.restaurants[rest.ID()] = restaurantView(rest)
	return nil
}

func (r restaurantRepo) Update(_ context.Context, _ pgsql.DBTX, rest *restaurant.Restaurant) error {
	prev, ok := r.s.data.restaurants[rest.ID()]
	if !ok {
		return notFound("restaurant")
	}
	v := restaurantView(rest)
	v.AverageRating, v.ReviewCount = prev.AverageRating, prev.ReviewCount
	r.s.data.restaurants[rest.ID()] = v
	return nil
}

func restaurantView(rest *restaurant.Restaurant) queries.RestaurantView {
	w := rest.Window()
	return queries.RestaurantView{
		ID:            rest.ID(),
		Name:          rest.Name(),
		OpenTime:      w.Open.String(),
		CloseTime:     w.Close.String(),
		Timezone:      rest.Timezone(),
		AverageRating: rest.Aggregate().AverageRating,
		ReviewCount:   rest.Aggregate().ReviewCount,
		CreatedAt:     rest.CreatedAt(),
		UpdatedAt:     rest.UpdatedAt(),
	}
}

type reservationRepo struct{ s *Store }

func (r reservationRepo) LockOwner(context.Context, pgsql.DBTX, uuid.UUID) error {
	return nil
}

func (r reservationRepo) Create(_ context.Context, _ pgsql.DBTX, res *reservation.Reservation) error {
	if _, ok := r.s.data.restaurants[res.RestaurantID()]; !ok {
		return infra.WrapRepoErr("restaurant missing", nil, infra.KindForeignKeyViolated)
	}
	r.s.data.reservations[res.ID()] = reservationView(res)
	return nil
}

func (r reservationRepo) Update(_ context.Context, _ pgsql.DBTX, res *reservation.Reservation) error {
	if _, ok := r.s.data.reservations[res.ID()]; !ok {
		return notFound("reservation")
	}
	r.s.data.reservations[res.ID()] = reservationView(res)
	return nil
}

func (r reservationRepo) Delete(_ context.Context, _ pgsql.DBTX, id uuid.UUID) error {
	if _, ok := r.s.data.reservations[id]; !ok {
		return notFound("reservation")
	}
	delete(r.s.data.reservations, id)
	return nil
}

func reservationView(res *reservation.Reservation) queries.ReservationView {
	return queries.ReservationView{
		ID:           res.ID(),
		UserID:       res.UserID(),
		RestaurantID: res.RestaurantID(),
		DateTime:     res.DateTime(),
		Status:       res.Status().String(),
		CreatedAt:    res.CreatedAt(),
		UpdatedAt:    res.UpdatedAt(),
	}
}

type reviewRepo struct{ s *Store }

func (r reviewRepo) Create(_ context.Context, _ pgsql.DBTX, rev *review.Review) error {
	if _, ok := r.s.data.restaurants[rev.RestaurantID()]; !ok {
		return infra.WrapRepoErr("restaurant missing", nil, infra.KindForeignKeyViolated)
	}
	r.s.data.reviews[rev.ID()] = reviewView(rev)
	return nil
}

func (r reviewRepo) Update(_ context.Context, _ pgsql.DBTX, rev *review.Review) error {
	if _, ok := r.s.data.reviews[rev.ID()]; !ok {
		return notFound("review")
	}
	r.s.data.reviews[rev.ID()] = reviewView(rev)
	return nil
}

func (r reviewRepo) Delete(_ context.Context, _ pgsql.DBTX, id uuid.UUID) error {
	if _, ok := r.s.data.reviews[id]; !ok {
		return notFound("review")
	}
	delete(r.s.data.reviews, id)
	return nil
}

func reviewView(rev *review.Review) queries.ReviewView {
	return queries.ReviewView{
		ID:           rev.ID(),
		UserID:       rev.UserID(),
		RestaurantID: rev.RestaurantID(),
		Stars:        rev.Stars().Value(),
		Message:      rev.Message().Ptr(),
		CreatedAt:    rev.CreatedAt(),
		UpdatedAt:    rev.UpdatedAt(),
	}
}

type ratingRepo struct{ s *Store }

func (r ratingRepo) Save(_ context.Context, _ pgsql.DBTX, restaurantID uuid.UUID, agg rating.Aggregate) error {
	v, ok := r.s.data.restaurants[restaurantID]
	if !ok {
		return notFound("restaurant")
	}
	v.AverageRating, v.ReviewCount = agg.AverageRating, agg.ReviewCount
	r.s.data.restaurants[restaurantID] = v
	return nil
}

// ---- seeding ----

func (s *Store) PutRestaurant(rest *restaurant.Restaurant) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.restaurants[rest.ID()] = restaurantView(rest)
	return rest.ID()
}

func (s *Store) PutReservation(res *reservation.Reservation) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.reservations[res.ID()] = reservationView(res)
	return res.ID()
}

func (s *Store) PutReview(rev *review.Review) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.reviews[rev.ID()] = reviewView(rev)
	return rev.ID()
}

// ---- inspection ----

func (s *Store) Restaurant(id uuid.UUID) (queries.RestaurantView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data.restaurants[id]
	return v, ok
}

func (s *Store) Reservation(id uuid.UUID) (queries.ReservationView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data.reservations[id]
	return v, ok
}

func (s *Store) Review(id uuid.UUID) (queries.ReviewView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data.reviews[id]
	return v, ok
}

func (s *Store) ReservationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data.reservations)
}

// ---- read stores for the query use cases ----

func (s *Store) RestaurantReadStore() queries.RestaurantReadStore { return restaurantReadStore{s} }

func (s *Store) ReservationReadStore() queries.ReservationReadStore {
	return reservationReadStore{s}
}

func (s *Store) ReviewReadStore() queries.ReviewReadStore { return reviewReadStore{s} }

type restaurantReadStore struct{ s *Store }

func (r restaurantReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.RestaurantView, error) {
	v, ok := r.s.Restaurant(id)
	if !ok {
		return nil, notFound("restaurant")
	}
	return &v, nil
}

func (r restaurantReadStore) List(_ context.Context, after *queries.Keyset, limit int32) ([]*queries.RestaurantView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rows := page(slices.Collect(maps.Values(r.s.data.restaurants)), after, limit,
		func(v queries.RestaurantView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID })
	return rows, nil
}

type reservationReadStore struct{ s *Store }

func (r reservationReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	v, ok := r.s.Reservation(id)
	if !ok {
		return nil, notFound("reservation")
	}
	return &v, nil
}

func (r reservationReadStore) List(_ context.Context, filter queries.ReservationFilter, after *queries.Keyset, limit int32) ([]*queries.ReservationView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var matched []queries.ReservationView
	for _, v := range r.s.data.reservations {
		if filter.UserID != nil && v.UserID != *filter.UserID {
			continue
		}
		if filter.RestaurantID != nil && v.RestaurantID != *filter.RestaurantID {
			continue
		}
		matched = append(matched, v)
	}
	return page(matched, after, limit,
		func(v queries.ReservationView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID }), nil
}

type reviewReadStore struct{ s *Store }

func (r reviewReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	v, ok := r.s.Review(id)
	if !ok {
		return nil, notFound("review")
	}
	return &v, nil
}

func (r reviewReadStore) ListByRestaurant(_ context.Context, restaurantID uuid.UUID, after *queries.Keyset, limit int32) ([]*queries.ReviewView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var matched []queries.ReviewView
	for _, v := range r.s.data.reviews {
		if v.RestaurantID == restaurantID {
			matched = append(matched, v)
		}
	}
	return page(matched, after, limit,
		func(v queries.ReviewView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID }), nil
}

// page orders by (created_at DESC, id DESC) and applies the keyset the same
// way the SQL queries do.
func page[T any](rows []T, after *queries.Keyset, limit int32, key func(T) (time.Time, uuid.UUID)) []*T {
	slices.SortFunc(rows, func(a, b T) int {
		ta, ia := key(a)
		tb, ib := key(b)
		if c := tb.Compare(ta); c != 0 {
			return c
		}
		return bytes.Compare(ib[:], ia[:])
	})

	out := make([]*T, 0, len(rows))
	for i := range rows {
		t, id := key(rows[i])
		if after != nil {
			c := t.Compare(after.CreatedAt)
			if c > 0 || (c == 0 && bytes.Compare(id[:], after.ID[:]) >= 0) {
				continue
			}
		}
		out = append(out, &rows[i])
		if int32(len(out)) == limit { // #nosec G115 -- bounded by caller
			break
		}
	}
	return out
}

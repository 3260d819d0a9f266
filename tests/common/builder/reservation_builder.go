//go:build unit || e2e

package builder

import (
	"time"

	"table-booking/internal/domain/reservation"
	reqdto "table-booking/internal/handler/dto/request"
	"table-booking/internal/infra/pgsql"
	"table-booking/internal/usecase/queries"
	"table-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationBuilder struct {
	UserID       uuid.UUID
	RestaurantID uuid.UUID
	DateTime     time.Time
	Status       reservation.Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewReservationBuilder defaults to a booked reservation one day ahead at
// 19:00 Tokyo time.
func NewReservationBuilder() *ReservationBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	tokyo := time.FixedZone("JST", 9*60*60)
	tomorrow := now.In(tokyo).AddDate(0, 0, 1)
	dinner := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 19, 0, 0, 0, tokyo).UTC()
	return &ReservationBuilder{
		UserID:       uuid.New(),
		RestaurantID: uuid.New(),
		DateTime:     dinner,
		Status:       reservation.StatusBooked,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) BuildDomain() *reservation.Reservation {
	return reservation.ReconstructReservation(uuid.New(), r.UserID, r.RestaurantID, r.DateTime, r.Status, r.CreatedAt, r.UpdatedAt)
}

func (r *ReservationBuilder) BuildInfra() pgsql.Reservation {
	return pgsql.Reservation{
		ID:           uuid.New(),
		UserID:       r.UserID,
		RestaurantID: r.RestaurantID,
		DateTime:     pgtype.Timestamptz{Time: r.DateTime, Valid: true},
		Status:       r.Status.String(),
		CreatedAt:    pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: r.UpdatedAt, Valid: true},
	}
}

func (r *ReservationBuilder) BuildViewQuery() *queries.ReservationView {
	return &queries.ReservationView{
		ID:           uuid.New(),
		UserID:       r.UserID,
		RestaurantID: r.RestaurantID,
		DateTime:     r.DateTime,
		Status:       r.Status.String(),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (r *ReservationBuilder) BuildSnapshot() *shared.ReservationSnapshot {
	return &shared.ReservationSnapshot{
		ID:           uuid.New(),
		UserID:       r.UserID,
		RestaurantID: r.RestaurantID,
		DateTime:     r.DateTime,
		Status:       r.Status.String(),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// BuildCreateRequestDTO sends dateTime as RFC 3339 in UTC.
func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		RestaurantID: r.RestaurantID,
		DateTime:     r.DateTime.UTC().Format(time.RFC3339),
	}
}

func (r *ReservationBuilder) WithUserID(userID uuid.UUID) *ReservationBuilder {
	r.UserID = userID
	return r
}

func (r *ReservationBuilder) WithRestaurantID(restaurantID uuid.UUID) *ReservationBuilder {
	r.RestaurantID = restaurantID
	return r
}

func (r *ReservationBuilder) WithDateTime(dt time.Time) *ReservationBuilder {
	r.DateTime = dt
	return r
}

func (r *ReservationBuilder) WithStatus(status reservation.Status) *ReservationBuilder {
	r.Status = status
	return r
}

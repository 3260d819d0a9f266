package shared

import (
	"context"

	"table-booking/internal/domain/rating"
	"table-booking/internal/domain/reservation"
	"table-booking/internal/domain/restaurant"
	"table-booking/internal/domain/review"
	"table-booking/internal/infra/pgsql"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Restaurants() RestaurantRepository
	Reservations() ReservationRepository
	Reviews() ReviewRepository
	Ratings() RatingRepository
	Reads() CommandReads
	DB() pgsql.DBTX
}

type CommandReads interface {
	RestaurantByID(ctx context.Context, id uuid.UUID) (*RestaurantSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	ReviewByID(ctx context.Context, id uuid.UUID) (*ReviewSnapshot, error)
	// CountReservations counts a user's reservations in one status; a nil
	// restaurantID counts across all restaurants.
	CountReservations(ctx context.Context, userID uuid.UUID, restaurantID *uuid.UUID, status reservation.Status) (int, error)
	StarsByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]float64, error)
}

type RestaurantRepository interface {
	Create(ctx context.Context, tx pgsql.DBTX, r *restaurant.Restaurant) error
	Update(ctx context.Context, tx pgsql.DBTX, r *restaurant.Restaurant) error
}

type ReservationRepository interface {
	LockOwner(ctx context.Context, tx pgsql.DBTX, userID uuid.UUID) error
	Create(ctx context.Context, tx pgsql.DBTX, res *reservation.Reservation) error
	Update(ctx context.Context, tx pgsql.DBTX, res *reservation.Reservation) error
	Delete(ctx context.Context, tx pgsql.DBTX, id uuid.UUID) error
}

type ReviewRepository interface {
	Create(ctx context.Context, tx pgsql.DBTX, rev *review.Review) error
	Update(ctx context.Context, tx pgsql.DBTX, rev *review.Review) error
	Delete(ctx context.Context, tx pgsql.DBTX, reviewID uuid.UUID) error
}

type RatingRepository interface {
	Save(ctx context.Context, tx pgsql.DBTX, restaurantID uuid.UUID, agg rating.Aggregate) error
}

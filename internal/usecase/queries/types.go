package queries

import (
	"time"

	"table-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidCursor       = errs.NewKind("invalid cursor", errs.ErrMalformedInput)
	ErrRestaurantNotFound  = errs.NewKind("restaurant not found", errs.ErrNotFound)
	ErrReservationNotFound = errs.NewKind("reservation not found", errs.ErrNotFound)
	ErrReviewNotFound      = errs.NewKind("review not found", errs.ErrNotFound)
)

// RestaurantView represents read-optimized restaurant data
type RestaurantView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	OpenTime      string    `json:"openTime"`
	CloseTime     string    `json:"closeTime"`
	Timezone      string    `json:"timezone"`
	AverageRating float64   `json:"averageRating"`
	ReviewCount   int       `json:"reviewCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// RatingView is the cached aggregate of one restaurant
type RatingView struct {
	RestaurantID  uuid.UUID `json:"restaurantId"`
	AverageRating float64   `json:"averageRating"`
	ReviewCount   int       `json:"reviewCount"`
}

type ReservationView struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	RestaurantID uuid.UUID `json:"restaurantId"`
	DateTime     time.Time `json:"dateTime"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type ReviewView struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	RestaurantID uuid.UUID `json:"restaurantId"`
	Stars        float64   `json:"stars"`
	Message      *string   `json:"message,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ReservationFilter narrows a reservation listing; nil fields match everything.
type ReservationFilter struct {
	UserID       *uuid.UUID
	RestaurantID *uuid.UUID
}
